// Package terminal takes over the controlling terminal for the ui: raw input, alternate screen,
// hidden cursor. Close puts everything back and is safe to call more than once.
package terminal

import (
	"errors"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/cancelreader"
)

var (
	ErrNotTerminal     = errors.New("standard input and output must be a terminal")
	errTerminalMode    = errors.New("failed to set terminal mode")
	errTerminalRestore = errors.New("failed to restore terminal mode")
	errInputReader     = errors.New("failed to open terminal input")
)

// Console is the process terminal in raw mode.
type Console struct {
	in        *os.File
	out       *os.File
	saved     *term.State
	reader    cancelreader.CancelReader
	closeOnce sync.Once
	closeErr  error
}

// Open checks that in and out are terminals, switches in to raw mode (no line buffering, echo or
// signal keys) and then moves out to the alternate screen with the cursor hidden. Nothing is
// written to the screen if any check fails.
func Open(in *os.File, out *os.File) (*Console, error) {
	if !term.IsTerminal(in.Fd()) || !term.IsTerminal(out.Fd()) {
		return nil, ErrNotTerminal
	}

	if _, _, err := term.GetSize(out.Fd()); err != nil {
		return nil, errors.Join(err, ErrNotTerminal)
	}

	reader, errReader := cancelreader.NewReader(in)
	if errReader != nil {
		return nil, errors.Join(errReader, errInputReader)
	}

	saved, errRaw := term.MakeRaw(in.Fd())
	if errRaw != nil {
		_ = reader.Close()

		return nil, errors.Join(errRaw, errTerminalMode)
	}

	console := &Console{in: in, out: out, saved: saved, reader: reader}
	if _, err := out.WriteString(ansi.SetAltScreenSaveCursorMode + ansi.HideCursor); err != nil {
		return nil, errors.Join(err, console.Close())
	}

	return console, nil
}

// Size returns the current terminal width and height in cells.
func (c *Console) Size() (int, int, error) {
	width, height, err := term.GetSize(c.out.Fd())
	if err != nil {
		return 0, 0, errors.Join(err, ErrNotTerminal)
	}

	return width, height, nil
}

func (c *Console) Read(p []byte) (int, error) {
	return c.reader.Read(p)
}

func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// CancelInput unblocks a pending Read, which then returns cancelreader.ErrCanceled.
func (c *Console) CancelInput() bool {
	return c.reader.Cancel()
}

// Close shows the cursor, leaves the alternate screen and restores the saved terminal mode.
func (c *Console) Close() error {
	c.closeOnce.Do(func() {
		var errs []error
		if _, err := c.out.WriteString(ansi.ResetStyle + ansi.ShowCursor + ansi.ResetAltScreenSaveCursorMode); err != nil {
			errs = append(errs, err)
		}

		if err := term.Restore(c.in.Fd(), c.saved); err != nil {
			errs = append(errs, errors.Join(err, errTerminalRestore))
		}

		if err := c.reader.Close(); err != nil {
			errs = append(errs, err)
		}

		c.closeErr = errors.Join(errs...)
	})

	return c.closeErr
}
