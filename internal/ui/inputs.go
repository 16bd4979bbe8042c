package ui

import (
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/leighmacdonald/tirek/internal/ui/input"
	"github.com/muesli/cancelreader"
)

var errInput = errors.New("failed to read terminal input")

// inputLoop decodes keys until quit is pressed or the input is closed or canceled.
func (u *UI) inputLoop() error {
	decoder := input.NewDecoder(u.term)

	for u.shared.isRunning() {
		token, err := decoder.Next()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, cancelreader.ErrCanceled) || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}

			return errors.Join(err, errInput)
		}

		u.handleToken(token)
	}

	return nil
}

func (u *UI) handleToken(token input.Token) {
	msg, ok := token.Key()
	if !ok {
		slog.Debug("Ignored input", slog.String("token", strconv.Quote(string(token))))

		return
	}

	switch {
	case key.Matches(msg, u.keys.Quit):
		u.shared.stop()
	case key.Matches(msg, u.keys.Redraw):
		u.shared.redraw()
	case key.Matches(msg, u.keys.Left):
		u.shared.moveSelection(input.Left)
	case key.Matches(msg, u.keys.Right):
		u.shared.moveSelection(input.Right)
	case key.Matches(msg, u.keys.FocusUp):
		u.shared.moveFocus(input.Up)
	case key.Matches(msg, u.keys.FocusDown):
		u.shared.moveFocus(input.Down)
	case key.Matches(msg, u.keys.Up):
		u.shared.scrollHelp(input.Up)
	case key.Matches(msg, u.keys.Down):
		u.shared.scrollHelp(input.Down)
	}
}
