// Package ui runs the dashboard: a render loop and an input loop sharing one lock-guarded state, plus
// the entry points the rest of the program uses to report resizes, status updates and config reloads.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/leighmacdonald/tirek/internal/config"
	"github.com/leighmacdonald/tirek/internal/state"
	"github.com/leighmacdonald/tirek/internal/ui/input"
	"github.com/leighmacdonald/tirek/internal/ui/model"
	"github.com/leighmacdonald/tirek/internal/ui/pages"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUIExit    = errors.New("ui error returned")
	errLoopPanic = errors.New("ui loop panicked")
	errSize      = errors.New("failed to query terminal size")
)

// Terminal is the device the dashboard draws on. Only the render loop writes and only the input loop
// reads.
type Terminal interface {
	io.ReadWriter
	// Size returns the width and height in cells.
	Size() (int, int, error)
	// CancelInput unblocks a pending Read.
	CancelInput() bool
}

type UI struct {
	term     Terminal
	feed     state.Source
	keys     input.Map
	info     pages.BuildInfo
	shared   *shared
	done     chan struct{}
	stopOnce sync.Once
}

func New(term Terminal, feed state.Source, conf config.Config, info pages.BuildInfo) (*UI, error) {
	width, height, err := term.Size()
	if err != nil {
		return nil, errors.Join(err, errSize)
	}

	dims := model.Dimensions{Height: height, Width: width}
	slog.Info("Terminal size", slog.Int("width", width), slog.Int("height", height))

	shared := newShared(dims, conf.Layout())
	shared.helpStep = conf.ScrollStep()
	shared.helpLines = pages.HelpLines(info, input.Default.Bindings(), asciiOnly(conf))
	shared.prefLines = pages.PreferenceLines(pages.DefaultPreferences())

	return &UI{
		term:   term,
		feed:   feed,
		keys:   input.Default,
		info:   info,
		shared: shared,
		done:   make(chan struct{}),
	}, nil
}

func asciiOnly(conf config.Config) bool {
	return conf.ASCII || pages.ASCIIOnly(os.Getenv("TERM"))
}

// Run blocks until the user quits, ctx is canceled or one of the loops fails.
func (u *UI) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer u.Stop()

		return guard("render", u.renderLoop)
	})

	group.Go(func() error {
		defer u.Stop()

		return guard("input", u.inputLoop)
	})

	group.Go(func() error {
		select {
		case <-groupCtx.Done():
			u.Stop()
		case <-u.done:
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	slog.Debug("UI stopped")

	return nil
}

// guard turns a panic inside a loop into an error so the caller still gets to restore the terminal.
func guard(name string, loop func() error) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: %s: %v", errLoopPanic, name, recovered)
		}
	}()

	return loop()
}

// Stop clears the running flag, wakes the render loop and unblocks the input loop. Safe to call more
// than once.
func (u *UI) Stop() {
	u.shared.stop()
	u.stopOnce.Do(func() {
		close(u.done)
		u.term.CancelInput()
	})
}

// RefreshStatus asks for the bottom bar to be repainted with the latest feed snapshot.
func (u *UI) RefreshStatus() {
	u.shared.refreshStatus()
}

// ApplyConfig applies a reloaded configuration. Layout changes go through the same focus normalization
// as a resize.
func (u *UI) ApplyConfig(conf config.Config) {
	u.shared.setLayout(conf.Layout(), conf.ScrollStep())
	u.shared.setHelpLines(pages.HelpLines(u.info, u.keys.Bindings(), asciiOnly(conf)))
	slog.Info("Config applied",
		slog.Int("middle_min_height", conf.MiddleMinHeight),
		slog.Int("middle_row_offset", conf.MiddleRowOffset))
}
