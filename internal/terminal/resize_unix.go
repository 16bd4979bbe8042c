//go:build unix

package terminal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WatchResize calls onResize for every SIGWINCH until ctx is done. The signal is only turned
// into a call here; onResize runs on this goroutine, never in signal context.
func WatchResize(ctx context.Context, onResize func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGWINCH)
	defer signal.Stop(signals)

	for {
		select {
		case <-signals:
			onResize()
		case <-ctx.Done():
			return
		}
	}
}
