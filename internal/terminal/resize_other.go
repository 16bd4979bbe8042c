//go:build !unix

package terminal

import "context"

// WatchResize has no signal to listen to on this platform; the size is only read at startup and
// on redraw requests.
func WatchResize(ctx context.Context, _ func()) {
	<-ctx.Done()
}
