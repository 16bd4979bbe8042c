package ui

import (
	"log/slog"

	"github.com/leighmacdonald/tirek/internal/ui/model"
)

// Resize re-reads the terminal size and applies it. The size query happens before the lock is taken.
func (u *UI) Resize() {
	width, height, err := u.term.Size()
	if err != nil {
		slog.Error("Failed to query terminal size", slog.String("error", err.Error()))

		return
	}

	u.shared.resize(model.Dimensions{Height: height, Width: width})
}
