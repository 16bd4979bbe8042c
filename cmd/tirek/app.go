package main

import (
	"context"
	"log/slog"

	"github.com/leighmacdonald/tirek/internal/config"
	"github.com/leighmacdonald/tirek/internal/state"
	"github.com/leighmacdonald/tirek/internal/terminal"
	"github.com/leighmacdonald/tirek/internal/ui"
)

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing updates between the status feed, the config watcher and the ui.
type App struct {
	ui            *ui.UI
	state         *state.Manager
	loader        *config.Loader
	configUpdates <-chan config.Config
}

func NewApp(dashboard *ui.UI, states *state.Manager, loader *config.Loader, configUpdates <-chan config.Config) *App {
	return &App{
		ui:            dashboard,
		state:         states,
		loader:        loader,
		configUpdates: configUpdates,
	}
}

// Start brings up the background goroutines and blocks until the ui exits.
func (app *App) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Periodically repaint the status bar from the feed.
	go app.state.Start(runCtx, app.ui.RefreshStatus)

	// Window size changes.
	go terminal.WatchResize(runCtx, app.ui.Resize)

	if app.loader.Path() != "" {
		app.loader.Watch()
		go app.configUpdater(runCtx)
	}

	return app.ui.Run(runCtx)
}

func (app *App) configUpdater(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			app.state.SetInterval(conf.UpdateInterval())
			app.ui.ApplyConfig(conf)
		case <-ctx.Done():
			return
		}
	}
}
