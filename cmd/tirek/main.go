package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/tirek/internal/config"
	"github.com/leighmacdonald/tirek/internal/state"
	"github.com/leighmacdonald/tirek/internal/terminal"
	"github.com/leighmacdonald/tirek/internal/ui"
	"github.com/leighmacdonald/tirek/internal/ui/pages"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "tirek",
		Short: "Torrent client dashboard",
		Long:  `tirek - A torrent client with a terminal user interface`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about tirek",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	configInitCmd = &cobra.Command{
		Use:               "init",
		Short:             "Write a config file with the default values",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              configInit,
	}
)

var (
	errApp          = errors.New("application error")
	errConfigExists = errors.New("config file already exists")
)

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path (default "+config.Path(config.DefaultConfigName+".yaml")+")")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(versionCmd, configCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("tirek - Torrent client dashboard\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)         //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)          //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)            //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)     //nolint:forbidigo
}

// configInit writes the defaults (plus any TIREK_ environment overrides) to --config, or to the
// default path under $XDG_CONFIG_HOME. An existing file is left untouched.
func configInit(cmd *cobra.Command, _ []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = config.Path(config.DefaultConfigName + ".yaml")
	}

	if _, err := os.Stat(configPath); err == nil {
		return errors.Join(fmt.Errorf("%w: %s", errConfigExists, configPath), errApp)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	if err := config.WriteDefaults(configPath); err != nil {
		return errors.Join(err, errApp)
	}

	cmd.Printf("Wrote %s\n", configPath)

	return nil
}

// run is the main entry point of tirek.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config, 1)
	configLoader := config.NewLoader(cfgFile, configUpdates)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	// Setup file based logger. The console is taken over by the ui.
	logPath := config.Path(config.DefaultLogName)
	logFile, errLogger := config.LoggerInit(logPath, userConfig.Level())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting tirek", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", BuildGoVersion))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	console, errConsole := terminal.Open(os.Stdin, os.Stdout)
	if errConsole != nil {
		return errors.Join(errConsole, errApp)
	}

	// Runs on every exit path below, so the shell always gets its terminal back.
	defer func() {
		if err := console.Close(); err != nil {
			slog.Error("Failed to restore terminal", slog.String("error", err.Error()))
		}
	}()

	configPath := configLoader.Path()
	if configPath == "" {
		configPath = cfgFile
	}

	states := state.NewManager(userConfig.UpdateInterval())

	dashboard, errUI := ui.New(console, states, userConfig, pages.BuildInfo{
		Version:    BuildVersion,
		Commit:     BuildCommit,
		Date:       BuildDate,
		ConfigPath: configPath,
		LogPath:    logPath,
	})
	if errUI != nil {
		return errors.Join(errUI, errApp)
	}

	if err := NewApp(dashboard, states, configLoader, configUpdates).Start(ctx); err != nil {
		return errors.Join(err, errApp)
	}

	slog.Info("Shutdown complete")

	return nil
}
