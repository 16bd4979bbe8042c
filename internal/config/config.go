package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/tirek/internal/ui/model"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "tirek"
	DefaultConfigName = "tirek"
	DefaultLogName    = "tirek.log"
	EnvPrefix         = "tirek"

	DefaultUpdateInterval = time.Second
)

type Config struct {
	// MiddleMinHeight is the smallest terminal height at which the middle tab bar is shown.
	MiddleMinHeight int `mapstructure:"middle_min_height"`
	// MiddleRowOffset places the middle tab bar this many rows above the status bar.
	MiddleRowOffset int `mapstructure:"middle_row_offset"`
	// UpdateFreqMs is how often the status bar is refreshed from the data feed.
	UpdateFreqMs int `mapstructure:"update_freq_ms,omitempty"`
	// HelpScrollStep is the number of lines one arrow press scrolls the help pane.
	HelpScrollStep int `mapstructure:"help_scroll_step"`
	// ASCII forces plain ASCII punctuation in the help text regardless of $TERM.
	ASCII    bool   `mapstructure:"ascii"`
	LogLevel string `mapstructure:"log_level"`
	Debug    bool   `mapstructure:"debug"`
}

// Layout returns the middle bar thresholds, falling back to the defaults for unset values.
func (c Config) Layout() model.Layout {
	layout := model.DefaultLayout()
	if c.MiddleMinHeight > 0 {
		layout.MiddleMinHeight = c.MiddleMinHeight
	}

	if c.MiddleRowOffset > 0 {
		layout.MiddleRowOffset = c.MiddleRowOffset
	}

	return layout
}

// UpdateInterval is the status refresh period. Unset or negative values use the one second default.
func (c Config) UpdateInterval() time.Duration {
	if c.UpdateFreqMs <= 0 {
		return DefaultUpdateInterval
	}

	return time.Millisecond * time.Duration(c.UpdateFreqMs)
}

func (c Config) ScrollStep() int {
	return max(c.HelpScrollStep, 1)
}

// Level maps LogLevel onto a slog level. Debug overrides it.
func (c Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(logPath)
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
