package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/leighmacdonald/tirek/internal/ui/model"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader builds a loader searching configPath (when set), $XDG_CONFIG_HOME/tirek and the working
// directory. Changes are only sent on changes once Watch has been called.
func NewLoader(configPath string, changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("middle_min_height", model.DefaultMiddleMinHeight)
	loader.SetDefault("middle_row_offset", model.DefaultMiddleRowOffset)
	loader.SetDefault("update_freq_ms", 1000)
	loader.SetDefault("help_scroll_step", 1)
	loader.SetDefault("ascii", false)
	loader.SetDefault("log_level", "info")
	loader.SetDefault("debug", false)
	loader.SetConfigType("yaml")
	if configPath != "" {
		loader.SetConfigFile(configPath)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file for external edits.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("file", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

func (cl *Loader) Write(config Config) error {
	cl.Set("middle_min_height", config.MiddleMinHeight)
	cl.Set("middle_row_offset", config.MiddleRowOffset)
	cl.Set("update_freq_ms", config.UpdateFreqMs)
	cl.Set("help_scroll_step", config.HelpScrollStep)
	cl.Set("ascii", config.ASCII)
	cl.Set("log_level", config.LogLevel)
	cl.Set("debug", config.Debug)

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file if one exists. A missing file is not an error; defaults and
// environment variables still apply.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}

// WriteDefaults creates a config file at configPath holding the default values.
func WriteDefaults(configPath string) error {
	loader := NewLoader(configPath, nil)

	config, err := loader.Read()
	if err != nil {
		return err
	}

	return loader.Write(config)
}
