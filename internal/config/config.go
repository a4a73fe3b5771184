package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Source names one dataset file shown as a tab.
type Source struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
	// ItemsPath is a JSONPath selecting item objects inside the document.
	ItemsPath string `mapstructure:"items_path"`
}

// Log configures the structured log file.
type Log struct {
	// Level: "debug", "info" (default), "warn" or "error".
	Level string `mapstructure:"level"`
	// Format: "text" (default) or "json".
	Format string `mapstructure:"format"`
	// File receives log output; the terminal belongs to the TUI.
	File string `mapstructure:"file"`
}

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// Sources are the datasets opened when no files are given on the command line.
	Sources []Source `mapstructure:"sources"`
	// ConfirmDownload asks before presenting the download payload.
	ConfirmDownload bool `mapstructure:"confirm_download"`
	// CopyOnDownload also places the download payload on the system clipboard.
	CopyOnDownload bool `mapstructure:"copy_on_download"`
	// Watch reloads a dataset when its file changes.
	Watch bool `mapstructure:"watch"`
	// WatchDebounce coalesces bursts of file events.
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
	// CacheTTL bounds how long a dataset read is reused.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Log      Log           `mapstructure:"log"`
	Keys     KeyBindings   `mapstructure:"keys"`
}

// Load reads configuration from ~/.config/dgv/config.yaml (or TOML/JSON).
func Load() (*Config, error) {
	return LoadFrom(configDirectory(), ".")
}

// LoadFrom reads configuration from the first of dirs holding a config file.
func LoadFrom(dirs ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	setDefaults(v)

	v.SetEnvPrefix("DGV")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine; use defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("confirm_download", false)
	v.SetDefault("copy_on_download", false)
	v.SetDefault("watch", true)
	v.SetDefault("watch_debounce", 300*time.Millisecond)
	v.SetDefault("cache_ttl", 2*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "dgv.log"))

	kb := DefaultKeyBindings()
	v.SetDefault("keys.quit", kb.Quit)
	v.SetDefault("keys.help", kb.Help)
	v.SetDefault("keys.next_tab", kb.NextTab)
	v.SetDefault("keys.prev_tab", kb.PrevTab)
	v.SetDefault("keys.up", kb.Up)
	v.SetDefault("keys.down", kb.Down)
	v.SetDefault("keys.page_up", kb.PageUp)
	v.SetDefault("keys.page_down", kb.PageDown)
	v.SetDefault("keys.top", kb.Top)
	v.SetDefault("keys.bottom", kb.Bottom)
	v.SetDefault("keys.toggle", kb.Toggle)
	v.SetDefault("keys.toggle_all", kb.ToggleAll)
	v.SetDefault("keys.download", kb.Download)
	v.SetDefault("keys.goto", kb.GoTo)
	v.SetDefault("keys.copy", kb.Copy)
	v.SetDefault("keys.refresh", kb.Refresh)
	v.SetDefault("keys.back", kb.Back)
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dgv")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dgv")
}
