package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the gridsheet config.toml file
type Config struct {
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
	SQL SQLConfig `toml:"sql"`
}

// UIConfig contains settings for the interactive sheet view
type UIConfig struct {
	Title           string   `toml:"title" config:"ui.title" default:"Workspace / Folder 2 / Spreadsheet 3" desc:"Breadcrumb shown in the header bar"`
	DefaultColWidth int      `toml:"default_col_width" config:"ui.default_col_width" default:"24" min:"4" max:"200" desc:"Maximum width of a column in cells"`
	PaddingRows     int      `toml:"padding_rows" config:"ui.padding_rows" default:"0" min:"0" max:"1000" desc:"Empty rows rendered below the data (0 = fill viewport)"`
	UserName        string   `toml:"user_name" config:"ui.user_name" desc:"Name shown in the header profile"`
	UserEmail       string   `toml:"user_email" config:"ui.user_email" desc:"Email shown in the header profile"`
	Tabs            []string `toml:"tabs"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `toml:"level" config:"log.level" default:"info" desc:"Log level (debug, info, warn, error)"`
	File  string `toml:"file" config:"log.file" desc:"Log file path (empty = gridsheet.log next to config)"`
}

// SQLConfig contains settings for the sql data source
type SQLConfig struct {
	URL     string `toml:"url" config:"sql.url" desc:"PostgreSQL connection URL"`
	Timeout int    `toml:"timeout" config:"sql.timeout" default:"60" min:"1" max:"3600" desc:"Query timeout in seconds"`
}

// DefaultTabs are the footer tabs shown when none are configured
var DefaultTabs = []string{"All Orders", "Pending", "Reviewed", "Arrived"}

// DefaultConfig returns a new config with default values
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Title:           "Workspace / Folder 2 / Spreadsheet 3",
			DefaultColWidth: 24,
			Tabs:            append([]string(nil), DefaultTabs...),
		},
		Log: LogConfig{
			Level: "info",
		},
		SQL: SQLConfig{
			Timeout: 60,
		},
	}
}

// DefaultPath returns the path to the config file
// Follows XDG Base Directory spec on Linux, platform conventions elsewhere
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Dir returns the gridsheet config directory
func Dir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "gridsheet")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "gridsheet")
	default: // Linux and others - follow XDG
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "gridsheet")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gridsheet")
	}
}

// Load reads the config file at path, starting from defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// applyDefaults fills values a partial file left empty
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.UI.Title == "" {
		c.UI.Title = defaults.UI.Title
	}
	if c.UI.DefaultColWidth == 0 {
		c.UI.DefaultColWidth = defaults.UI.DefaultColWidth
	}
	// NOTE: PaddingRows is not defaulted because 0 is a valid value
	// (fill the viewport).
	if len(c.UI.Tabs) == 0 {
		c.UI.Tabs = defaults.UI.Tabs
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.SQL.Timeout == 0 {
		c.SQL.Timeout = defaults.SQL.Timeout
	}
}

func (c *Config) applyEnv() {
	if url := os.Getenv("GRIDSHEET_SQL_URL"); url != "" {
		c.SQL.URL = url
	}
}

// Save writes the config file to path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// LogFile returns the configured log file, defaulting to gridsheet.log
// next to the config file at configPath
func (c *Config) LogFile(configPath string) string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(filepath.Dir(configPath), "gridsheet.log")
}

// GetValue returns a config value by key (uses reflection)
func (c *Config) GetValue(key string) (string, bool) {
	return getFieldValue(c, key)
}

// SetValue sets a config value by key (uses reflection with validation)
func (c *Config) SetValue(key, value string) error {
	return setFieldValue(c, key, value)
}
