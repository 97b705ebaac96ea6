// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/theme"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Field  FieldConfig   `toml:"field"`

	// Keys maps key specs such as "ctrl+u" to action names; "none" unbinds.
	Keys map[string]string `toml:"keys"`

	// Styles overrides entries of the built-in theme.
	Styles map[string]theme.StyleDef `toml:"styles"`

	// ThemeFile is an optional theme file applied before Styles.
	ThemeFile string `toml:"theme_file"`

	// Undecoded lists keys in the config file that matched nothing.
	Undecoded []string `toml:"-"`
}

// FieldConfig describes the prompt field.
type FieldConfig struct {
	Label   string `toml:"label"`
	Width   int    `toml:"width"`
	Initial string `toml:"initial"`
	Backend string `toml:"backend"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Field: FieldConfig{
			Label:   DefaultLabel,
			Width:   DefaultWidth,
			Initial: DefaultInitial,
			Backend: BackendTcell,
		},
	}
}

// DefaultPath returns the config file location under the user config dir,
// or "" when there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. Keys absent from the file keep
// their current values; a missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, k := range metadata.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, k.String())
	}
	return nil
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Field.Width <= 0 {
		c.Field.Width = defaults.Field.Width
	}
	switch strings.ToLower(c.Field.Backend) {
	case BackendTcell, BackendTea:
		c.Field.Backend = strings.ToLower(c.Field.Backend)
	default:
		c.Field.Backend = defaults.Field.Backend
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Theme builds the theme described by ThemeFile and Styles.
func (c *Config) Theme() (*theme.Theme, error) {
	t := theme.Default()
	if c.ThemeFile != "" {
		loaded, err := theme.LoadFile(c.ThemeFile, t)
		if err != nil {
			return t, err
		}
		t = loaded
	}
	return theme.Apply(t, c.Styles)
}

// Load builds the configuration from defaults, the config file and flags,
// in that order. configFilePath overrides the default location; flags may
// be nil. Parse errors are returned together with the defaults so the
// caller can decide whether to continue.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}

	var loadErr error
	if path != "" {
		fileCfg := NewDefaultConfig()
		if err := loadFromFile(path, fileCfg); err != nil {
			loadErr = err
		} else {
			cfg = fileCfg
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}
