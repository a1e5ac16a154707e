// Package config loads settings for the todos CLI.
//
// Sources are applied in order, later ones winning:
//  1. Defaults
//  2. Config file (--config, or config.toml in the user config dir)
//  3. Environment variables (TODOS_*)
//  4. CLI flags (applied by the caller)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTheme       = "classic"
	DefaultPlaceholder = "What are you going to do?"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"

	appDirName     = "todos"
	configFileName = "config.toml"
	envPrefix      = "TODOS_"
)

// Config is the merged configuration.
type Config struct {
	Theme       string `toml:"theme"`
	Placeholder string `toml:"placeholder"`
	AltScreen   bool   `toml:"alt_screen"`
	NoColor     bool   `toml:"no_color"`
	// SeedFile replaces the built-in seed. It is only ever read.
	SeedFile string `toml:"seed_file"`

	Log LogConfig `toml:"log"`
}

// LogConfig controls the charmbracelet/log logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// File receives log output. Empty means stderr for one-shot commands
	// and nowhere for the interactive UI, which owns the terminal.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:       DefaultTheme,
		Placeholder: DefaultPlaceholder,
		AltScreen:   true,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds a Config from defaults, a config file and the environment.
// An explicit path must exist; without one the user config file is used
// when present.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = UserConfigFile()
	}
	if path != "" {
		err := loadFile(cfg, path)
		if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := loadEnv(cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	return cfg, nil
}

// UserConfigFile returns <user config dir>/todos/config.toml, or "" when
// the platform has no config dir.
func UserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDirName, configFileName)
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(envPrefix + name)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = b
		return nil
	}

	str("THEME", &cfg.Theme)
	str("PLACEHOLDER", &cfg.Placeholder)
	str("SEED", &cfg.SeedFile)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("LOG_FILE", &cfg.Log.File)
	if err := boolean("ALT_SCREEN", &cfg.AltScreen); err != nil {
		return err
	}
	if err := boolean("NO_COLOR", &cfg.NoColor); err != nil {
		return err
	}
	// NO_COLOR convention: any non-empty value disables colour.
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		cfg.NoColor = true
	}
	return nil
}
