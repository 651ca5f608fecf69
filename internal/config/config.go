// Package config loads the optional TOML configuration file.
//
// The file lives at ~/.config/sudoku/config.toml (or $XDG_CONFIG_HOME).
// Every field has a default; a missing file is not an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/oyasumi/sudoku/pkg/errors"
)

// appName is the directory name under the config home.
const appName = "sudoku"

// Config holds user preferences for game generation and display.
type Config struct {
	// Difficulty is the default for new games, in [0, 1].
	Difficulty float64 `toml:"difficulty"`

	// AlignLeft left-justifies cell content in the grid.
	AlignLeft bool `toml:"align_left"`

	// CandidatePrefix precedes candidate text in the grid.
	CandidatePrefix string `toml:"candidate_prefix"`

	// RedisAddr, when set, stores games in Redis instead of local files.
	RedisAddr string `toml:"redis_addr"`

	Styles Styles `toml:"styles"`
}

// Styles names ANSI colors for the display categories. Any lipgloss
// color value works: named ANSI numbers ("220") or hex ("#ff8800").
type Styles struct {
	Index     string `toml:"index"`
	Value     string `toml:"value"`
	Given     string `toml:"given"`
	Conflict  string `toml:"conflict"`
	Candidate string `toml:"candidate"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Difficulty:      0.5,
		CandidatePrefix: "*",
		Styles: Styles{
			Index:     "220", // amber, the classic index tint
			Value:     "255",
			Given:     "75",
			Conflict:  "167",
			Candidate: "35",
		},
	}
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file, applying defaults for absent fields.
// A missing file returns the defaults.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a specific config file.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if len(meta.Undecoded()) > 0 {
		return Default(), errors.New(errors.ErrCodeInvalidConfig,
			"unknown config key %q in %s", meta.Undecoded()[0].String(), path)
	}
	if err := errors.ValidateDifficulty(cfg.Difficulty); err != nil {
		return Default(), err
	}
	return cfg, nil
}
