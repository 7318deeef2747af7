// Package config loads colorcue settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/colorcue/internal/errs"
)

// EnvPrefix prefixes every colorcue environment variable.
const EnvPrefix = "COLORCUE_"

// DatabaseFile is the database file name inside the data directory.
const DatabaseFile = "db.data"

// ErrParsingConfig is returned when environment values cannot be parsed.
var ErrParsingConfig = fmt.Errorf("%w: failed to parse configuration", errs.ErrInvalidInput)

// Config holds the settings that command-line flags can override.
type Config struct {
	// Database is the word database path. Empty selects DefaultDatabasePath.
	Database string `env:"DATABASE"`

	// Separator splits scores from words in the database.
	Separator string `env:"SEPARATOR" envDefault:","`

	// Descriptors is a descriptor list file replacing the built-in one.
	Descriptors string `env:"DESCRIPTORS"`

	// NoColor disables coloured output.
	NoColor bool `env:"NO_COLOR"`

	// AcceleratedSearch looks words up with grep before scanning.
	AcceleratedSearch bool `env:"ACCELERATED_SEARCH" envDefault:"true"`

	// MaxWordListBytes limits how much decompressed word list gendb reads.
	// Zero means no limit.
	MaxWordListBytes int64 `env:"MAX_WORDLIST_BYTES" envDefault:"0"`
}

// Load reads envFile, when set, into the process environment and then
// parses the COLORCUE_ variables. Variables already set win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, errs.IO("load env file", err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.Database == "" {
		path, err := DefaultDatabasePath()
		if err != nil {
			return Config{}, err
		}
		cfg.Database = path
	}
	return cfg, nil
}

// DefaultDatabasePath returns the per-user database location for this OS.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	dir, err := dataDir(runtime.GOOS, os.Getenv, home)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DatabaseFile), nil
}

func dataDir(goos string, getenv func(string) string, home string) (string, error) {
	switch goos {
	case "windows":
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "colorcue"), nil
		}
	case "darwin":
		if home != "" {
			return filepath.Join(home, "Library", "Preferences", "colorcue"), nil
		}
	default:
		if xdg := getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "colorcue"), nil
		}
		if home != "" {
			return filepath.Join(home, ".local", "share", "colorcue"), nil
		}
	}
	return "", fmt.Errorf("%w: cannot locate a data directory, set %sDATABASE", errs.ErrSetup, EnvPrefix)
}
