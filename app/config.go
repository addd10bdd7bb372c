package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dshills/chassis/options"
)

// ParseConfig resolves the home and config locations from args, writes a
// commented default config if none exists, and parses args merged with
// the config file into the option view that Initialize hands to plugins.
// Command-line values win over file values; file values win over
// defaults.
func (a *App) ParseConfig(args []string) error {
	home, config := options.Prescan(args)
	if home != "" {
		abs, err := filepath.Abs(home)
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		a.homeDir = abs
	}
	if config != "" {
		a.configFile = config
	}

	path := a.ConfigFile()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := a.opts.WriteDefaultFile(path); err != nil {
			return err
		}
		a.logger.Info().Str("path", path).Msg("wrote default config")
	}

	vals, err := a.opts.Parse(args, path)
	if err != nil {
		return err
	}
	a.vals = vals

	if lvl := vals.String("log-level"); lvl != "" {
		parsed, err := zerolog.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("log-level: %w", err)
		}
		a.logger = a.logger.Level(parsed)
	}
	return nil
}
