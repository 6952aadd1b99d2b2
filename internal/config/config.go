// Package config loads the server configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sauerbraten/jsonfile"

	"github.com/sauerbraten/arbiter/pkg/definitions/gamemode"
	"github.com/sauerbraten/arbiter/pkg/maprot"
)

type Config struct {
	ArenaDir            string       `json:"arena_dir"            env:"ARBITER_ARENA_DIR"`
	Rotation            maprot.Pools `json:"rotation"`
	FallbackMode        gamemode.ID  `json:"fallback_mode"        env:"ARBITER_FALLBACK_MODE"`
	IntermissionSeconds int          `json:"intermission_seconds" env:"ARBITER_INTERMISSION_SECONDS"`
	HistoryDB           string       `json:"history_db"           env:"ARBITER_HISTORY_DB"`
	WatchArenas         bool         `json:"watch_arenas"         env:"ARBITER_WATCH_ARENAS"`
}

func Default() *Config {
	return &Config{
		ArenaDir:            "arenas",
		FallbackMode:        gamemode.FFA,
		IntermissionSeconds: 10,
		HistoryDB:           "history.db",
		WatchArenas:         true,
	}
}

// Load reads the config file at path (JSON, // comments allowed) on top of
// the defaults, then applies ARBITER_* environment variables. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	conf := Default()

	if path != "" {
		if err := jsonfile.ParseFile(path, conf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := env.Parse(conf); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if !gamemode.Valid(c.FallbackMode) {
		return fmt.Errorf("invalid fallback mode %d", c.FallbackMode)
	}
	if len(c.Rotation[c.FallbackMode]) == 0 {
		return fmt.Errorf("no arenas in rotation for fallback mode %s", c.FallbackMode)
	}
	if c.IntermissionSeconds < 0 {
		return errors.New("intermission_seconds must not be negative")
	}
	if c.ArenaDir == "" {
		return errors.New("arena_dir must be set")
	}
	return nil
}
