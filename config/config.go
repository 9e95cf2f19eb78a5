// Package config reads game settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

const (
	MinPlayers  = 2
	MaxPlayers  = 6
	MaxHandSize = 16
)

var (
	ErrPlayerCount = errors.New("player count out of range")
	ErrHandSize    = errors.New("hand size out of range")
	ErrNameCount   = errors.New("more names than players")
)

// Config holds everything needed to set up a local game.
// Names is semicolon separated in the environment.
type Config struct {
	Players  int      `env:"PHASETEN_PLAYERS,default=2"`
	Names    []string `env:"PHASETEN_NAMES"`
	Seed     int64    `env:"PHASETEN_SEED,default=0"`
	HandSize int      `env:"PHASETEN_HAND_SIZE,default=10"`
	Debug    bool     `env:"PHASETEN_DEBUG,default=false"`
}

func Default() Config {
	return Config{
		Players:  2,
		HandSize: 10,
	}
}

// Load decodes the environment over the defaults and validates the result.
// A value that does not parse is an error, not a silent default.
func Load() (Config, error) {
	cfg := Default()
	if err := envdecode.StrictDecode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Players < MinPlayers || c.Players > MaxPlayers {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrPlayerCount, c.Players, MinPlayers, MaxPlayers)
	}
	if c.HandSize < 1 || c.HandSize > MaxHandSize {
		return fmt.Errorf("%w: %d (want 1-%d)", ErrHandSize, c.HandSize, MaxHandSize)
	}
	if len(c.Names) > c.Players {
		return fmt.Errorf("%w: %d names for %d players", ErrNameCount, len(c.Names), c.Players)
	}
	return nil
}

// PlayerNames returns one name per player, filling gaps with "Player N"
func (c Config) PlayerNames() []string {
	names := make([]string, c.Players)
	for i := range names {
		if i < len(c.Names) && c.Names[i] != "" {
			names[i] = c.Names[i]
			continue
		}
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	return names
}
