package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/ratel-online/pieces/consts"
)

// Config drives the demo table.
type Config struct {
	Decks     int      `env:"PIECES_DECKS"      envDefault:"1"`
	Players   []string `env:"PIECES_PLAYERS"    envDefault:"Annie,Braum,Caitlyn" envSeparator:","`
	HandSize  int      `env:"PIECES_HAND_SIZE"  envDefault:"5"`
	DiceSides []int    `env:"PIECES_DICE_SIDES" envDefault:"6,6"                 envSeparator:","`

	// Seed makes shuffles reproducible; 0 uses the global source.
	Seed    int64 `env:"PIECES_SEED"`
	NoColor bool  `env:"PIECES_NO_COLOR"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Decks <= 0 {
		return consts.ErrorsInvalidArgument.Errorf("PIECES_DECKS must be > 0")
	}
	if len(c.Players) == 0 {
		return consts.ErrorsInvalidArgument.Errorf("PIECES_PLAYERS must name at least one player")
	}
	if c.HandSize < 0 {
		return consts.ErrorsInvalidArgument.Errorf("PIECES_HAND_SIZE must be >= 0")
	}
	if c.HandSize*len(c.Players) > c.Decks*consts.StandardDeckSize {
		return consts.ErrorsInvalidArgument.Errorf("not enough cards for %d hands of %d", len(c.Players), c.HandSize)
	}
	for _, sides := range c.DiceSides {
		if sides <= 0 {
			return consts.ErrorsInvalidArgument.Errorf("PIECES_DICE_SIDES must be > 0, got %d", sides)
		}
	}
	return nil
}
