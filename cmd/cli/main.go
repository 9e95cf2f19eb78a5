package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/minaorangina/phaseten/cli"
	"github.com/minaorangina/phaseten/config"
	"github.com/minaorangina/phaseten/game"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load config: %s", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Could not build logger: %s", err)
	}
	defer logger.Sync()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting game", zap.Int64("seed", seed), zap.Int("players", cfg.Players))

	g, err := game.New(game.Opts{
		Names:      cfg.PlayerNames(),
		NumPlayers: cfg.Players,
		HandSize:   cfg.HandSize,
		Rand:       rand.New(rand.NewSource(seed)),
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("could not initialise a new game", zap.Error(err))
	}

	if err := cli.NewController(os.Stdin, os.Stdout, g, logger).Run(); err != nil {
		logger.Fatal("game stopped", zap.Error(err))
	}
}

// newLogger logs everything to stderr in debug mode. Otherwise only
// warnings and above are written so they don't crowd the table.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
