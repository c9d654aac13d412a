package main

import (
	"flag"
	"os"

	"github.com/arhyth/ledgersim"
	"github.com/bwmarrin/snowflake"
	"github.com/joho/godotenv"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("error loading .env file")
	}

	cfp := flag.String("config", os.Getenv("LEDGERSIM_CONFIG"), "path to configuration file")
	flag.Parse()
	cfg, err := ledgersim.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *cfp).Msg("error loading config file")
	}
	cfg.ApplyEnv()
	zerolog.SetGlobalLevel(cfg.LogLevel())

	limits, err := cfg.CheckingLimits()
	if err != nil {
		logger.Fatal().Err(err).Msg("error reading checking limits")
	}
	node, err := snowflake.NewNode(cfg.IDs.Node)
	if err != nil {
		logger.Fatal().Err(err).Int64("node", cfg.IDs.Node).Msg("error creating ID node")
	}

	store := ledgersim.NewMemoryStore()
	impl, err := ledgersim.NewService(store, node, limits, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting service")
	}
	svc := ledgersim.Chain(impl,
		ledgersim.NewLoggingMiddleware(&logger),
		ledgersim.NewValidationMiddleware(),
	)

	if cfg.Seed != "" {
		sd, err := ledgersim.LoadSeed(cfg.Seed)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.Seed).Msg("error reading seed file")
		}
		if err = sd.Apply(svc); err != nil {
			logger.Fatal().Err(err).Msg("error applying seed")
		}
	}

	console := ledgersim.NewConsole(svc, os.Stdin, os.Stdout, cfg.Statements.Dir, &logger)
	if err = console.Run(); err != nil {
		logger.Fatal().Err(err).Msg("error reading input")
	}
}
