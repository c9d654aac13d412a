package main

import (
	"flag"
	"os"

	"github.com/arhyth/ledgersim"
	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
)

// seeder loads a seed fixture into a throwaway session and prints the
// resulting accounts, so fixtures can be checked before use.
func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "", "path to configuration file")
	sdp := flag.String("seed", "seed.yml", "path to seed fixture")
	flag.Parse()

	cfg, err := ledgersim.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading config file")
	}
	limits, err := cfg.CheckingLimits()
	if err != nil {
		logger.Fatal().Err(err).Msg("error reading checking limits")
	}
	node, err := snowflake.NewNode(cfg.IDs.Node)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating ID node")
	}
	svc, err := ledgersim.NewService(ledgersim.NewMemoryStore(), node, limits, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting service")
	}

	sd, err := ledgersim.LoadSeed(*sdp)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *sdp).Msg("error reading seed file")
	}
	if err = sd.Apply(ledgersim.NewValidationMiddleware()(svc)); err != nil {
		logger.Fatal().Err(err).Msg("error applying seed")
	}
	if err = svc.ListAccounts(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("error listing accounts")
	}
}
