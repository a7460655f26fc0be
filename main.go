package main

import (
	"flag"
	"os"
	"othello/config"
	"othello/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Experiment config (YAML), defaults to alphabeta against random")
	level := flag.String("level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	result, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, a := range cfg.Agents {
		log.Info().Int("agent", a.ID).Str("strategy", a.Strategy).Int("wins", result.Wins[a.ID]).Msg("result")
	}
	log.Info().Int("ties", result.Ties).Str("dir", result.Dir).Msg("done")
}
