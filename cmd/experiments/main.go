package main

import (
	"os"

	"reversi/experiments"
	"reversi/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	name := pflag.StringP("experiment", "x", "all", "experiment to run: depth, random_baseline, pruning_throughput or all")
	games := pflag.IntP("games", "n", meta.EXPERIMENT_GAMES, "games per matchup and starting side against random agents")
	out := pflag.StringP("out", "o", "experiments", "directory for the CSV records")
	level := pflag.String("log-level", meta.EXPERIMENT_LOG_LEVEL, "log level")
	pflag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	selected, ok := experiments.ByName(*name)
	if !ok {
		log.Fatal().Msgf("unknown experiment %q", *name)
	}
	for _, experiment := range selected {
		dir, err := experiments.Run(*out, experiment, *games)
		if err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", experiment.Name)
		}
		log.Info().Msgf("%s records written to %s", experiment.Name, dir)
	}
}
