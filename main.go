package main

import (
	"context"
	"math/rand"
	"os"

	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := ""
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	board := game.StandardBoard()
	tree := game.BuildTree(board)
	log.Info().Msgf("built game tree with %d positions", tree.Len())

	options := []searcher.Option{
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithMetrics(),
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}
	s := searcher.New(tree, options...)

	if cfg.CachePath != "" {
		if err := s.LoadCache(cfg.CachePath); err != nil {
			log.Info().Msgf("no usable cache snapshot: %v", err)
		}
	}

	metric, err := s.WarmUp(context.Background(), board, searcher.Maximizing)
	if err != nil {
		log.Fatal().Err(err).Msg("warm-up failed")
	}
	log.Info().Msgf("warm-up done in %s: %d candidates (%d invalid), %d evaluations, %d cache hits, %d entries",
		metric.Duration, metric.Candidates, metric.Invalid, metric.Evaluations, metric.CacheHits, metric.Entries)

	value, err := s.Evaluate(game.Root, searcher.Maximizing)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to evaluate root")
	}
	log.Info().Msgf("root value under optimal play: %d", value)

	for i := 0; i < cfg.Games; i++ {
		e := engine.Local(tree, s, s)
		value, line, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
		log.Info().Msgf("game %d: line %q value %d", i+1, line, value)
	}

	if cfg.CachePath != "" {
		if err := s.SaveCache(cfg.CachePath); err != nil {
			log.Fatal().Err(err).Msg("failed to save cache snapshot")
		}
	}

	if cfg.Speedup {
		if err := experiments.RunSpeedup(board, cfg.SpeedupRuns); err != nil {
			log.Fatal().Err(err).Msg("speedup experiment failed")
		}
	}
}
