package experiments

import (
	"context"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

// RunSpeedup measures warm-up wall time across goroutine counts. Each run
// gets a fresh searcher (and therefore a cold cache) over a shared tree;
// the candidate space is embarrassingly parallel, so the interesting part
// is how far the shared cache serializes the workers.
func RunSpeedup(board game.Board, runsPerConfig int) error {
	goroutineCounts := []int{1, 2, 4, 8}

	tree := game.BuildTree(board)
	log.Info().Msgf("running warm-up speedup experiment on %d positions", tree.Len())

	writer, err := metrics.NewWriter()
	if err != nil {
		return err
	}

	var records []metrics.WarmupRecord
	run := 0
	for _, goroutines := range goroutineCounts {
		for i := 0; i < runsPerConfig; i++ {
			s := searcher.New(tree,
				searcher.WithGoroutines(goroutines),
				searcher.WithMetrics(),
			)
			metric, err := s.WarmUp(context.Background(), board, searcher.Maximizing)
			if err != nil {
				return err
			}

			run++
			records = append(records, metrics.WarmupRecord{Run: run, WarmupMetric: metric})
			log.Info().Msgf("run %d: %d goroutines warmed %d entries in %s (%d candidates, %d invalid)",
				run, metric.Goroutines, metric.Entries, metric.Duration, metric.Candidates, metric.Invalid)
		}
	}

	return writer.WriteWarmupRecords(records)
}
