package searcher

import (
	"context"
	"errors"

	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"
)

// WarmUp drives every permutation of 1..Cells board symbols through
// DetermineMove with the given role, so that afterwards every reachable
// position has been forced through the evaluator and the cache answers
// without recursion. Most candidates are syntactically well-formed but not
// reachable by legal play; those fail DetermineMove with ErrNotFound or
// ErrNoLegalMoves and are discarded as expected noise. Any other error
// aborts the pass.
//
// Candidates are processed by the configured number of goroutines.
// Cancellation is cooperative: the context is checked between candidates,
// and a canceled pass leaves the cache partially populated but consistent.
func (s *Searcher) WarmUp(ctx context.Context, board game.Board, role Role) (metrics.WarmupMetric, error) {
	s.metrics.Start(s.goroutines)

	candidates := make(chan game.Position, 256)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(candidates)
		return generate(ctx, board, candidates)
	})

	for i := 0; i < s.goroutines; i++ {
		g.Go(func() error {
			for id := range candidates {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.metrics.AddCandidate()

				_, err := s.DetermineMove(id, role)
				switch {
				case err == nil:
				case errors.Is(err, game.ErrNotFound), errors.Is(err, ErrNoLegalMoves):
					s.metrics.AddInvalid()
				default:
					return err
				}
			}
			return nil
		})
	}

	err := g.Wait()
	metric := s.metrics.Complete()
	metric.Entries = s.cache.Len()
	return metric, err
}

// generate emits every permutation of k board symbols for k = 1..Cells.
func generate(ctx context.Context, board game.Board, out chan<- game.Position) error {
	n := board.Cells()
	for k := 1; k <= n; k++ {
		gen := combin.NewPermutationGenerator(n, k)
		perm := make([]int, k)
		for gen.Next() {
			gen.Permutation(perm)

			id := make([]game.Symbol, k)
			for i, c := range perm {
				id[i] = board.Symbols[c]
			}

			select {
			case out <- game.Position(id):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}
