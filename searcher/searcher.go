package searcher

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/utils"
)

type Option func(s *Searcher)

// WithRand injects the randomness source used for tie-breaking, so tests
// can pin the seed.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithGoroutines sets the warm-up parallelism.
func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// Searcher evaluates positions of one game tree through a memoization
// cache. The cache is created with the searcher and scoped to its tree;
// there is no way to attach it to a different tree, which would silently
// return wrong answers.
type Searcher struct {
	tree       *game.Tree
	cache      *Cache
	rng        *rand.Rand
	rngMu      sync.Mutex
	goroutines int
	metrics    metrics.Collector
}

func New(tree *game.Tree, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		tree:       tree,
		cache:      NewCache(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Cache exposes the searcher's cache for inspection and snapshots.
func (s *Searcher) Cache() *Cache {
	return s.cache
}

// Evaluate returns the memoized minimax value of the position for the
// given role. The cache is consulted at every recursion level, so each
// reachable (position, role) pair is computed at most once over the
// searcher's lifetime.
func (s *Searcher) Evaluate(id game.Position, role Role) (int, error) {
	key := Key{ID: id, Role: role}
	if score, ok := s.cache.Get(key); ok {
		s.metrics.AddHit()
		return score, nil
	}
	return s.cache.GetOrCompute(key, func() (int, error) {
		s.metrics.AddEvaluation()

		node, err := s.tree.Node(id)
		if err != nil {
			return 0, err
		}
		if node.Terminal {
			return node.Value, nil
		}
		if len(node.Children) == 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTree, id)
		}

		var best int
		for i, child := range node.Children {
			score, err := s.Evaluate(child, role.Flip())
			if err != nil {
				return 0, err
			}
			if i == 0 || better(role, score, best) {
				best = score
			}
		}
		return best, nil
	})
}

// DetermineMove picks the best next move from the position for the given
// role: each child is evaluated with the flipped role, and one of the
// children achieving the extremal score is chosen uniformly at random. The
// extremal score is deterministic; only the tie-break varies across calls.
func (s *Searcher) DetermineMove(id game.Position, role Role) (game.Symbol, error) {
	children, err := s.tree.Children(id)
	if err != nil {
		return 0, err
	}
	if len(children) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoLegalMoves, id)
	}

	scores := make([]int, len(children))
	for i, child := range children {
		score, err := s.Evaluate(child, role.Flip())
		if err != nil {
			return 0, err
		}
		scores[i] = score
	}

	candidates := utils.ExtremalIndices(scores, role == Maximizing)
	choice := children[candidates[s.intn(len(candidates))]]
	return choice.Last(), nil
}

// intn serializes access to the shared rng; warm-up calls DetermineMove
// from multiple goroutines.
func (s *Searcher) intn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	return s.rng.Intn(n)
}
