package searcher

import (
	"testing"

	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

// scenarioTree is a 3-cell single-row game: the root has children a, b, c,
// all terminal with values +1, -1, +1.
func scenarioTree() *game.Tree {
	tree := game.NewTree()
	tree.Add(game.Root, &game.Node{Children: []game.Position{"a", "b", "c"}})
	tree.Add("a", &game.Node{Terminal: true, Value: 1})
	tree.Add("b", &game.Node{Terminal: true, Value: -1})
	tree.Add("c", &game.Node{Terminal: true, Value: 1})
	return tree
}

func rowBoard() game.Board {
	return game.Board{
		Symbols: []game.Symbol("abc"),
		Lines:   [][]game.Symbol{[]game.Symbol("abc")},
	}
}

func TestMinimax(t *testing.T) {
	t.Run("short-circuiting on a terminal position", func(t *testing.T) {
		// Children of a terminal node point nowhere; the evaluator must
		// return the stored value without touching them.
		tree := game.NewTree()
		tree.Add("a", &game.Node{Terminal: true, Value: -1, Children: []game.Position{"missing"}})

		for _, role := range []Role{Maximizing, Minimizing} {
			got, err := Minimax(tree, "a", role)

			require.NoError(t, err)
			require.Equal(t, -1, got, "Terminal value should be returned unchanged for %s", role)
		}
	})

	t.Run("maximizing picks the largest child score", func(t *testing.T) {
		got, err := Minimax(scenarioTree(), game.Root, Maximizing)

		require.NoError(t, err)
		require.Equal(t, 1, got)
	})

	t.Run("minimizing picks the smallest child score", func(t *testing.T) {
		got, err := Minimax(scenarioTree(), game.Root, Minimizing)

		require.NoError(t, err)
		require.Equal(t, -1, got)
	})

	t.Run("alternating roles by one recursion level", func(t *testing.T) {
		// Root -> a -> {ab: +1, ac: -1}. Evaluating the root as maximizer
		// evaluates a as minimizer, which picks -1.
		tree := game.NewTree()
		tree.Add(game.Root, &game.Node{Children: []game.Position{"a"}})
		tree.Add("a", &game.Node{Children: []game.Position{"ab", "ac"}})
		tree.Add("ab", &game.Node{Terminal: true, Value: 1})
		tree.Add("ac", &game.Node{Terminal: true, Value: -1})

		got, err := Minimax(tree, game.Root, Maximizing)

		require.NoError(t, err)
		require.Equal(t, -1, got)

		got, err = Minimax(tree, game.Root, Minimizing)

		require.NoError(t, err)
		require.Equal(t, 1, got)
	})

	t.Run("failing on a position absent from the tree", func(t *testing.T) {
		_, err := Minimax(scenarioTree(), "zz", Maximizing)

		require.ErrorIs(t, err, game.ErrNotFound)
	})

	t.Run("failing on a childless non-terminal position", func(t *testing.T) {
		tree := game.NewTree()
		tree.Add("a", &game.Node{})

		_, err := Minimax(tree, "a", Maximizing)

		require.ErrorIs(t, err, ErrInvalidTree,
			"A non-terminal position without children is a tree contract violation")
	})

	t.Run("solving tic-tac-toe to a draw", func(t *testing.T) {
		tree := game.BuildTree(game.StandardBoard())

		got, err := Minimax(tree, game.Root, Maximizing)

		require.NoError(t, err)
		require.Equal(t, 0, got, "Optimal play from the empty board should draw")
	})
}

func TestEvaluateMatchesMinimax(t *testing.T) {
	// The cache must be transparent: the memoized evaluator agrees with the
	// pure one on every reachable position and role.
	board := rowBoard()
	tree := game.BuildTree(board)
	s := New(tree)

	for _, id := range tree.Positions() {
		for _, role := range []Role{Maximizing, Minimizing} {
			want, err := Minimax(tree, id, role)
			require.NoError(t, err)

			got, err := s.Evaluate(id, role)
			require.NoError(t, err)
			require.Equal(t, want, got, "Cached and uncached scores should agree for %q as %s", id, role)

			// Issue the same call again from a warm cache
			again, err := s.Evaluate(id, role)
			require.NoError(t, err)
			require.Equal(t, got, again, "Repeated evaluation should be bit-identical")
		}
	}
}
