package engine

import (
	"math/rand"
	"testing"

	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/stretchr/testify/require"
)

func TestLocalRun(t *testing.T) {
	board := game.StandardBoard()
	tree := game.BuildTree(board)

	t.Run("optimal play always draws", func(t *testing.T) {
		s := searcher.New(tree, searcher.WithRand(rand.New(rand.NewSource(3))))
		for i := 0; i < 5; i++ {
			e := Local(tree, s, s)

			value, line, err := e.Run()

			require.NoError(t, err)
			require.Equal(t, game.Draw, value, "Two optimal players should never beat each other")
			require.Equal(t, 9, len(line), "An optimal game should fill the board")
		}
	})

	t.Run("independent searchers reach the same outcome", func(t *testing.T) {
		first := searcher.New(tree, searcher.WithRand(rand.New(rand.NewSource(1))))
		second := searcher.New(tree, searcher.WithRand(rand.New(rand.NewSource(2))))
		e := Local(tree, first, second)

		value, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Draw, value)
	})
}
