package engine

import (
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

// Engine plays out one game on a tree, asking a searcher for the best
// move at every turn. The first mover plays the maximizing role, the
// second the minimizing role.
type Engine struct {
	Tree    *game.Tree
	Players [2]*searcher.Searcher
}

// Local wires two searchers (which may be the same instance) to a tree.
func Local(tree *game.Tree, first, second *searcher.Searcher) *Engine {
	return &Engine{
		Tree:    tree,
		Players: [2]*searcher.Searcher{first, second},
	}
}

// Run plays from the empty board until a terminal position and returns the
// terminal value together with the move line that reached it.
func (e *Engine) Run() (int, game.Position, error) {
	roles := [2]searcher.Role{searcher.Maximizing, searcher.Minimizing}

	id := game.Root
	for turn := 0; ; turn++ {
		node, err := e.Tree.Node(id)
		if err != nil {
			return 0, id, err
		}
		if node.Terminal {
			log.Info().Msgf("game over after %d moves: line %q value %d", len(id), id, node.Value)
			return node.Value, id, nil
		}

		mover := turn % 2
		symbol, err := e.Players[mover].DetermineMove(id, roles[mover])
		if err != nil {
			return 0, id, err
		}
		id = id.Extend(symbol)
		log.Debug().Msgf("%s played %c: position %q", roles[mover], symbol, id)
	}
}
