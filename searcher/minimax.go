package searcher

import (
	"fmt"

	"tictactoe/game"
)

// Minimax computes the game-theoretic value of a position for the given
// role, without any caching. It is a pure function of its inputs: a fixed
// tree, position, and role always yield the same score.
//
// A terminal position returns its stored value before any child is
// enumerated. A non-terminal position returns the maximum (Maximizing) or
// minimum (Minimizing) of its children evaluated with the flipped role.
func Minimax(tree *game.Tree, id game.Position, role Role) (int, error) {
	node, err := tree.Node(id)
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
		score, err := Minimax(tree, child, role.Flip())
		if err != nil {
			return 0, err
		}
		if i == 0 || better(role, score, best) {
			best = score
		}
	}
	return best, nil
}

func better(role Role, score, best int) bool {
	if role == Maximizing {
		return score > best
	}
	return score < best
}
