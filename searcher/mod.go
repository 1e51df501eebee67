package searcher

import "errors"

// Role is whose turn is being evaluated: the maximizer wants the highest
// game value, the minimizer the lowest. The role flips at every ply.
type Role int8

const (
	Maximizing Role = iota
	Minimizing
)

func (r Role) Flip() Role {
	if r == Maximizing {
		return Minimizing
	}
	return Maximizing
}

func (r Role) String() string {
	if r == Maximizing {
		return "maximizing"
	}
	return "minimizing"
}

var (
	// ErrInvalidTree reports a structural contract violation of the game
	// tree: a non-terminal position with no children. A well-formed tree
	// never produces it, so callers should treat it as fatal.
	ErrInvalidTree = errors.New("non-terminal position has no children")

	// ErrNoLegalMoves reports a move request for a position that has no
	// children. Expected during exhaustive enumeration, an error anywhere
	// else.
	ErrNoLegalMoves = errors.New("position has no legal moves")
)
