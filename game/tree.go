package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
)

// ErrNotFound reports a position that does not exist in the tree.
var ErrNotFound = errors.New("position not found in tree")

// Node is a single position in the game tree: either terminal with a fixed
// game value (+1 maximizer win, -1 minimizer win, 0 draw), or non-terminal
// with the positions reachable by one more move. Nodes are created during
// tree construction and never mutated afterwards.
type Node struct {
	Terminal bool
	Value    int
	Children []Position
}

// Tree is an immutable collection of positions keyed by identifier. It is
// built once, before any evaluation, and only read afterwards.
type Tree struct {
	nodes map[Position]*Node
}

func NewTree() *Tree {
	return &Tree{nodes: make(map[Position]*Node)}
}

// Add registers a node under the given position. Only tree builders and
// test fixtures call this; evaluation code never does.
func (t *Tree) Add(id Position, n *Node) {
	t.nodes[id] = n
}

// Node returns the node for the given position, or ErrNotFound.
func (t *Tree) Node(id Position) (*Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return n, nil
}

// Children returns the positions reachable from id by one move.
func (t *Tree) Children(id Position) ([]Position, error) {
	n, err := t.Node(id)
	if err != nil {
		return nil, err
	}
	return n.Children, nil
}

// Len returns the number of positions in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Positions returns every position in the tree, in no particular order.
func (t *Tree) Positions() []Position {
	return maps.Keys(t.nodes)
}
