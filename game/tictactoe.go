package game

// Tic-tac-toe rules and tree construction. The first mover (even plies) is
// the maximizer, the second mover (odd plies) is the minimizer.

// MaximizerWin and MinimizerWin are the terminal values of decided games; a
// full board without a winner is a Draw.
const (
	MaximizerWin = 1
	Draw         = 0
	MinimizerWin = -1
)

// BuildTree expands every position reachable from the empty board by
// alternating play and returns the complete tree. Expansion stops at
// terminal positions, so a move sequence that continues past a win is not
// in the tree.
func BuildTree(b Board) *Tree {
	t := NewTree()
	queue := []Position{Root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if value, over := b.outcome(id); over {
			t.Add(id, &Node{Terminal: true, Value: value})
			continue
		}

		children := make([]Position, 0, b.Cells()-len(id))
		for _, s := range b.Symbols {
			if !id.Contains(s) {
				children = append(children, id.Extend(s))
			}
		}
		t.Add(id, &Node{Children: children})
		queue = append(queue, children...)
	}
	return t
}

// outcome reports whether the position ends the game and with what value.
func (b Board) outcome(id Position) (int, bool) {
	if b.lineOwnedBy(id, 0) {
		return MaximizerWin, true
	}
	if b.lineOwnedBy(id, 1) {
		return MinimizerWin, true
	}
	if len(id) == b.Cells() {
		return Draw, true
	}
	return 0, false
}

// lineOwnedBy reports whether the player moving at the given parity (0 for
// the maximizer, 1 for the minimizer) completed a line.
func (b Board) lineOwnedBy(id Position, parity int) bool {
	owned := make(map[Symbol]bool, (len(id)+1)/2)
	for i, s := range id.Moves() {
		if i%2 == parity {
			owned[s] = true
		}
	}
	for _, line := range b.Lines {
		complete := true
		for _, s := range line {
			if !owned[s] {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}
