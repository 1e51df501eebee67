package game

import "strings"

// Symbol names a single board cell.
type Symbol byte

// Position identifies a game state by the ordered sequence of cell symbols
// played from the empty board. The empty string is the root. A valid
// position never repeats a symbol and is never longer than the board has
// cells. Positions are immutable; Extend returns a new one.
type Position string

// Root is the empty board.
const Root Position = ""

// Last returns the most recent move of the position.
func (p Position) Last() Symbol {
	return Symbol(p[len(p)-1])
}

// Extend returns the position reached by playing one more symbol.
func (p Position) Extend(s Symbol) Position {
	return p + Position([]Symbol{s})
}

// Contains reports whether the symbol was already played.
func (p Position) Contains(s Symbol) bool {
	return strings.IndexByte(string(p), byte(s)) >= 0
}

// Moves returns the move sequence of the position.
func (p Position) Moves() []Symbol {
	return []Symbol(p)
}

// Board is the static description of a playing surface: the cell symbols in
// a fixed order, and the symbol triples that win the game. It never changes
// during play.
type Board struct {
	Symbols []Symbol
	Lines   [][]Symbol
}

// Cells returns the number of cells, which is also the maximum position
// length.
func (b Board) Cells() int {
	return len(b.Symbols)
}

// StandardBoard returns the 3x3 board. Cells are labeled a..i row by row:
//
//	a b c
//	d e f
//	g h i
func StandardBoard() Board {
	return Board{
		Symbols: []Symbol("abcdefghi"),
		Lines: [][]Symbol{
			[]Symbol("abc"), []Symbol("def"), []Symbol("ghi"), // rows
			[]Symbol("adg"), []Symbol("beh"), []Symbol("cfi"), // columns
			[]Symbol("aei"), []Symbol("ceg"), // diagonals
		},
	}
}
