package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeLookup(t *testing.T) {
	t.Run("returning a registered node", func(t *testing.T) {
		tree := NewTree()
		node := &Node{Children: []Position{"a", "b"}}
		tree.Add(Root, node)

		got, err := tree.Node(Root)

		require.NoError(t, err)
		require.Equal(t, node, got, "Tree should return the registered node")
		require.Equal(t, 1, tree.Len())
	})

	t.Run("failing on a missing position", func(t *testing.T) {
		tree := NewTree()

		_, err := tree.Node("zz")

		require.ErrorIs(t, err, ErrNotFound, "Lookup of an absent position should fail with ErrNotFound")
	})

	t.Run("returning children of a position", func(t *testing.T) {
		tree := NewTree()
		tree.Add("a", &Node{Children: []Position{"ab", "ac"}})

		got, err := tree.Children("a")

		require.NoError(t, err)
		require.Equal(t, []Position{"ab", "ac"}, got)
	})

	t.Run("failing children lookup on a missing position", func(t *testing.T) {
		tree := NewTree()

		_, err := tree.Children("a")

		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("listing every position", func(t *testing.T) {
		tree := NewTree()
		tree.Add(Root, &Node{})
		tree.Add("a", &Node{})

		got := tree.Positions()

		require.ElementsMatch(t, []Position{Root, "a"}, got)
	})
}

func TestPosition(t *testing.T) {
	t.Run("extending keeps the original unchanged", func(t *testing.T) {
		p := Position("ab")

		got := p.Extend('c')

		require.Equal(t, Position("abc"), got)
		require.Equal(t, Position("ab"), p, "Positions should be immutable")
	})

	t.Run("last returns the most recent move", func(t *testing.T) {
		require.Equal(t, Symbol('c'), Position("abc").Last())
	})

	t.Run("contains reports played symbols", func(t *testing.T) {
		p := Position("ae")

		require.True(t, p.Contains('a'))
		require.True(t, p.Contains('e'))
		require.False(t, p.Contains('b'))
	})
}
