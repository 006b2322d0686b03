package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cliquego/core"
)

func TestGraph(t *testing.T) {
	t.Run("AddVertexAssignsDenseIDs", func(t *testing.T) {
		g := New()
		for i := range 5 {
			assert.Equal(t, core.LocalID(i), g.AddVertex())
		}
		assert.Equal(t, 5, g.Order())
		assert.Equal(t, 0, g.EdgeCount())
	})

	t.Run("AddEdgeIsUndirected", func(t *testing.T) {
		g := New()
		a := g.AddVertex()
		b := g.AddVertex()

		g.AddEdge(a, b)

		assert.True(t, g.HasEdge(a, b))
		assert.True(t, g.HasEdge(b, a))
		assert.Equal(t, 1, g.EdgeCount())
		assert.Equal(t, 1, g.Degree(a))
		assert.Equal(t, 1, g.Degree(b))
	})

	t.Run("DuplicateEdgeIsNoop", func(t *testing.T) {
		g := New()
		a := g.AddVertex()
		b := g.AddVertex()

		g.AddEdge(a, b)
		g.AddEdge(b, a)

		assert.Equal(t, 1, g.EdgeCount())
		assert.Equal(t, 1, g.Degree(a))
	})

	t.Run("RejectsSelfLoop", func(t *testing.T) {
		g := New()
		a := g.AddVertex()

		g.AddEdge(a, a)

		assert.False(t, g.HasEdge(a, a))
		assert.Equal(t, 0, g.EdgeCount())
		assert.Equal(t, 0, g.Degree(a))
	})

	t.Run("Neighbors", func(t *testing.T) {
		g := New()
		a := g.AddVertex()
		b := g.AddVertex()
		c := g.AddVertex()
		g.AddEdge(a, b)
		g.AddEdge(a, c)

		got := g.Neighbors(a).ToArray()
		assert.ElementsMatch(t, []uint32{uint32(b), uint32(c)}, got)
		require.Equal(t, 2, g.Degree(a))
	})

	t.Run("VerticesIteratesInOrder", func(t *testing.T) {
		g := NewWithCapacity(3)
		for range 3 {
			g.AddVertex()
		}

		var got []core.LocalID
		for v := range g.Vertices() {
			got = append(got, v)
		}
		assert.Equal(t, []core.LocalID{0, 1, 2}, got)
	})
}
