package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.NotNil(t, g.vertices)
	assert.Empty(t, g.vertices)
}

func TestAddVertex(t *testing.T) {
	g := New()

	g.AddVertex("a")
	assert.Len(t, g.vertices, 1)
	va, ok := g.vertices["a"]
	require.True(t, ok)
	assert.Equal(t, "a", va.id)
	assert.NotNil(t, va.deps)
	assert.NotNil(t, va.dependents)

	g.AddVertex("a") // Test idempotency
	assert.Len(t, g.vertices, 1)

	g.AddVertex("b")
	assert.Len(t, g.vertices, 2)
	_, ok = g.vertices["b"]
	assert.True(t, ok)
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddVertex("a")
		g.AddVertex("b")

		err := g.AddEdge("a", "b") // b consumes from a
		require.NoError(t, err)

		va := g.vertices["a"]
		vb := g.vertices["b"]

		assert.Contains(t, va.dependents, "b")
		assert.Equal(t, vb, va.dependents["b"])
		assert.Contains(t, vb.deps, "a")
		assert.Equal(t, va, vb.deps["a"])
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddVertex("a")
		g.AddVertex("b")

		err := g.AddEdge("dne", "a")
		assert.ErrorContains(t, err, "source vertex not found")

		err = g.AddEdge("a", "dne")
		assert.ErrorContains(t, err, "destination vertex not found")

		err = g.AddEdge("a", "a")
		assert.ErrorContains(t, err, "self-referential edge")
	})
}

func TestDetectCycles(t *testing.T) {
	t.Run("empty graph has no cycles", func(t *testing.T) {
		g := New()
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("graph with vertices but no edges has no cycles", func(t *testing.T) {
		g := New()
		g.AddVertex("a")
		g.AddVertex("b")
		g.AddVertex("c")
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("valid dag has no cycles", func(t *testing.T) {
		g := New()
		g.AddVertex("a")
		g.AddVertex("b")
		g.AddVertex("c")
		g.AddVertex("d")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("a", "c")) // Transitive edge
		require.NoError(t, g.AddEdge("c", "d"))
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("simple direct cycle is detected", func(t *testing.T) {
		g := New()
		g.AddVertex("a")
		g.AddVertex("b")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "a")) // Cycle
		err := g.DetectCycles()
		assert.Error(t, err)
		assert.ErrorContains(t, err, "cycle detected")
	})

	t.Run("longer cycle is detected", func(t *testing.T) {
		g := New()
		g.AddVertex("a")
		g.AddVertex("b")
		g.AddVertex("c")
		g.AddVertex("d")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("c", "d"))
		require.NoError(t, g.AddEdge("d", "a")) // Cycle back to the start
		err := g.DetectCycles()
		assert.Error(t, err)
		assert.ErrorContains(t, err, "cycle detected")
	})

	t.Run("cycle in a disjoint component is detected", func(t *testing.T) {
		g := New()
		// Component 1 (valid)
		g.AddVertex("a")
		g.AddVertex("b")
		require.NoError(t, g.AddEdge("a", "b"))

		// Component 2 (has a cycle)
		g.AddVertex("x")
		g.AddVertex("y")
		g.AddVertex("z")
		require.NoError(t, g.AddEdge("x", "y"))
		require.NoError(t, g.AddEdge("y", "z"))
		require.NoError(t, g.AddEdge("z", "y")) // Cycle

		err := g.DetectCycles()
		assert.Error(t, err)
		assert.ErrorContains(t, err, "cycle detected")
	})
}
