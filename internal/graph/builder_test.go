package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Accumulation(t *testing.T) {
	b := NewBuilder("pipeline")

	a := &Operation{Alias: "a", Kind: "source"}
	c := &Operation{Alias: "c", Kind: "sink"}
	b.AddOperation(a)
	b.AddOperation(c)
	b.AddOperation(a) // Duplicate registration is a no-op.

	require.NoError(t, b.CreateLink(a, "out", c, "in"))
	b.ConnectInput("c.extra", c, "extra")
	b.ConnectOutput("a.spare", a, "spare")

	g, err := b.Finish()
	require.NoError(t, err)

	assert.Equal(t, "pipeline", g.Name())
	assert.Equal(t, []*Operation{a, c}, g.Operations())

	require.Len(t, g.Links(), 1)
	assert.Equal(t, Link{Source: a, SourceProperty: "out", Target: c, TargetProperty: "in"}, g.Links()[0])

	require.Len(t, g.Inputs(), 1)
	assert.Equal(t, Binding{Name: "c.extra", Op: c, Property: "extra"}, g.Inputs()[0])

	require.Len(t, g.Outputs(), 1)
	assert.Equal(t, Binding{Name: "a.spare", Op: a, Property: "spare"}, g.Outputs()[0])
}

func TestBuilder_CreateLinkErrors(t *testing.T) {
	b := NewBuilder("")
	a := &Operation{Alias: "a"}
	c := &Operation{Alias: "c"}
	b.AddOperation(a)

	err := b.CreateLink(a, "out", c, "in")
	assert.ErrorContains(t, err, "destination operation \"c\" is not registered")

	err = b.CreateLink(c, "out", a, "in")
	assert.ErrorContains(t, err, "source operation \"c\" is not registered")

	err = b.CreateLink(a, "out", a, "in")
	assert.ErrorContains(t, err, "self-referential")
}

func TestBuilder_FinishDetectsCycles(t *testing.T) {
	b := NewBuilder("")
	a := &Operation{Alias: "a"}
	c := &Operation{Alias: "c"}
	b.AddOperation(a)
	b.AddOperation(c)

	require.NoError(t, b.CreateLink(a, "out", c, "in"))
	require.NoError(t, b.CreateLink(c, "back", a, "loop"))

	_, err := b.Finish()
	require.Error(t, err)
	assert.ErrorContains(t, err, "cycle detected")
}

func TestBuilder_FinishOnlyOnce(t *testing.T) {
	b := NewBuilder("")
	_, err := b.Finish()
	require.NoError(t, err)

	_, err = b.Finish()
	assert.ErrorContains(t, err, "already finished")
}
