package graph

import (
	"fmt"

	"github.com/susannasiebert/procera/internal/dag"
)

// Builder accumulates operations, internal links, and boundary bindings into
// a Graph.
//
// Builder is NOT safe for concurrent use; one resolution run drives one
// builder from a single goroutine. The Graph returned by Finish is immutable
// and safe to share.
type Builder struct {
	graph *Graph
	topo  *dag.Graph
	seen  map[string]*Operation
	done  bool
}

// NewBuilder creates a builder for a graph with the given name. The empty
// name is valid and denotes the default graph.
func NewBuilder(name string) *Builder {
	return &Builder{
		graph: &Graph{name: name},
		topo:  dag.New(),
		seen:  make(map[string]*Operation),
	}
}

// AddOperation registers an operation with the graph. Registering the same
// alias twice does nothing.
func (b *Builder) AddOperation(op *Operation) {
	if _, ok := b.seen[op.Alias]; ok {
		return
	}
	b.seen[op.Alias] = op
	b.graph.operations = append(b.graph.operations, op)
	b.topo.AddVertex(op.Alias)
}

// ConnectInput binds a process boundary input of the given name to the
// destination operation's input property.
func (b *Builder) ConnectInput(name string, dest *Operation, property string) {
	b.graph.inputs = append(b.graph.inputs, Binding{Name: name, Op: dest, Property: property})
}

// ConnectOutput binds a process boundary output of the given name to the
// source operation's output property.
func (b *Builder) ConnectOutput(name string, src *Operation, property string) {
	b.graph.outputs = append(b.graph.outputs, Binding{Name: name, Op: src, Property: property})
}

// CreateLink adds an internal edge from the source operation's output
// property to the target operation's input property. Both operations must
// have been registered first.
func (b *Builder) CreateLink(src *Operation, srcProperty string, dest *Operation, destProperty string) error {
	if _, ok := b.seen[src.Alias]; !ok {
		return fmt.Errorf("link source operation %q is not registered", src.Alias)
	}
	if _, ok := b.seen[dest.Alias]; !ok {
		return fmt.Errorf("link destination operation %q is not registered", dest.Alias)
	}

	if err := b.topo.AddEdge(src.Alias, dest.Alias); err != nil {
		return fmt.Errorf("cannot link %s.%s to %s.%s: %w",
			src.Alias, srcProperty, dest.Alias, destProperty, err)
	}

	b.graph.links = append(b.graph.links, Link{
		Source:         src,
		SourceProperty: srcProperty,
		Target:         dest,
		TargetProperty: destProperty,
	})
	return nil
}

// Finish validates the accumulated topology and seals the Graph. A builder
// can be finished once.
func (b *Builder) Finish() (*Graph, error) {
	if b.done {
		return nil, fmt.Errorf("builder for graph %q is already finished", b.graph.name)
	}
	b.done = true

	if err := b.topo.DetectCycles(); err != nil {
		return nil, fmt.Errorf("error validating composed graph: %w", err)
	}

	return b.graph, nil
}
