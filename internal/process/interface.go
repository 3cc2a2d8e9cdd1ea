package process

import (
	"github.com/susannasiebert/procera/internal/graph"
	"github.com/susannasiebert/procera/internal/port"
	"github.com/zclconf/go-cty/cty"
)

// ExplicitLink is one declared internal link on a node: the node's input
// property is to be fed by an output of the operation with SourceAlias. The
// concrete source port is selected by the input property's type.
type ExplicitLink struct {
	SourceAlias string
	Property    string
}

// Node is the capability set the resolver requires from one operation node.
// The node package provides the manifest-backed implementation; tests may
// substitute their own.
type Node interface {
	// Alias returns the node's instance alias, unique within one Process.
	Alias() string

	// Inputs and Outputs return the node's ports in declaration order.
	Inputs() []port.Port
	Outputs() []port.Port

	// InputsOf and OutputsOf return the ports carrying exactly the given
	// type, preserving declaration order.
	InputsOf(t cty.Type) []port.Port
	OutputsOf(t cty.Type) []port.Port

	// ExplicitLinks returns the node's declared internal links.
	ExplicitLinks() []ExplicitLink

	// ExplicitInputs returns the input property names that must bind to a
	// process boundary input rather than be wired internally.
	ExplicitInputs() []string

	// UniqueOutputOf returns the node's single output port of the given
	// type, or an OutputLookupError when there are zero or several.
	UniqueOutputOf(t cty.Type) (port.Port, error)

	// TypeOf returns the type of the named port, input or output.
	TypeOf(property string) (cty.Type, error)

	// Operation returns the opaque handle handed to the graph builder.
	Operation() *graph.Operation
}

// GraphBuilder is the capability set the resolver requires from the
// underlying graph assembler. graph.Builder is the production
// implementation.
type GraphBuilder interface {
	AddOperation(op *graph.Operation)
	ConnectInput(name string, dest *graph.Operation, property string)
	ConnectOutput(name string, src *graph.Operation, property string)
	CreateLink(src *graph.Operation, srcProperty string, dest *graph.Operation, destProperty string) error
	Finish() (*graph.Graph, error)
}

// BuilderFactory produces a fresh GraphBuilder for a named resolution run.
type BuilderFactory func(name string) GraphBuilder
