package graph

// Operation is the opaque handle for one operation registered with the
// builder. The resolver treats it as pass-through; the builder keys edges by
// its alias.
type Operation struct {
	// Alias is the operation's unique instance alias within one graph.
	Alias string
	// Kind is the operation-kind name the instance was declared with.
	Kind string
}

// Link is one internal edge of the composed graph: data flows from the
// source operation's output property to the target operation's input
// property.
type Link struct {
	Source         *Operation
	SourceProperty string
	Target         *Operation
	TargetProperty string
}

// Binding attaches one boundary port name to a concrete operation property.
// Several bindings may share the same Name when one boundary input feeds
// multiple destinations.
type Binding struct {
	Name     string
	Op       *Operation
	Property string
}

// Graph is the finished, immutable composed-graph artifact.
type Graph struct {
	name       string
	operations []*Operation
	links      []Link
	inputs     []Binding
	outputs    []Binding
}

// Name returns the name the graph was built under.
func (g *Graph) Name() string { return g.name }

// Operations returns the registered operations in registration order.
func (g *Graph) Operations() []*Operation { return g.operations }

// Links returns the internal edges in creation order.
func (g *Graph) Links() []Link { return g.links }

// Inputs returns the boundary input bindings in creation order.
func (g *Graph) Inputs() []Binding { return g.inputs }

// Outputs returns the boundary output bindings in creation order.
func (g *Graph) Outputs() []Binding { return g.outputs }
