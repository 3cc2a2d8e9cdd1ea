package process

import (
	"context"

	"github.com/susannasiebert/procera/internal/ctxlog"
	"github.com/susannasiebert/procera/internal/graph"
	"github.com/susannasiebert/procera/internal/port"
	"github.com/zclconf/go-cty/cty"
)

// DefaultGraphName is the name under which boundary-port queries build and
// cache their canonical resolution run.
const DefaultGraphName = ""

// Process owns an ordered, immutable set of operation nodes and resolves
// them into composed graphs. Results are memoized per requested graph name.
//
// Process is not safe for concurrent use; callers needing that must wrap it
// in their own mutual exclusion.
type Process struct {
	nodes   []Node
	byAlias map[string][]Node

	// involvedTypes holds every distinct port type across all nodes, in
	// first-appearance order. Invariant over the immutable node set.
	involvedTypes []cty.Type

	// usedProducers and satisfiedConsumers are the transient tracking sets
	// of the resolution run currently in flight. Both are replaced with
	// fresh maps at the start of every uncached run and handed off to the
	// run's cached resolution when it completes.
	usedProducers      map[port.Endpoint]struct{}
	satisfiedConsumers map[port.Endpoint]struct{}

	cache      map[string]*resolution
	newBuilder BuilderFactory
}

// resolution is one completed run: the built graph plus the terminal state
// of the tracking sets. Boundary-port queries read these terminal sets, so
// later runs under other names cannot disturb them.
type resolution struct {
	graph     *graph.Graph
	used      map[port.Endpoint]struct{}
	satisfied map[port.Endpoint]struct{}
}

// Option configures a Process.
type Option func(*Process)

// WithBuilderFactory overrides how graph builders are created, mainly for
// substituting recording builders in tests.
func WithBuilderFactory(f BuilderFactory) Option {
	return func(p *Process) {
		p.newBuilder = f
	}
}

// New creates a Process over the given nodes. The node set is final; nodes
// must not be added or mutated afterwards.
func New(nodes []Node, opts ...Option) *Process {
	p := &Process{
		nodes:   nodes,
		byAlias: make(map[string][]Node),
		cache:   make(map[string]*resolution),
		newBuilder: func(name string) GraphBuilder {
			return graph.NewBuilder(name)
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, n := range nodes {
		p.byAlias[n.Alias()] = append(p.byAlias[n.Alias()], n)
	}
	p.involvedTypes = collectInvolvedTypes(nodes)

	return p
}

// Build resolves the node set into a composed graph. Repeated calls with the
// same name return the previously built graph without re-running resolution
// or touching any tracking state.
func (p *Process) Build(ctx context.Context, name string) (*graph.Graph, error) {
	res, err := p.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	return res.graph, nil
}

// resolve returns the cached resolution for the name, running the full
// explicit-then-implicit pass on a cache miss.
func (p *Process) resolve(ctx context.Context, name string) (*resolution, error) {
	logger := ctxlog.FromContext(ctx).With("graph", name)

	if res, ok := p.cache[name]; ok {
		logger.Debug("Resolution cache hit.")
		return res, nil
	}

	// Fresh run: reset the tracking sets before anything else so no state
	// leaks across differently named builds.
	p.usedProducers = make(map[port.Endpoint]struct{})
	p.satisfiedConsumers = make(map[port.Endpoint]struct{})

	logger.Debug("Starting resolution run.", "node_count", len(p.nodes))
	builder := p.newBuilder(name)

	for _, n := range p.nodes {
		builder.AddOperation(n.Operation())
	}

	if err := p.resolveExplicit(ctx, builder); err != nil {
		return nil, err
	}
	if err := p.resolveImplicit(ctx, builder); err != nil {
		return nil, err
	}

	g, err := builder.Finish()
	if err != nil {
		return nil, err
	}

	res := &resolution{
		graph:     g,
		used:      p.usedProducers,
		satisfied: p.satisfiedConsumers,
	}
	p.cache[name] = res
	logger.Debug("Resolution run complete.",
		"links", len(p.satisfiedConsumers), "used_producers", len(p.usedProducers))
	return res, nil
}

// nodeByAlias resolves an alias to its single node. Zero or several matches
// yield a NodeNotFoundError.
func (p *Process) nodeByAlias(alias string) (Node, error) {
	matches := p.byAlias[alias]
	if len(matches) != 1 {
		return nil, &NodeNotFoundError{Alias: alias, Matches: len(matches)}
	}
	return matches[0], nil
}

// createLink is the single primitive through which both resolution passes
// create internal edges. It keeps the tracking sets and the builder
// consistent: the producer is recorded used, the consumer satisfied, and the
// edge is issued to the builder.
func (p *Process) createLink(ctx context.Context, b GraphBuilder, src Node, producer port.Endpoint, dest Node, consumer port.Endpoint) error {
	ctxlog.FromContext(ctx).Debug("Creating link.",
		"from", producer.String(), "to", consumer.String())

	if _, ok := p.usedProducers[producer]; !ok {
		p.usedProducers[producer] = struct{}{}
	}
	if _, ok := p.satisfiedConsumers[consumer]; !ok {
		p.satisfiedConsumers[consumer] = struct{}{}
	}

	return b.CreateLink(src.Operation(), producer.Property, dest.Operation(), consumer.Property)
}

// collectInvolvedTypes gathers every distinct type appearing on any port of
// any node, in first-appearance order. cty types are not comparable map
// keys, so dedup is by Equals over the accumulated slice.
func collectInvolvedTypes(nodes []Node) []cty.Type {
	var types []cty.Type
	add := func(t cty.Type) {
		for _, seen := range types {
			if seen.Equals(t) {
				return
			}
		}
		types = append(types, t)
	}

	for _, n := range nodes {
		for _, in := range n.Inputs() {
			add(in.Type)
		}
		for _, out := range n.Outputs() {
			add(out.Type)
		}
	}
	return types
}
