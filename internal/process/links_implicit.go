package process

import (
	"context"

	"github.com/susannasiebert/procera/internal/ctxlog"
	"github.com/susannasiebert/procera/internal/port"
	"github.com/zclconf/go-cty/cty"
)

// candidate pairs an endpoint with the node that owns it, so link creation
// can reach the node's operation handle.
type candidate struct {
	endpoint port.Endpoint
	node     Node
}

// resolveImplicit infers the remaining internal connections by exact type
// matching. Each involved type is handled independently; types never
// interact.
func (p *Process) resolveImplicit(ctx context.Context, b GraphBuilder) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting implicit link pass.", "involved_types", len(p.involvedTypes))

	for _, t := range p.involvedTypes {
		if err := p.resolveType(ctx, b, t); err != nil {
			return err
		}
	}

	logger.Debug("Implicit link pass complete.")
	return nil
}

// resolveType runs the unification rules for a single data type:
//
//   - exactly one unused producer links to every unsatisfied consumer, or
//     becomes a boundary output when no consumer remains;
//   - several unused producers are a fatal ambiguity, never a silent pick;
//   - consumers with no producer are exposed jointly as one boundary input;
//   - a type with neither contributes nothing.
func (p *Process) resolveType(ctx context.Context, b GraphBuilder, t cty.Type) error {
	logger := ctxlog.FromContext(ctx).With("type", t.FriendlyName())

	var consumers, producers []candidate
	for _, n := range p.nodes {
		for _, in := range n.InputsOf(t) {
			ep := port.Endpoint{Alias: n.Alias(), Property: in.Name}
			if _, done := p.satisfiedConsumers[ep]; !done {
				consumers = append(consumers, candidate{endpoint: ep, node: n})
			}
		}
		for _, out := range n.OutputsOf(t) {
			ep := port.Endpoint{Alias: n.Alias(), Property: out.Name}
			if _, done := p.usedProducers[ep]; !done {
				producers = append(producers, candidate{endpoint: ep, node: n})
			}
		}
	}

	switch {
	case len(producers) > 1:
		endpoints := make([]port.Endpoint, len(producers))
		for i, pr := range producers {
			endpoints[i] = pr.endpoint
		}
		return &AmbiguousProducerError{Type: t, Producers: endpoints}

	case len(producers) == 1:
		producer := producers[0]

		if len(consumers) == 0 {
			// Nothing consumes the value internally; it becomes a process
			// output. The producer stays out of usedProducers so boundary
			// derivation can find it.
			name, err := port.Name([]port.Endpoint{producer.endpoint})
			if err != nil {
				return err
			}
			logger.Debug("Exposing boundary output.", "output", name)
			b.ConnectOutput(name, producer.node.Operation(), producer.endpoint.Property)
			return nil
		}

		for _, c := range consumers {
			if err := p.createLink(ctx, b, producer.node, producer.endpoint, c.node, c.endpoint); err != nil {
				return err
			}
		}
		logger.Debug("Linked producer to consumers.",
			"producer", producer.endpoint.String(), "consumer_count", len(consumers))
		return nil

	case len(consumers) > 0:
		// No producer at all; all consumers of the type become one joint
		// boundary input, each bound to its own destination. They stay out
		// of satisfiedConsumers so boundary derivation can find them.
		endpoints := make([]port.Endpoint, len(consumers))
		for i, c := range consumers {
			endpoints[i] = c.endpoint
		}
		name, err := port.Name(endpoints)
		if err != nil {
			return err
		}
		logger.Debug("Exposing boundary input.", "input", name, "destinations", len(consumers))
		for _, c := range consumers {
			b.ConnectInput(name, c.node.Operation(), c.endpoint.Property)
		}
		return nil

	default:
		// Neither producers nor consumers left for this type.
		return nil
	}
}
