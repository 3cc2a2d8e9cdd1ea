package process

import (
	"context"
	"fmt"

	"github.com/susannasiebert/procera/internal/ctxlog"
	"github.com/susannasiebert/procera/internal/port"
)

// resolveExplicit applies all declared wiring before any inference runs, so
// explicit claims always pre-empt implicit matching. Nodes are processed in
// declaration order: first every explicit internal link, then every
// explicit boundary-input binding.
func (p *Process) resolveExplicit(ctx context.Context, b GraphBuilder) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting explicit link pass.")

	for _, n := range p.nodes {
		for _, link := range n.ExplicitLinks() {
			if err := p.applyExplicitLink(ctx, b, n, link); err != nil {
				return err
			}
		}
	}

	for _, n := range p.nodes {
		for _, property := range n.ExplicitInputs() {
			consumer := port.Endpoint{Alias: n.Alias(), Property: property}

			name, err := port.Name([]port.Endpoint{consumer})
			if err != nil {
				return err
			}

			logger.Debug("Binding explicit boundary input.", "input", name)
			b.ConnectInput(name, n.Operation(), property)

			// The consumer is satisfied by the boundary binding even though
			// no internal producer exists; implicit resolution must not
			// revisit it.
			p.satisfiedConsumers[consumer] = struct{}{}
		}
	}

	logger.Debug("Explicit link pass complete.")
	return nil
}

// applyExplicitLink resolves one declared link: locate the source node by
// alias, select its unique output of the consumer property's type, and
// create the edge.
func (p *Process) applyExplicitLink(ctx context.Context, b GraphBuilder, n Node, link ExplicitLink) error {
	src, err := p.nodeByAlias(link.SourceAlias)
	if err != nil {
		return err
	}

	want, err := n.TypeOf(link.Property)
	if err != nil {
		return fmt.Errorf("explicit link on node %q: %w", n.Alias(), err)
	}

	out, err := src.UniqueOutputOf(want)
	if err != nil {
		return err
	}

	producer := port.Endpoint{Alias: src.Alias(), Property: out.Name}
	consumer := port.Endpoint{Alias: n.Alias(), Property: link.Property}

	return p.createLink(ctx, b, src, producer, n, consumer)
}
