package app

import (
	"fmt"

	"github.com/susannasiebert/procera/internal/graph"
	"github.com/susannasiebert/procera/internal/process"
)

// report prints a human-readable summary of the composed graph: its
// operations, internal links, and derived boundary ports.
func (a *App) report(name string, g *graph.Graph, inputs, outputs []process.BoundaryPort) error {
	if name == "" {
		name = "(default)"
	}
	fmt.Fprintf(a.outW, "graph %s\n", name)

	fmt.Fprintf(a.outW, "\noperations (%d):\n", len(g.Operations()))
	for _, op := range g.Operations() {
		fmt.Fprintf(a.outW, "  %s  kind=%s\n", op.Alias, op.Kind)
	}

	fmt.Fprintf(a.outW, "\nlinks (%d):\n", len(g.Links()))
	for _, l := range g.Links() {
		fmt.Fprintf(a.outW, "  %s.%s -> %s.%s\n",
			l.Source.Alias, l.SourceProperty, l.Target.Alias, l.TargetProperty)
	}

	fmt.Fprintf(a.outW, "\ninputs (%d):\n", len(inputs))
	for _, in := range inputs {
		fmt.Fprintf(a.outW, "  %s  type=%s\n", in.Name, in.Type.FriendlyName())
	}

	fmt.Fprintf(a.outW, "\noutputs (%d):\n", len(outputs))
	for _, out := range outputs {
		fmt.Fprintf(a.outW, "  %s  type=%s\n", out.Name, out.Type.FriendlyName())
	}

	return nil
}
