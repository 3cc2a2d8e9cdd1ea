package process

import (
	"context"

	"github.com/susannasiebert/procera/internal/port"
	"github.com/zclconf/go-cty/cty"
)

// BoundaryPort describes one derived process-level input or output: its data
// type and its automatic name.
type BoundaryPort struct {
	Type cty.Type
	Name string
}

// Inputs derives the process's external inputs: for each involved type, the
// consumers left unsatisfied at the end of the canonical default-name run,
// named jointly. The terminal tracking state of that one cached run is read
// directly; recomputing with reset state would double-count every implicit
// match.
func (p *Process) Inputs(ctx context.Context) ([]BoundaryPort, error) {
	res, err := p.resolve(ctx, DefaultGraphName)
	if err != nil {
		return nil, err
	}

	var inputs []BoundaryPort
	for _, t := range p.involvedTypes {
		var leftovers []port.Endpoint
		for _, n := range p.nodes {
			for _, in := range n.InputsOf(t) {
				ep := port.Endpoint{Alias: n.Alias(), Property: in.Name}
				if _, done := res.satisfied[ep]; !done {
					leftovers = append(leftovers, ep)
				}
			}
		}
		if len(leftovers) == 0 {
			continue
		}

		name, err := port.Name(leftovers)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, BoundaryPort{Type: t, Name: name})
	}
	return inputs, nil
}

// Outputs derives the process's external outputs symmetrically, from the
// producers left unused at the end of the canonical run.
func (p *Process) Outputs(ctx context.Context) ([]BoundaryPort, error) {
	res, err := p.resolve(ctx, DefaultGraphName)
	if err != nil {
		return nil, err
	}

	var outputs []BoundaryPort
	for _, t := range p.involvedTypes {
		var leftovers []port.Endpoint
		for _, n := range p.nodes {
			for _, out := range n.OutputsOf(t) {
				ep := port.Endpoint{Alias: n.Alias(), Property: out.Name}
				if _, done := res.used[ep]; !done {
					leftovers = append(leftovers, ep)
				}
			}
		}
		if len(leftovers) == 0 {
			continue
		}

		name, err := port.Name(leftovers)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, BoundaryPort{Type: t, Name: name})
	}
	return outputs, nil
}
