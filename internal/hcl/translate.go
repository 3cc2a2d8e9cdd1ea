package hcl

import (
	"context"
	"fmt"

	"github.com/susannasiebert/procera/internal/config"
	"github.com/susannasiebert/procera/internal/schema"
)

// translateKind converts a decoded kind manifest into its model form,
// resolving every port's type expression.
func (l *Loader) translateKind(ctx context.Context, def *schema.KindDefinition) (*config.KindSpec, error) {
	spec := &config.KindSpec{
		Name:        def.Name,
		Description: def.Description,
	}

	for _, in := range def.Inputs {
		typ, err := typeExprToCtyType(ctx, in.Type)
		if err != nil {
			return nil, fmt.Errorf("kind %q input %q: %w", def.Name, in.Name, err)
		}
		spec.Inputs = append(spec.Inputs, config.PortSpec{
			Name:        in.Name,
			Type:        typ,
			Description: in.Description,
		})
	}
	for _, out := range def.Outputs {
		typ, err := typeExprToCtyType(ctx, out.Type)
		if err != nil {
			return nil, fmt.Errorf("kind %q output %q: %w", def.Name, out.Name, err)
		}
		spec.Outputs = append(spec.Outputs, config.PortSpec{
			Name:        out.Name,
			Type:        typ,
			Description: out.Description,
		})
	}

	return spec, nil
}

// translateOperation converts a decoded operation block into its model form.
func translateOperation(op *schema.Operation) *config.OperationSpec {
	spec := &config.OperationSpec{
		Kind:  op.Kind,
		Alias: op.Alias,
	}
	for _, l := range op.Links {
		spec.Links = append(spec.Links, config.LinkSpec{
			Property: l.Property,
			Source:   l.Source,
		})
	}
	for _, bi := range op.BoundaryInputs {
		spec.BoundaryInputs = append(spec.BoundaryInputs, bi.Property)
	}
	return spec
}
