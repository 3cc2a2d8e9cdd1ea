package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/susannasiebert/procera/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Validate performs a strict well-formedness check over every registered
// kind manifest: port names must be non-empty and unique within the kind,
// and every port must carry a concrete type.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for name, spec := range r.kinds {
		seen := make(map[string]struct{})

		for _, p := range spec.Inputs {
			if p.Name == "" {
				errs = append(errs, fmt.Sprintf("kind '%s': input port with empty name", name))
				continue
			}
			if _, dup := seen[p.Name]; dup {
				errs = append(errs, fmt.Sprintf("kind '%s': duplicate port name '%s'", name, p.Name))
			}
			seen[p.Name] = struct{}{}
			if p.Type == cty.NilType {
				errs = append(errs, fmt.Sprintf("kind '%s': input port '%s' has no type", name, p.Name))
			}
		}
		for _, p := range spec.Outputs {
			if p.Name == "" {
				errs = append(errs, fmt.Sprintf("kind '%s': output port with empty name", name))
				continue
			}
			if _, dup := seen[p.Name]; dup {
				errs = append(errs, fmt.Sprintf("kind '%s': duplicate port name '%s'", name, p.Name))
			}
			seen[p.Name] = struct{}{}
			if p.Type == cty.NilType {
				errs = append(errs, fmt.Sprintf("kind '%s': output port '%s' has no type", name, p.Name))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "kind_count", len(r.kinds))
	return nil
}
