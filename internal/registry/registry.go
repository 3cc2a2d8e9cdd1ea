package registry

import (
	"fmt"

	"github.com/susannasiebert/procera/internal/config"
)

// Registry holds all the registered operation-kind manifests for a single
// application instance.
type Registry struct {
	kinds map[string]*config.KindSpec
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		kinds: make(map[string]*config.KindSpec),
	}
}

// Register adds a kind manifest to the registry. Registering the same kind
// name twice is an error.
func (r *Registry) Register(spec *config.KindSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("kind manifest has no name")
	}
	if _, exists := r.kinds[spec.Name]; exists {
		return fmt.Errorf("kind %q is already registered", spec.Name)
	}
	r.kinds[spec.Name] = spec
	return nil
}

// Lookup returns the manifest for the given kind name.
func (r *Registry) Lookup(kind string) (*config.KindSpec, bool) {
	spec, ok := r.kinds[kind]
	return spec, ok
}

// PopulateFromModel copies every kind manifest from the loaded config model
// into the registry.
func (r *Registry) PopulateFromModel(model *config.Model) error {
	for _, spec := range model.Kinds {
		if err := r.Register(spec); err != nil {
			return err
		}
	}
	return nil
}
