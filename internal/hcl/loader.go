package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/susannasiebert/procera/internal/config"
	"github.com/susannasiebert/procera/internal/ctxlog"
	"github.com/susannasiebert/procera/internal/fsutil"
	"github.com/susannasiebert/procera/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL configuration loading process. It is
// agnostic to the origin of the paths and accepts any valid block from any
// file, so kind manifests and process declarations may live together.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()

	hclFiles, err := fsutil.CollectFiles(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.FileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		// Translate and merge all discovered blocks into the model.
		for _, kind := range root.Kinds {
			spec, err := l.translateKind(ctx, kind)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			if _, exists := model.Kinds[spec.Name]; exists {
				return nil, fmt.Errorf("duplicate kind definition %q in file %s", spec.Name, file)
			}
			model.Kinds[spec.Name] = spec
		}

		for _, op := range root.Operations {
			model.Operations = append(model.Operations, translateOperation(op))
		}
	}

	logger.Debug("HCL loading complete.",
		"kinds", len(model.Kinds), "operations", len(model.Operations))
	return model, nil
}
