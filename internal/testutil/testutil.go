// Package testutil provides shared helpers for tests: a context carrying a
// quiet logger and a harness for loading inline HCL fixtures into the config
// model and node set.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/susannasiebert/procera/internal/config"
	"github.com/susannasiebert/procera/internal/ctxlog"
	"github.com/susannasiebert/procera/internal/hcl"
	"github.com/susannasiebert/procera/internal/node"
	"github.com/susannasiebert/procera/internal/process"
	"github.com/susannasiebert/procera/internal/registry"
)

// Context returns a context carrying a logger that discards everything, so
// resolver debug narration does not pollute test output.
func Context(t *testing.T) context.Context {
	t.Helper()
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// LoadModel writes the given files (path relative to a fresh temp dir →
// contents) and loads them through the HCL loader.
func LoadModel(t *testing.T, files map[string]string) *config.Model {
	t.Helper()

	root := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating fixture dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}

	model, err := hcl.NewLoader().Load(Context(t), root)
	if err != nil {
		t.Fatalf("loading HCL fixtures: %v", err)
	}
	return model
}

// BuildNodes assembles the node set of a loaded model, failing the test on
// any manifest or wiring problem.
func BuildNodes(t *testing.T, model *config.Model) []process.Node {
	t.Helper()

	reg := registry.New()
	if err := reg.PopulateFromModel(model); err != nil {
		t.Fatalf("populating registry: %v", err)
	}
	if err := reg.Validate(Context(t)); err != nil {
		t.Fatalf("validating registry: %v", err)
	}

	nodes, err := node.FromModel(model, reg.Lookup)
	if err != nil {
		t.Fatalf("building nodes: %v", err)
	}
	return nodes
}
