package hcl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/susannasiebert/procera/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

func quietCtx() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeFixtures(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
	return root
}

func TestLoad_KindsAndOperations(t *testing.T) {
	root := writeFixtures(t, map[string]string{
		"kinds/fetch.hcl": `
kind "fetch" {
  description = "retrieves a document"

  input "url" {
    type = string
  }

  output "body" {
    type = string
  }

  output "tags" {
    type = list(string)
  }
}
`,
		"process/main.hcl": `
operation "fetch" "page" {
  link "url" {
    source = "seeder"
  }

  boundary_input "url" {}
}

operation "fetch" "mirror" {}
`,
	})

	model, err := NewLoader().Load(quietCtx(), root)
	require.NoError(t, err)

	require.Contains(t, model.Kinds, "fetch")
	kind := model.Kinds["fetch"]
	assert.Equal(t, "retrieves a document", kind.Description)

	require.Len(t, kind.Inputs, 1)
	assert.Equal(t, "url", kind.Inputs[0].Name)
	assert.True(t, kind.Inputs[0].Type.Equals(cty.String))

	require.Len(t, kind.Outputs, 2)
	assert.Equal(t, "body", kind.Outputs[0].Name)
	assert.True(t, kind.Outputs[1].Type.Equals(cty.List(cty.String)))

	require.Len(t, model.Operations, 2)
	page := model.Operations[0]
	assert.Equal(t, "fetch", page.Kind)
	assert.Equal(t, "page", page.Alias)
	require.Len(t, page.Links, 1)
	assert.Equal(t, "url", page.Links[0].Property)
	assert.Equal(t, "seeder", page.Links[0].Source)
	assert.Equal(t, []string{"url"}, page.BoundaryInputs)

	assert.Equal(t, "mirror", model.Operations[1].Alias)
}

func TestLoad_SingleFilePath(t *testing.T) {
	root := writeFixtures(t, map[string]string{
		"all.hcl": `
kind "noop" {
  input "x" {
    type = number
  }
}

operation "noop" "only" {}
`,
	})

	model, err := NewLoader().Load(quietCtx(), filepath.Join(root, "all.hcl"))
	require.NoError(t, err)
	assert.Len(t, model.Kinds, 1)
	assert.Len(t, model.Operations, 1)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("duplicate kind", func(t *testing.T) {
		root := writeFixtures(t, map[string]string{
			"a.hcl": `kind "dup" {}`,
			"b.hcl": `kind "dup" {}`,
		})
		_, err := NewLoader().Load(quietCtx(), root)
		assert.ErrorContains(t, err, "duplicate kind definition \"dup\"")
	})

	t.Run("malformed file", func(t *testing.T) {
		root := writeFixtures(t, map[string]string{
			"bad.hcl": `kind "broken" {`,
		})
		_, err := NewLoader().Load(quietCtx(), root)
		assert.ErrorContains(t, err, "failed to parse HCL file")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(quietCtx(), "/does/not/exist")
		assert.ErrorContains(t, err, "cannot access path")
	})
}

func TestTypeExprToCtyType(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		expected  cty.Type
		expectErr string
	}{
		{name: "string", src: "string", expected: cty.String},
		{name: "number", src: "number", expected: cty.Number},
		{name: "bool", src: "bool", expected: cty.Bool},
		{name: "list of string", src: "list(string)", expected: cty.List(cty.String)},
		{name: "map of number", src: "map(number)", expected: cty.Map(cty.Number)},
		{name: "set of bool", src: "set(bool)", expected: cty.Set(cty.Bool)},
		{name: "nested list", src: "list(list(number))", expected: cty.List(cty.List(cty.Number))},
		{name: "any is rejected", src: "any", expectErr: "must be concrete"},
		{name: "unknown primitive", src: "widget", expectErr: "unknown primitive type"},
		{name: "unknown constructor", src: "tuple(string)", expectErr: "unknown type constructor"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := writeFixtures(t, map[string]string{
				"typed.hcl": `
kind "probe" {
  input "value" {
    type = ` + tc.src + `
  }
}
`,
			})

			model, err := NewLoader().Load(quietCtx(), root)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, model.Kinds["probe"].Inputs[0].Type.Equals(tc.expected))
		})
	}
}
