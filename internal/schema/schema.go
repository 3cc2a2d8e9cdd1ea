// Package schema defines the HCL block structures for operation-kind
// manifests and process files, as decoded by gohcl before translation into
// the config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// --- Manifest Schemas ---

// PortDefinition declares a single typed input or output port on a kind.
type PortDefinition struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
}

// KindDefinition represents the HCL manifest for one operation kind.
type KindDefinition struct {
	Name        string            `hcl:"name,label"`
	Description string            `hcl:"description,optional"`
	Inputs      []*PortDefinition `hcl:"input,block"`
	Outputs     []*PortDefinition `hcl:"output,block"`
}

// --- Process Schemas ---

// Link declares an explicit internal link: the labelled input property of
// the enclosing operation is fed by the output of the `source` operation.
type Link struct {
	Property string `hcl:"property,label"`
	Source   string `hcl:"source"`
}

// BoundaryInput marks an input property of the enclosing operation to be
// bound to a process boundary input rather than wired internally.
type BoundaryInput struct {
	Property string `hcl:"property,label"`
}

// Operation represents an `operation` block from a process file: one
// instance of a kind, with its alias and optional explicit wiring.
type Operation struct {
	Kind           string           `hcl:"kind,label"`
	Alias          string           `hcl:"alias,label"`
	Links          []*Link          `hcl:"link,block"`
	BoundaryInputs []*BoundaryInput `hcl:"boundary_input,block"`
}

// FileRoot decodes all possible top-level blocks from any file. Manifests
// and process declarations may be mixed freely across files.
type FileRoot struct {
	Kinds      []*KindDefinition `hcl:"kind,block"`
	Operations []*Operation      `hcl:"operation,block"`
	Remain     hcl.Body          `hcl:",remain"`
}
