package config

import (
	"github.com/zclconf/go-cty/cty"
)

// PortSpec declares one typed port on an operation kind.
type PortSpec struct {
	// Name is the property name of the port.
	Name string
	// Type is the resolved data type of the port.
	Type cty.Type
	// Description is optional documentation from the manifest.
	Description string
}

// KindSpec is the manifest of one operation kind: its identity and its
// ordered input and output ports.
type KindSpec struct {
	Name        string
	Description string
	Inputs      []PortSpec
	Outputs     []PortSpec
}

// LinkSpec declares one explicit internal link on an operation instance:
// the named input property is to be fed by the output of the operation with
// the given source alias. The concrete source port is chosen later by type.
type LinkSpec struct {
	Property string
	Source   string
}

// OperationSpec declares one operation instance inside a process: which kind
// it is, its unique alias, its explicit links, and the input properties that
// must be bound to the process boundary instead of being wired internally.
type OperationSpec struct {
	Kind           string
	Alias          string
	Links          []LinkSpec
	BoundaryInputs []string
}

// Model is the fully loaded configuration: all known operation kinds plus
// the ordered list of operation instances making up the process.
type Model struct {
	// Kinds maps a kind name to its manifest.
	Kinds map[string]*KindSpec
	// Operations holds the process's operation instances in declaration order.
	Operations []*OperationSpec
}

// NewModel returns an empty, initialized Model.
func NewModel() *Model {
	return &Model{
		Kinds: make(map[string]*KindSpec),
	}
}
