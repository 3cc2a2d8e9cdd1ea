package node

import (
	"fmt"

	"github.com/susannasiebert/procera/internal/config"
	"github.com/susannasiebert/procera/internal/graph"
	"github.com/susannasiebert/procera/internal/port"
	"github.com/susannasiebert/procera/internal/process"
	"github.com/zclconf/go-cty/cty"
)

// Node is one operation instance. It is immutable after construction.
type Node struct {
	alias          string
	kind           string
	inputs         []port.Port
	outputs        []port.Port
	links          []process.ExplicitLink
	explicitInputs []string
	op             *graph.Operation
}

// New builds a Node from its instance declaration and the manifest of its
// kind. Explicit links and boundary-input declarations are validated against
// the kind's declared input ports.
func New(spec *config.OperationSpec, kind *config.KindSpec) (*Node, error) {
	if spec.Alias == "" {
		return nil, fmt.Errorf("operation of kind %q has no alias", spec.Kind)
	}
	if spec.Kind != kind.Name {
		return nil, fmt.Errorf("operation %q declares kind %q but was given manifest for %q",
			spec.Alias, spec.Kind, kind.Name)
	}

	n := &Node{
		alias: spec.Alias,
		kind:  kind.Name,
		op:    &graph.Operation{Alias: spec.Alias, Kind: kind.Name},
	}

	for _, p := range kind.Inputs {
		n.inputs = append(n.inputs, port.Port{Name: p.Name, Type: p.Type})
	}
	for _, p := range kind.Outputs {
		n.outputs = append(n.outputs, port.Port{Name: p.Name, Type: p.Type})
	}

	for _, l := range spec.Links {
		if !n.hasInput(l.Property) {
			return nil, fmt.Errorf("operation %q links property %q which kind %q does not declare as an input",
				spec.Alias, l.Property, kind.Name)
		}
		n.links = append(n.links, process.ExplicitLink{
			SourceAlias: l.Source,
			Property:    l.Property,
		})
	}

	seen := make(map[string]struct{})
	for _, property := range spec.BoundaryInputs {
		if !n.hasInput(property) {
			return nil, fmt.Errorf("operation %q declares boundary input %q which kind %q does not declare as an input",
				spec.Alias, property, kind.Name)
		}
		if _, dup := seen[property]; dup {
			return nil, fmt.Errorf("operation %q declares boundary input %q twice", spec.Alias, property)
		}
		seen[property] = struct{}{}
		n.explicitInputs = append(n.explicitInputs, property)
	}

	return n, nil
}

// FromModel assembles the full node set of a loaded model, resolving each
// operation's kind through the registry. Node order follows the model's
// operation declaration order.
func FromModel(model *config.Model, lookup func(kind string) (*config.KindSpec, bool)) ([]process.Node, error) {
	nodes := make([]process.Node, 0, len(model.Operations))
	for _, spec := range model.Operations {
		kind, ok := lookup(spec.Kind)
		if !ok {
			return nil, fmt.Errorf("operation %q refers to unknown kind %q", spec.Alias, spec.Kind)
		}
		n, err := New(spec, kind)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (n *Node) hasInput(property string) bool {
	for _, p := range n.inputs {
		if p.Name == property {
			return true
		}
	}
	return false
}

// Alias returns the node's unique instance alias.
func (n *Node) Alias() string { return n.alias }

// Kind returns the operation-kind name the node was declared with.
func (n *Node) Kind() string { return n.kind }

// Inputs returns the node's input ports in declaration order.
func (n *Node) Inputs() []port.Port { return n.inputs }

// Outputs returns the node's output ports in declaration order.
func (n *Node) Outputs() []port.Port { return n.outputs }

// InputsOf returns the input ports carrying exactly the given type.
func (n *Node) InputsOf(t cty.Type) []port.Port {
	return portsOf(n.inputs, t)
}

// OutputsOf returns the output ports carrying exactly the given type.
func (n *Node) OutputsOf(t cty.Type) []port.Port {
	return portsOf(n.outputs, t)
}

// ExplicitLinks returns the node's declared internal links.
func (n *Node) ExplicitLinks() []process.ExplicitLink { return n.links }

// ExplicitInputs returns the input properties declared as boundary inputs.
func (n *Node) ExplicitInputs() []string { return n.explicitInputs }

// UniqueOutputOf returns the node's single output of the given type. Zero or
// several candidates yield an OutputLookupError.
func (n *Node) UniqueOutputOf(t cty.Type) (port.Port, error) {
	matches := n.OutputsOf(t)
	if len(matches) != 1 {
		return port.Port{}, &process.OutputLookupError{
			Alias:   n.alias,
			Type:    t,
			Matches: len(matches),
		}
	}
	return matches[0], nil
}

// TypeOf returns the type of the named port. Inputs shadow outputs, though a
// well-formed kind never shares a property name between the two.
func (n *Node) TypeOf(property string) (cty.Type, error) {
	for _, p := range n.inputs {
		if p.Name == property {
			return p.Type, nil
		}
	}
	for _, p := range n.outputs {
		if p.Name == property {
			return p.Type, nil
		}
	}
	return cty.NilType, fmt.Errorf("node %q has no port named %q", n.alias, property)
}

// Operation returns the opaque handle handed to the graph builder.
func (n *Node) Operation() *graph.Operation { return n.op }

func portsOf(ports []port.Port, t cty.Type) []port.Port {
	var matches []port.Port
	for _, p := range ports {
		if p.Type.Equals(t) {
			matches = append(matches, p)
		}
	}
	return matches
}
