package port

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Port is a single typed attachment point declared by an operation kind.
type Port struct {
	// Name is the property name of the port, unique among the kind's ports.
	Name string
	// Type is the data type carried by the port. Matching is by exact type
	// equality (cty.Type.Equals); there is no coercion or subtyping.
	Type cty.Type
}

// Endpoint identifies one port on one operation instance. It is a comparable
// value and is used directly as a map key by the link resolver's tracking sets.
type Endpoint struct {
	// Alias is the owning operation's instance alias.
	Alias string
	// Property is the port's property name on that operation.
	Property string
}

// String returns the canonical single-endpoint name, `alias.property`.
func (e Endpoint) String() string {
	return e.Alias + "." + e.Property
}

// IsZero reports whether the endpoint is missing its alias or property and
// therefore does not identify a real port.
func (e Endpoint) IsZero() bool {
	return e.Alias == "" || e.Property == ""
}

// NamingError reports a contract violation in an automatic naming request.
// It is never expected to surface from a correctly wired resolver.
type NamingError struct {
	Reason string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("invalid naming request: %s", e.Reason)
}

// Name derives the automatic boundary-port name for a group of endpoints.
// A single endpoint names as `alias.property`; several endpoints name as
// `(a.b+c.d)` in enumeration order. An empty group, or a group containing an
// undefined endpoint, returns a NamingError.
func Name(endpoints []Endpoint) (string, error) {
	if len(endpoints) == 0 {
		return "", &NamingError{Reason: "no endpoints given"}
	}
	for _, e := range endpoints {
		if e.IsZero() {
			return "", &NamingError{Reason: fmt.Sprintf("undefined endpoint %+v", e)}
		}
	}
	if len(endpoints) == 1 {
		return endpoints[0].String(), nil
	}

	name := "("
	for i, e := range endpoints {
		if i > 0 {
			name += "+"
		}
		name += e.String()
	}
	return name + ")", nil
}
