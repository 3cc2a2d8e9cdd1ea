package process

import (
	"fmt"
	"strings"

	"github.com/susannasiebert/procera/internal/port"
	"github.com/zclconf/go-cty/cty"
)

// NodeNotFoundError reports an explicit link whose source alias resolves to
// no node, or to more than one node, in the process's node set.
type NodeNotFoundError struct {
	Alias   string
	Matches int
}

func (e *NodeNotFoundError) Error() string {
	if e.Matches > 1 {
		return fmt.Sprintf("alias %q matches %d nodes, aliases must be unique", e.Alias, e.Matches)
	}
	return fmt.Sprintf("no node with alias %q", e.Alias)
}

// OutputLookupError reports a unique-output-of-type lookup on a node that
// yielded zero or several candidate ports.
type OutputLookupError struct {
	Alias   string
	Type    cty.Type
	Matches int
}

func (e *OutputLookupError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("node %q has no output of type %s", e.Alias, e.Type.FriendlyName())
	}
	return fmt.Sprintf("node %q has %d outputs of type %s, expected exactly one",
		e.Alias, e.Matches, e.Type.FriendlyName())
}

// AmbiguousProducerError reports that implicit resolution found more than
// one unused producer for a data type. It names every competing producer.
type AmbiguousProducerError struct {
	Type      cty.Type
	Producers []port.Endpoint
}

func (e *AmbiguousProducerError) Error() string {
	names := make([]string, len(e.Producers))
	for i, p := range e.Producers {
		names[i] = p.String()
	}
	return fmt.Sprintf("ambiguous producer for type %s: competing outputs %s",
		e.Type.FriendlyName(), strings.Join(names, ", "))
}

// ProducerAliases returns the aliases of the competing producers, in the
// order they were encountered.
func (e *AmbiguousProducerError) ProducerAliases() []string {
	aliases := make([]string, len(e.Producers))
	for i, p := range e.Producers {
		aliases[i] = p.Alias
	}
	return aliases
}
