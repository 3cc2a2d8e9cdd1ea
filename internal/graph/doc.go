/*
Package graph provides the composed-graph artifact produced by the link
resolver and the Builder that accumulates it.

The Builder receives three kinds of mutations from the resolver: operation
registrations, internal links between operation ports, and boundary port
bindings that expose unmatched ports at the process level. Finish seals the
accumulated state into an immutable Graph, validating on the way that the
data flow is acyclic (delegated to the generic dag package).
*/
package graph
