// Package registry provides the central store of operation-kind manifests.
//
// The Registry maps a kind name (e.g. "http_fetch") to its parsed manifest:
// the ordered, typed input and output ports the kind exposes. It is populated
// from the loaded config model at startup and then validated, so that every
// operation instance the linker builds refers to a well-formed kind.
package registry
