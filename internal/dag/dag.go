package dag

import (
	"fmt"
)

// Graph is a collection of vertices and directed edges between them.
type Graph struct {
	// vertices stores all vertices in the graph, keyed by their unique ID.
	vertices map[string]*vertex
}

// vertex is a single node in the graph. It is un-exported to enforce
// interaction with the graph via the public API (using string IDs), not by
// direct struct manipulation.
type vertex struct {
	// id is the unique identifier for the vertex.
	id string
	// deps holds the set of vertices this vertex depends on (predecessors).
	deps map[string]*vertex
	// dependents holds the set of vertices that depend on this one (successors).
	dependents map[string]*vertex
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[string]*vertex),
	}
}

// AddVertex adds a new vertex with the given ID to the graph. If a vertex
// with the same ID already exists, the function does nothing.
func (g *Graph) AddVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}

	g.vertices[id] = &vertex{
		id:         id,
		deps:       make(map[string]*vertex),
		dependents: make(map[string]*vertex),
	}
}

// AddEdge creates a directed edge from the `fromID` vertex to the `toID`
// vertex, meaning `toID` consumes data produced by `fromID`. An error is
// returned if either vertex does not exist or if the edge would be a
// self-reference.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	from, ok := g.vertices[fromID]
	if !ok {
		return fmt.Errorf("source vertex not found: %s", fromID)
	}

	to, ok := g.vertices[toID]
	if !ok {
		return fmt.Errorf("destination vertex not found: %s", toID)
	}

	to.deps[fromID] = from
	from.dependents[toID] = to

	return nil
}

// DetectCycles checks the graph for any cycles. It returns a non-nil error
// if a cycle is found, naming the first vertex involved in the detected cycle.
func (g *Graph) DetectCycles() error {
	// Classic depth-first search with three vertex sets:
	// permanent: fully visited, known not to be part of a cycle.
	// temporary: currently on the recursion stack.
	// unvisited: everything else.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(v *vertex) error
	visit = func(v *vertex) error {
		if permanent[v.id] {
			return nil
		}
		if temporary[v.id] {
			// A vertex already on the recursion stack means a cycle.
			return fmt.Errorf("cycle detected involving operation '%s'", v.id)
		}

		temporary[v.id] = true

		for _, dependent := range v.dependents {
			if err := visit(dependent); err != nil {
				return err
			}
		}

		delete(temporary, v.id)
		permanent[v.id] = true

		return nil
	}

	for _, v := range g.vertices {
		if !permanent[v.id] {
			if err := visit(v); err != nil {
				return err
			}
		}
	}

	return nil
}
