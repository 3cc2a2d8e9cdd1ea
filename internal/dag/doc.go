/*
Package dag provides a minimal directed-graph topology used by the graph
builder to track which operations feed which. It knows nothing about ports or
types; vertices are operation aliases and edges are data-flow relationships.
*/
package dag
