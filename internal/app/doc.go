// Package app wires the application together: it configures logging, loads
// the HCL configuration into the model, builds the registry and node set,
// runs the link resolver, and reports the composed graph.
package app
