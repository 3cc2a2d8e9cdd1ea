// Package node provides the manifest-backed implementation of the
// process.Node capability set: one operation instance with its alias, the
// ordered typed ports inherited from its kind manifest, and any explicit
// wiring declared on the instance.
package node
