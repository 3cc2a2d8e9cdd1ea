/*
Package port provides the value types that identify attachment points on
workflow operations: a Port is a named, typed input or output declared by an
operation kind, and an Endpoint pins one such port to a concrete operation
instance by its alias.

The package also centralizes the automatic naming scheme used for boundary
ports, so that every generated name follows the canonical
`alias.property` format and grouped names follow `(a.b+c.d)`.
*/
package port
