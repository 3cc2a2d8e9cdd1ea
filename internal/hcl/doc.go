/*
Package hcl is the HCL-specific implementation of the config.Loader
interface. It discovers .hcl files under the configured paths, parses and
decodes them against the block schemas in the schema package, and translates
the result into the format-agnostic config.Model, including resolving port
type expressions (e.g. `string`, `list(number)`) into cty types.
*/
package hcl
