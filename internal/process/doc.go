/*
Package process implements the type-directed linking pass that turns a fixed
set of operation nodes into one composed graph.

Resolution happens in two strictly ordered passes over the node set. The
explicit pass applies every declared link and boundary-input binding, so
explicit claims always win over inference. The implicit pass then examines
each data type that appears on any port: a lone unused producer of a type is
linked to every still-unsatisfied consumer of that type (or exposed as a
boundary output when there are none), several unused producers are a fatal
ambiguity, and consumers with no producer are jointly exposed as one boundary
input. Whatever remains unmatched at the end of a run defines the process's
own inputs and outputs.

A Process is constructed once with its full node set and memoizes the built
graph per requested name; the transient producer/consumer tracking sets are
reset before every uncached run and their terminal state is retained with the
cached result so boundary-port queries read the state of one specific run.

One Process instance must not be used from multiple goroutines concurrently.
*/
package process
