// Package stream holds the incremental parsers at the heart of the response
// transducer: the delimiter-aware text demultiplexer that classifies model
// output into visible answer and reasoning spans, and the tool-call
// accumulator that reassembles tool invocations from per-delta fragments.
//
// Both parsers are chunk-boundary agnostic: feeding the same input split at
// arbitrary points produces identical output. Neither is safe for concurrent
// use; each run owns its own instances.
package stream
