// Package runner implements the streaming response transducer: it consumes a
// model's chunk stream, demultiplexes visible answer and reasoning text,
// interleaves tool invocations and their results, and re-emits everything as
// a strictly ordered sequence of AG-UI protocol events.
//
// The Runner is the run controller: it brackets one or more turns between
// RUN_STARTED and exactly one of RUN_FINISHED or RUN_ERROR, and is the error
// boundary for upstream and encoding failures. A turn that terminates with
// tool calls triggers exactly one continuation turn feeding the tool results
// back to the model, with tools not re-offered.
//
// A Runner is stateless across runs and safe for concurrent use; each run
// owns its own demultiplexer, accumulator and conversation buffer.
package runner
