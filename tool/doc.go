// Package tool defines the callable tools exposed to the model and the
// Registry that dispatches invocations.
//
// Tools are stateless: a call is a pure function of its arguments, safe for
// concurrent use across runs. The Registry's Execute never returns an error;
// unknown tools, malformed JSON arguments, validation failures and execution
// failures all become textual "Error: ..." results, because a tool result is
// always funneled into the event stream and back into the model's context.
package tool
