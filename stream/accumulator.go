package stream

import (
	"strings"

	"github.com/eyalcohen4/ag-ui-tests/model"
	"github.com/eyalcohen4/ag-ui-tests/protocol"
)

// Executor dispatches one tool invocation. It must not fail: malformed
// arguments or unknown tools are reported inside the returned string.
type Executor interface {
	Execute(name, rawArguments string) string
}

// ExecutedCall records one completed tool invocation together with its result,
// for feeding back into the model on the continuation round.
type ExecutedCall struct {
	ID        string
	Name      string
	Arguments string
	Result    string
}

// pendingCall is the in-progress accumulation of one tool invocation.
type pendingCall struct {
	id   string
	name string
	args strings.Builder
}

// Accumulator reassembles tool invocations from per-delta fragments. At most
// one call is pending at a time: a delta announcing a new call id closes the
// previous call (executing it) before starting the next.
type Accumulator struct {
	executor        Executor
	parentMessageID string
	current         *pendingCall
	executed        []ExecutedCall
}

// NewAccumulator constructs an accumulator for one turn. Start events carry
// parentMessageID so the renderer can attach calls to the turn's message.
func NewAccumulator(executor Executor, parentMessageID string) *Accumulator {
	return &Accumulator{executor: executor, parentMessageID: parentMessageID}
}

// OnDelta consumes one tool-call fragment and returns the resulting protocol
// events. When a delta carries both a new call id and the first argument
// fragment, the start event precedes the argument event. An all-empty delta
// emits nothing.
func (a *Accumulator) OnDelta(delta model.ToolCallDelta) []protocol.Event {
	var events []protocol.Event

	if delta.ID != "" && (a.current == nil || delta.ID != a.current.id) {
		if a.current != nil {
			events = append(events, a.closeCurrent())
		}
		a.current = &pendingCall{id: delta.ID, name: delta.Name}
		events = append(events, protocol.NewToolCallStart(delta.ID, delta.Name, a.parentMessageID))
	} else if a.current != nil && a.current.name == "" && delta.Name != "" {
		// Some providers announce the name in a later delta than the id.
		a.current.name = delta.Name
	}

	if delta.Arguments != "" && a.current != nil {
		a.current.args.WriteString(delta.Arguments)
		events = append(events, protocol.NewToolCallArgs(a.current.id, delta.Arguments))
	}

	return events
}

// Close executes any still-pending call when the turn's terminal reason is
// observed, returning its end event.
func (a *Accumulator) Close() []protocol.Event {
	if a.current == nil {
		return nil
	}
	return []protocol.Event{a.closeCurrent()}
}

// Calls returns the calls executed during this turn, in execution order.
func (a *Accumulator) Calls() []ExecutedCall {
	return a.executed
}

// closeCurrent executes the pending call and converts it to an end event.
func (a *Accumulator) closeCurrent() protocol.Event {
	call := ExecutedCall{
		ID:        a.current.id,
		Name:      a.current.name,
		Arguments: a.current.args.String(),
	}
	call.Result = a.executor.Execute(call.Name, call.Arguments)
	a.executed = append(a.executed, call)
	a.current = nil
	return protocol.NewToolCallEnd(call.ID, call.Result)
}
