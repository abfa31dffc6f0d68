package tool

import (
	"encoding/json"
	"fmt"

	"github.com/eyalcohen4/ag-ui-tests/internal/util"
	"github.com/eyalcohen4/ag-ui-tests/model"
)

// Tool is a callable function exposed to the model.
type Tool interface {
	// Name returns the unique tool name used in function call declarations and routing.
	Name() string
	// Description returns the short natural language description exposed to models.
	Description() string
	// Parameters returns the (minimal) JSON schema describing expected arguments.
	Parameters() map[string]any
	// Call invokes the tool with already-decoded arguments and returns its
	// textual result.
	Call(args map[string]any) (string, error)
}

// Registry holds the tool catalog for a server and dispatches invocations.
// It has no mutable state after construction and is safe for concurrent use.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry constructs a Registry holding the given tools.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds a tool, replacing any previous tool of the same name.
func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.tools[t.Name()] = t
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Definitions returns the tool declarations offered to the model, in
// registration order.
func (r *Registry) Definitions() []model.ToolDefinition {
	defs := make([]model.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return defs
}

// Execute dispatches one tool invocation and returns the result as a string.
// It never fails: unknown tools, malformed arguments and tool errors are all
// reported as textual error descriptions the model can react to.
func (r *Registry) Execute(name, rawArguments string) string {
	t, ok := r.tools[name]
	if !ok {
		return fmt.Sprintf("Error: Unknown tool '%s'", name)
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(rawArguments), &args); err != nil {
		return fmt.Sprintf("Error: Invalid JSON arguments: %s", rawArguments)
	}

	if err := util.ValidateParameters(args, t.Parameters()); err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	result, err := t.Call(args)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return result
}
