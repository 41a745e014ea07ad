package tools

import (
	"context"
	"encoding/json"

	pkgLog "lucas-asistente/pkg/log"
	"lucas-asistente/pkg/openai"
)

// Tool is one operation the language model may request. Execute
// returns the user-facing result text; an error means an unexpected
// store failure, which the registry converts to a generic retry
// message.
type Tool interface {
	// Name returns the operation name used in function calling.
	Name() string

	// Description returns what the operation does (for the model).
	Description() string

	// Parameters returns the JSON schema for the operation arguments.
	Parameters() map[string]interface{}

	// Execute runs the operation with the decoded argument bag.
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
}

// Registry holds the available operations and dispatches requested
// calls to them.
type Registry struct {
	tools map[string]Tool
	order []string
	l     pkgLog.Logger
}

// NewRegistry creates an empty operation registry.
func NewRegistry(l pkgLog.Logger) *Registry {
	return &Registry{
		tools: make(map[string]Tool),
		l:     l,
	}
}

// Register adds a tool. Registration order is preserved in the schema
// surface sent to the model.
func (r *Registry) Register(tool Tool) {
	if _, ok := r.tools[tool.Name()]; !ok {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// ToOpenAITools converts the registered operations to the function
// calling wire format.
func (r *Registry) ToOpenAITools() []openai.Tool {
	out := make([]openai.Tool, 0, len(r.order))
	for _, name := range r.order {
		tool := r.tools[name]
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionDefinition{
				Name:        tool.Name(),
				Description: tool.Description(),
				Parameters:  tool.Parameters(),
			},
		})
	}
	return out
}

// DispatchCall decodes a model-issued tool call and executes it. The
// argument JSON is decoded exactly once, here at the oracle boundary.
func (r *Registry) DispatchCall(ctx context.Context, call openai.ToolCall) string {
	args := make(map[string]interface{})
	if raw := call.Function.Arguments; raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			r.l.Errorf(ctx, "dispatch: bad arguments for %s: %v", call.Function.Name, err)
			return msgGenericError
		}
	}
	return r.Dispatch(ctx, call.Function.Name, args)
}

// Dispatch executes one requested operation and always returns result
// text. Unknown operations and store failures become short Spanish
// messages rather than errors; the turn keeps going either way.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]interface{}) string {
	tool, ok := r.Get(name)
	if !ok {
		r.l.Warnf(ctx, "dispatch: unknown operation %q", name)
		return msgUnknownOperation
	}

	result, err := tool.Execute(ctx, args)
	if err != nil {
		r.l.Errorf(ctx, "dispatch: %s failed: %v", name, err)
		return msgGenericError
	}
	return result
}
