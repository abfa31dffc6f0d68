package tool

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

// calcEnv is the whitelist of names available inside expressions. Anything
// outside it fails at compile time, keeping evaluation sandboxed.
var calcEnv = map[string]any{
	"sqrt":  math.Sqrt,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"log":   math.Log,
	"log10": math.Log10,
	"exp":   math.Exp,
	"pow":   math.Pow,
	"pi":    math.Pi,
	"e":     math.E,
}

// CalculateTool evaluates mathematical expressions.
type CalculateTool struct{}

// NewCalculateTool constructs the calculate tool.
func NewCalculateTool() *CalculateTool { return &CalculateTool{} }

// Name implements Tool.
func (t *CalculateTool) Name() string { return "calculate" }

// Description implements Tool.
func (t *CalculateTool) Description() string {
	return "Perform mathematical calculations. Evaluates a mathematical expression and returns the result."
}

// Parameters implements Tool.
func (t *CalculateTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"expression": map[string]any{
				"type":        "string",
				"description": "The mathematical expression to evaluate, e.g., '2 + 2', '15 * 23 + 42', 'sqrt(16)'",
			},
		},
		"required": []string{"expression"},
	}
}

// Call compiles and evaluates the expression against the math environment.
func (t *CalculateTool) Call(args map[string]any) (string, error) {
	expression, _ := args["expression"].(string)
	if expression == "" {
		return "", fmt.Errorf("expression is required")
	}

	program, err := expr.Compile(expression, expr.Env(calcEnv))
	if err != nil {
		return "", fmt.Errorf("invalid expression syntax - %v", err)
	}
	out, err := expr.Run(program, calcEnv)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", out), nil
}
