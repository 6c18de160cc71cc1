package tool

// CalculatorName is the tool name advertised to agent frameworks.
const CalculatorName = "financial_calculator"

// Schema is a minimal JSON-schema node, enough to describe the calculator's
// parameter shape to a tool-calling agent.
type Schema struct {
	Type        string             `json:"type" yaml:"type"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty" yaml:"enum,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required    []string           `json:"required,omitempty" yaml:"required,omitempty"`
}

// Spec describes the financial calculator to a tool-calling agent.
type Spec struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Parameters  *Schema `json:"parameters" yaml:"parameters"`
}

// CalculatorSpec returns the static tool specification. The operation enum
// is built from the same constants the dispatcher routes on, so the two can
// never drift apart.
func CalculatorSpec() Spec {
	ops := Operations()
	enum := make([]string, 0, len(ops))
	for _, op := range ops {
		enum = append(enum, string(op))
	}

	return Spec{
		Name:        CalculatorName,
		Description: "Perform financial calculations and modeling",
		Parameters: &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"operation": {
					Type:        "string",
					Enum:        enum,
					Description: "The financial operation to perform",
				},
				"params": {
					Type:        "object",
					Description: "Parameters specific to the operation",
				},
			},
			Required: []string{"operation", "params"},
		},
	}
}
