package finance

// codeExecutionDisabledMessage is the permanent refusal returned for every
// code-execution request.
const codeExecutionDisabledMessage = "Code execution disabled for security reasons. Use specific financial calculation methods instead."

// CodeExecution reports the outcome of a code-execution request. The
// capability is permanently disabled; the operation exists only so the
// tool enum stays stable for agents that already advertise it.
type CodeExecution struct {
	Success   bool           `json:"success"`
	Output    string         `json:"output"`
	Variables map[string]any `json:"variables"`
	Error     string         `json:"error"`
}

// ExecuteCode refuses to run the supplied code, unconditionally. This is a
// security posture, not a transient failure.
func ExecuteCode(code string) CodeExecution {
	return CodeExecution{
		Success:   false,
		Output:    "",
		Variables: map[string]any{},
		Error:     codeExecutionDisabledMessage,
	}
}
