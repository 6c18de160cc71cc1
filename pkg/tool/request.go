package tool

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// Request is a single tool invocation as produced by an agent.
type Request struct {
	Operation string         `json:"operation"`
	Params    map[string]any `json:"params"`
}

// DecodeRequest parses a JSON tool request. Agent-produced JSON is often
// slightly malformed (trailing commas, single quotes, unquoted keys); when
// plain parsing fails the payload is repaired and parsed once more.
func DecodeRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return Request{}, fmt.Errorf("failed to parse tool request: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &req); err != nil {
			return Request{}, fmt.Errorf("failed to parse repaired tool request: %w", err)
		}
	}
	return req, nil
}

// DecodeParams parses a bare params object, applying the same repair
// fallback as DecodeRequest. Used for params supplied on the command line.
func DecodeParams(data []byte) (map[string]any, error) {
	var params map[string]any
	if err := json.Unmarshal(data, &params); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return nil, fmt.Errorf("failed to parse operation params: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &params); err != nil {
			return nil, fmt.Errorf("failed to parse repaired operation params: %w", err)
		}
	}
	return params, nil
}
