package parse

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// Mode selects how forgiving [DecodeJSON] is.
type Mode int

const (
	// Strict decodes the content as-is and fails on any syntax or type error.
	Strict Mode = iota
	// Repair retries a failed decode after running the content through
	// jsonrepair, then once more after unwrapping {"type","value"} envelopes.
	Repair
)

// DecodeJSON decodes content into T.
//
// In [Strict] mode this is a plain json.Unmarshal. In [Repair] mode a failed
// decode is retried on the repaired text, which fixes the usual LLM damage
// (single quotes, unquoted keys, trailing commas, missing brackets), and then
// on the repaired text with schema-style wrappers removed.
//
// Example usage:
//
//	type point struct {
//	    Date  string  `json:"date"`
//	    Value float64 `json:"value"`
//	}
//
//	points, err := DecodeJSON[[]point](`[{"date":"2024-01-01","value":10}]`, Strict)
//	points, err = DecodeJSON[[]point](`[{date: '2024-01-01', value: 10},]`, Repair)
func DecodeJSON[T any](content string, mode Mode) (T, error) {
	var result T

	err := json.Unmarshal([]byte(content), &result)
	if err == nil || mode == Strict {
		if err != nil {
			return result, fmt.Errorf("failed to unmarshal content as %T: %w", result, err)
		}
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	// Start from a fresh value: a failed Unmarshal may have partially filled result.
	var retry T
	if err = json.Unmarshal([]byte(repaired), &retry); err == nil {
		return retry, nil
	}

	if unwrapped, unwrapErr := unwrapSchemaValues(repaired); unwrapErr == nil {
		var unwrappedResult T
		if json.Unmarshal([]byte(unwrapped), &unwrappedResult) == nil {
			return unwrappedResult, nil
		}
	}

	return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (repaired: %s)", result, err, repaired)
}

// unwrapSchemaValues replaces every {"type": ..., "value": ...} object with its
// value. Models sometimes answer with a schema-shaped echo of the data:
//
//	[{"date": {"type": "string", "value": "2024-01-01"}, "value": {"type": "number", "value": 10}}]
//
// becomes
//
//	[{"date": "2024-01-01", "value": 10}]
func unwrapSchemaValues(jsonStr string) (string, error) {
	var data any
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", err
	}

	result, err := json.Marshal(recursiveUnwrap(data))
	if err != nil {
		return "", err
	}
	return string(result), nil
}

func recursiveUnwrap(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if _, hasType := v["type"]; hasType {
			if value, hasValue := v["value"]; hasValue && len(v) == 2 {
				return recursiveUnwrap(value)
			}
		}
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[key] = recursiveUnwrap(val)
		}
		return result

	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			result[i] = recursiveUnwrap(val)
		}
		return result

	default:
		return data
	}
}
