package output

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// runQuery normalizes data to map/slice form, runs a gojq query, and returns
// the result values.
func runQuery(query string, data any) ([]any, error) {
	normalized, err := normalizeToInterface(data)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}

	var results []any
	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query error: %s", queryErr)
		}
		results = append(results, v)
	}
	return results, nil
}

// normalizeToInterface round-trips data through JSON so gojq sees only plain
// maps, slices and scalars.
func normalizeToInterface(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
