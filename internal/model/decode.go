package model

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed state.schema.json
var stateSchemaJSON string

var stateSchema = jsonschema.MustCompileString("state.schema.json", stateSchemaJSON)

// ErrMalformed marks a persisted value that is not a list encoding.
var ErrMalformed = errors.New("malformed persisted state")

// Decode parses either persisted encoding: a JSON array of strings or
// an object {"list": [...]}. The document must match the embedded schema
// as a whole; a list holding a non-string is rejected, not filtered.
func Decode(raw string) ([]string, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := stateSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var entries []any
	switch v := doc.(type) {
	case []any:
		entries = v
	case map[string]any:
		entries, _ = v["list"].([]any)
	}
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("%w: entry %v is not a string", ErrMalformed, e)
		}
		items = append(items, s)
	}
	return items, nil
}
