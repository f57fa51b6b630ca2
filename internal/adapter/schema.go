package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// extractResponseSchema describes what a backend runtime must print for
// the extract subcommand: one inner list of raw triples per input text.
func extractResponseSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"results"},
		"properties": map[string]any{
			"results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []string{"source", "relation", "sink", "sentence"},
						"properties": map[string]any{
							"source":       map[string]any{"type": "string"},
							"source_label": map[string]any{"type": "string"},
							"relation":     map[string]any{"type": "string"},
							"sink":         map[string]any{"type": "string"},
							"sink_label":   map[string]any{"type": "string"},
							"confidence":   map[string]any{"type": "number"},
							"sentence":     map[string]any{"type": "string"},
							"trait_name":   map[string]any{"type": "string"},
							"trait_value":  map[string]any{"type": "string"},
							"unit":         map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	}
}

// CanonicalTripleSchema describes one normalized triple as exchanged
// with the remote extraction peer.
func CanonicalTripleSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"required": []string{
			"source_entity_name", "source_entity_attr", "relation_type",
			"sink_entity_name", "sink_entity_attr", "confidence",
			"model_profile", "status", "sentence",
		},
		"properties": map[string]any{
			"source_entity_name": map[string]any{"type": "string"},
			"source_entity_attr": map[string]any{"type": "string"},
			"relation_type":      map[string]any{"type": "string"},
			"sink_entity_name":   map[string]any{"type": "string"},
			"sink_entity_attr":   map[string]any{"type": "string"},
			"confidence":         map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"model_profile":      map[string]any{"type": "string"},
			"status":             map[string]any{"type": "string"},
			"sentence":           map[string]any{"type": "string"},
			"trait_name":         map[string]any{"type": "string"},
			"trait_value":        map[string]any{"type": "string"},
			"unit":               map[string]any{"type": "string"},
		},
	}
}
