package recommend

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const forestSchemaURL = "schema://level-recommender-forest.json"

// forestSchema describes the on-disk decision forest. Nodes are either a
// leaf carrying a class or a split on one feature.
var forestSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":  "integer",
			"const": 1,
		},
		"classes": map[string]any{
			"type":        "array",
			"minItems":    1,
			"uniqueItems": true,
			"items":       map[string]any{"type": "integer"},
		},
		"trees": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"nodes": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"oneOf": []any{
								map[string]any{
									"type": "object",
									"properties": map[string]any{
										"leaf": map[string]any{"type": "integer"},
									},
									"required":             []any{"leaf"},
									"additionalProperties": false,
								},
								map[string]any{
									"type": "object",
									"properties": map[string]any{
										"feature": map[string]any{
											"type": "string",
											"enum": []any{
												FeatureDifficulty,
												FeatureResponseTime,
												FeatureCorrect,
												FeatureStreak,
												FeatureConfidence,
											},
										},
										"threshold": map[string]any{"type": "number"},
										"left":      map[string]any{"type": "integer", "minimum": 1},
										"right":     map[string]any{"type": "integer", "minimum": 1},
									},
									"required":             []any{"feature", "threshold", "left", "right"},
									"additionalProperties": false,
								},
							},
						},
					},
				},
				"required":             []any{"nodes"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "classes", "trees"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledForest *jsonschema.Schema
	compileErr     error
)

// validateForestDoc validates a decoded JSON document against forestSchema.
func validateForestDoc(doc any) error {
	compileOnce.Do(func() {
		compiledForest, compileErr = compileForestSchema()
	})
	if compileErr != nil {
		return compileErr
	}
	if err := compiledForest.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compileForestSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), so the Go
	// map is round-tripped through encoding/json to normalize numbers.
	defBytes, err := json.Marshal(forestSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(forestSchemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(forestSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
