package rules

// BuildOverlaySchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map, describing the YAML overlay file. Validated before any value is merged
// so a typo'd table never half-applies.
func BuildOverlaySchema() map[string]any {
	keywordList := map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    map[string]any{"type": "string", "minLength": 1},
	}
	categoryList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"keywords": map[string]any{
				"type":                 "object",
				"additionalProperties": keywordList,
			},
			"id_keywords": keywordList,
			"pricing": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"per_page": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "number", "minimum": 0.0},
					},
					"default":           map[string]any{"type": "number", "minimum": 0.0},
					"premium_threshold": map[string]any{"type": "number", "minimum": 0.0},
				},
			},
			"two_column": categoryList,
			"sheet_fix":  categoryList,
		},
	}
}
