package reflection

import "github.com/abhisek/zerohall/internal/llm"

// Schema is the structured output requested from the provider.
var Schema = &llm.Schema{
	Name:        "gift-reflection",
	Description: "A short personal reflection on a visitor's quiz result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "Uplifting headline naming the visitor's gift (4-8 words)",
			},
			"paragraph": map[string]any{
				"type":        "string",
				"description": "Second-person reflection blending both traits (3-4 sentences)",
			},
			"paths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    3,
				"maxItems":    3,
				"description": "Three concrete creative pursuits to try next (4-10 words each)",
			},
		},
		"required":             []any{"headline", "paragraph", "paths"},
		"additionalProperties": false,
	},
}
