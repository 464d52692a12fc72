package openai

// translationSchema is the JSON Schema sent as the json_schema response
// format. It mirrors the TranslationResult shape; field descriptions steer
// the model and are part of the prompt contract.
var translationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"inputAnalysis": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hasIssue": map[string]any{
					"type":        "boolean",
					"description": "True if the input has spelling/grammar errors, is ambiguous, or is too stiff/unnatural.",
				},
				"original": map[string]any{"type": "string"},
				"corrected": map[string]any{
					"type":        "string",
					"description": "The corrected or improved version of the input. If no issue, repeat original.",
				},
				"issueType": map[string]any{
					"type": "string",
					"enum": []string{"spelling", "grammar", "ambiguity", "stiff", "none"},
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Brief, friendly explanation of the error or improvement.",
				},
			},
			"required":             []string{"hasIssue", "original", "corrected", "issueType", "explanation"},
			"additionalProperties": false,
		},
		"isChineseInput": map[string]any{
			"type":        "boolean",
			"description": "True if the CORRECTED input language is Chinese, False otherwise.",
		},
		"mainTranslation": map[string]any{
			"type":        "string",
			"description": "The primary translation of the CORRECTED input text.",
		},
		"variations": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "If input is Chinese, provide exactly 10 different English translations ranging from formal to slang/meme. If input is not Chinese, leave empty.",
		},
		"culturalContext": map[string]any{
			"type":        "string",
			"description": "Explain the slang, meme origin, or cultural nuance. If it is a name, explain who it is.",
		},
		"examples": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"original":   map[string]any{"type": "string"},
					"translated": map[string]any{"type": "string"},
				},
				"required":             []string{"original", "translated"},
				"additionalProperties": false,
			},
			"description": "Provide exactly 3 example sentences using the term/phrase.",
		},
		"imagePrompt": map[string]any{
			"type":        "string",
			"description": "A detailed visual description to generate a schematic or illustrative image explaining this concept. Keep it visual and conceptual.",
		},
	},
	"required": []string{
		"inputAnalysis", "isChineseInput", "mainTranslation", "variations",
		"culturalContext", "examples", "imagePrompt",
	},
	"additionalProperties": false,
}
