package gemini

import "google.golang.org/genai"

// translationSchema constrains the model response to the TranslationResult
// shape. The field descriptions steer the model and are part of the prompt
// contract.
var translationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"inputAnalysis": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"hasIssue": {
					Type:        genai.TypeBoolean,
					Description: "True if the input has spelling/grammar errors, is ambiguous, or is too stiff/unnatural.",
				},
				"original": {Type: genai.TypeString},
				"corrected": {
					Type:        genai.TypeString,
					Description: "The corrected or improved version of the input. If no issue, repeat original.",
				},
				"issueType": {
					Type: genai.TypeString,
					Enum: []string{"spelling", "grammar", "ambiguity", "stiff", "none"},
				},
				"explanation": {
					Type:        genai.TypeString,
					Description: "Brief, friendly explanation of the error or improvement.",
				},
			},
			Required: []string{"hasIssue", "original", "corrected", "issueType", "explanation"},
		},
		"isChineseInput": {
			Type:        genai.TypeBoolean,
			Description: "True if the CORRECTED input language is Chinese, False otherwise.",
		},
		"mainTranslation": {
			Type:        genai.TypeString,
			Description: "The primary translation of the CORRECTED input text.",
		},
		"variations": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "If input is Chinese, provide exactly 10 different English translations ranging from formal to slang/meme. If input is not Chinese, leave empty.",
		},
		"culturalContext": {
			Type:        genai.TypeString,
			Description: "Explain the slang, meme origin, or cultural nuance. If it is a name, explain who it is.",
		},
		"examples": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"original":   {Type: genai.TypeString},
					"translated": {Type: genai.TypeString},
				},
			},
			Description: "Provide exactly 3 example sentences using the term/phrase.",
		},
		"imagePrompt": {
			Type:        genai.TypeString,
			Description: "A detailed visual description to generate a schematic or illustrative image explaining this concept. Keep it visual and conceptual.",
		},
	},
	Required: []string{"inputAnalysis", "isChineseInput", "mainTranslation", "culturalContext", "examples", "imagePrompt"},
}
