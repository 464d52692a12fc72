package domain

import "fmt"

// InputAnalysis is the model's verdict on the user's raw input: whether it
// contained a spelling/grammar/ambiguity/stiffness issue, the corrected form
// that the translation is based on, and a short friendly explanation.
type InputAnalysis struct {
	HasIssue    bool      `json:"hasIssue"`
	Original    string    `json:"original"`
	Corrected   string    `json:"corrected"`
	IssueType   IssueType `json:"issueType"`
	Explanation string    `json:"explanation"`
}

// ExampleSentence is one bilingual usage example.
type ExampleSentence struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
}

// TranslationResult is the structured response of one translation session.
// It is immutable once received: a new session replaces it wholesale, it is
// never merged with a previous result.
//
// Variations is populated only for Chinese input (exactly ten renderings from
// literal to current slang); for non-Chinese input it stays empty.
type TranslationResult struct {
	InputAnalysis   InputAnalysis     `json:"inputAnalysis"`
	IsChineseInput  bool              `json:"isChineseInput"`
	MainTranslation string            `json:"mainTranslation"`
	Variations      []string          `json:"variations"`
	CulturalContext string            `json:"culturalContext"`
	Examples        []ExampleSentence `json:"examples"`
	ImagePrompt     string            `json:"imagePrompt"`
}

const expectedVariations = 10

// Validate checks the shape contract of a model response. The remote model is
// an untrusted producer: a result that fails here must be converted into a
// translation error at the adapter boundary and never propagated further in.
func (r *TranslationResult) Validate() error {
	if r.MainTranslation == "" {
		return fmt.Errorf("mainTranslation is empty: %w", ErrInvalidResult)
	}
	if r.InputAnalysis.Corrected == "" {
		return fmt.Errorf("inputAnalysis.corrected is empty: %w", ErrInvalidResult)
	}
	if !r.InputAnalysis.IssueType.IsValid() {
		return fmt.Errorf("inputAnalysis.issueType %q: %w", r.InputAnalysis.IssueType, ErrInvalidResult)
	}
	if n := len(r.Variations); n != 0 && n != expectedVariations {
		return fmt.Errorf("variations: want 0 or %d, got %d: %w", expectedVariations, n, ErrInvalidResult)
	}
	if r.IsChineseInput && len(r.Variations) == 0 {
		return fmt.Errorf("variations: empty for Chinese input: %w", ErrInvalidResult)
	}
	if len(r.Examples) == 0 {
		return fmt.Errorf("examples: empty: %w", ErrInvalidResult)
	}
	for i, ex := range r.Examples {
		if ex.Original == "" || ex.Translated == "" {
			return fmt.Errorf("examples[%d]: incomplete: %w", i, ErrInvalidResult)
		}
	}
	return nil
}

// SpeechLang returns the BCP 47 tag the client should use to voice the main
// translation: Chinese input yields English output and vice versa.
func (r *TranslationResult) SpeechLang() string {
	if r.IsChineseInput {
		return "en-US"
	}
	return "zh-CN"
}

// Illustration is a generated image in a displayable encoded form.
type Illustration struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}
