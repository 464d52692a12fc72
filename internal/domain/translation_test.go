package domain

import (
	"errors"
	"testing"
)

func validResult() TranslationResult {
	return TranslationResult{
		InputAnalysis: InputAnalysis{
			HasIssue:    false,
			Original:    "rizz",
			Corrected:   "rizz",
			IssueType:   IssueTypeNone,
			Explanation: "Looks good.",
		},
		IsChineseInput:  false,
		MainTranslation: "魅力",
		CulturalContext: "Gen Z slang for charisma.",
		Examples: []ExampleSentence{
			{Original: "He has rizz.", Translated: "他很有魅力。"},
			{Original: "Pure rizz.", Translated: "纯粹的魅力。"},
			{Original: "Zero rizz.", Translated: "毫无魅力。"},
		},
		ImagePrompt: "a glowing charismatic aura",
	}
}

func TestTranslationResult_Validate(t *testing.T) {
	t.Parallel()

	tenVariations := make([]string, 10)
	for i := range tenVariations {
		tenVariations[i] = "variation"
	}

	tests := []struct {
		name    string
		mutate  func(*TranslationResult)
		wantErr bool
	}{
		{"valid non-chinese", func(r *TranslationResult) {}, false},
		{"valid chinese with ten variations", func(r *TranslationResult) {
			r.IsChineseInput = true
			r.Variations = tenVariations
		}, false},
		{"empty main translation", func(r *TranslationResult) {
			r.MainTranslation = ""
		}, true},
		{"empty corrected input", func(r *TranslationResult) {
			r.InputAnalysis.Corrected = ""
		}, true},
		{"unknown issue type", func(r *TranslationResult) {
			r.InputAnalysis.IssueType = "typo"
		}, true},
		{"wrong variation count", func(r *TranslationResult) {
			r.Variations = []string{"one", "two", "three"}
		}, true},
		{"chinese input without variations", func(r *TranslationResult) {
			r.IsChineseInput = true
		}, true},
		{"no examples", func(r *TranslationResult) {
			r.Examples = nil
		}, true},
		{"incomplete example", func(r *TranslationResult) {
			r.Examples[1].Translated = ""
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := validResult()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidResult) {
					t.Errorf("error %v does not wrap ErrInvalidResult", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTranslationResult_SpeechLang(t *testing.T) {
	t.Parallel()

	r := validResult()
	if got := r.SpeechLang(); got != "zh-CN" {
		t.Errorf("non-Chinese input: got %q, want zh-CN", got)
	}
	r.IsChineseInput = true
	if got := r.SpeechLang(); got != "en-US" {
		t.Errorf("Chinese input: got %q, want en-US", got)
	}
}

func TestNotebookCollection_ContainsContent(t *testing.T) {
	t.Parallel()

	c := NotebookCollection{
		{ID: "1", Type: SavedItemTypeTerm, Content: "魅力"},
		{ID: "2", Type: SavedItemTypePhrase, Content: "绝绝子"},
	}
	if !c.ContainsContent("魅力") {
		t.Error("expected exact match to be found")
	}
	if c.ContainsContent("魅力 ") {
		t.Error("dedup must use exact equality, trailing space should not match")
	}
	if c.ContainsContent("rizz") {
		t.Error("unexpected match")
	}
}
