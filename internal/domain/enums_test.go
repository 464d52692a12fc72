package domain

import "testing"

func TestIssueType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  IssueType
		want bool
	}{
		{IssueTypeSpelling, true},
		{IssueTypeGrammar, true},
		{IssueTypeAmbiguity, true},
		{IssueTypeStiff, true},
		{IssueTypeNone, true},
		{IssueType("INVALID"), false},
		{IssueType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("IssueType(%q).IsValid() = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestSavedItemType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  SavedItemType
		want bool
	}{
		{SavedItemTypeTerm, true},
		{SavedItemTypePhrase, true},
		{SavedItemTypeContext, true},
		{SavedItemType("note"), false},
		{SavedItemType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("SavedItemType(%q).IsValid() = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}
