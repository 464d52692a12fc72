package domain

// IssueType classifies the problem the model found in the user's input.
type IssueType string

const (
	IssueTypeSpelling  IssueType = "spelling"
	IssueTypeGrammar   IssueType = "grammar"
	IssueTypeAmbiguity IssueType = "ambiguity"
	IssueTypeStiff     IssueType = "stiff"
	IssueTypeNone      IssueType = "none"
)

func (t IssueType) String() string { return string(t) }

func (t IssueType) IsValid() bool {
	switch t {
	case IssueTypeSpelling, IssueTypeGrammar, IssueTypeAmbiguity, IssueTypeStiff, IssueTypeNone:
		return true
	}
	return false
}

// SavedItemType distinguishes what kind of snippet the user saved.
type SavedItemType string

const (
	SavedItemTypeTerm    SavedItemType = "term"
	SavedItemTypePhrase  SavedItemType = "phrase"
	SavedItemTypeContext SavedItemType = "context"
)

func (t SavedItemType) String() string { return string(t) }

func (t SavedItemType) IsValid() bool {
	switch t {
	case SavedItemTypeTerm, SavedItemTypePhrase, SavedItemTypeContext:
		return true
	}
	return false
}
