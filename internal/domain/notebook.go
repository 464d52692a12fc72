package domain

// SavedItem is one snippet the user pinned into the notebook. The JSON tags
// are the persisted storage contract and must stay stable across releases.
//
// Content doubles as the dedup key: no two items in a collection may carry
// the same Content string (exact byte equality, no normalization).
type SavedItem struct {
	ID         string        `json:"id"`
	Type       SavedItemType `json:"type"`
	Content    string        `json:"content"`
	SubContent string        `json:"subContent,omitempty"`
	Timestamp  int64         `json:"timestamp"`
}

// NotebookCollection is the ordered set of saved items, newest first.
// New items are prepended; the relative order of older items never changes.
type NotebookCollection []SavedItem

// ContainsContent reports whether any item carries exactly this content.
func (c NotebookCollection) ContainsContent(content string) bool {
	for _, it := range c {
		if it.Content == content {
			return true
		}
	}
	return false
}
