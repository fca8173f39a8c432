package model

// SpellingIssue is a typo or misspelling found in the copy
type SpellingIssue struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
	Context    string `json:"context,omitempty"` // The sentence containing the error
}

// WordingIssue is a style or clarity suggestion
type WordingIssue struct {
	OriginalPhrase  string `json:"original_phrase"`
	SuggestedPhrase string `json:"suggested_phrase"`
	Reason          string `json:"reason,omitempty"`
	Severity        string `json:"severity,omitempty"` // minor, moderate, important
}

// ConsistencyIssue flags conflicting information within the copy itself,
// e.g. a header date range that disagrees with a date in the body.
type ConsistencyIssue struct {
	IssueType        string   `json:"issue_type"` // date_mismatch, day_mismatch, conflicting_info
	Description      string   `json:"description"`
	ConflictingItems []string `json:"conflicting_items,omitempty"`
	Severity         string   `json:"severity,omitempty"` // minor, moderate, critical
}

// CopyReview is the prose-quality verdict returned by the review collaborator
type CopyReview struct {
	SpellingIssues     []SpellingIssue    `json:"spelling_issues"`
	WordingSuggestions []WordingIssue     `json:"wording_suggestions"`
	ConsistencyIssues  []ConsistencyIssue `json:"consistency_issues"`
	OverallScore       int                `json:"overall_score"` // 0-100
	Summary            string             `json:"summary"`
}

// HasIssues reports whether the review found anything worth surfacing
func (r CopyReview) HasIssues() bool {
	return len(r.SpellingIssues) > 0 || len(r.WordingSuggestions) > 0 || len(r.ConsistencyIssues) > 0
}
