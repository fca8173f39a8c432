package model

// AlignmentStatus is the verdict on whether a page matches its claim
type AlignmentStatus string

const (
	StatusAligned      AlignmentStatus = "aligned"      // Page matches the claim
	StatusQuestionable AlignmentStatus = "questionable" // Unclear, needs a human look
	StatusMisaligned   AlignmentStatus = "misaligned"   // Page contradicts the claim
	StatusError        AlignmentStatus = "error"        // Collaborator unavailable, nothing checked
)

// Label returns the human-readable status label used in rendered output
func (s AlignmentStatus) Label() string {
	switch s {
	case StatusAligned:
		return "Aligned"
	case StatusQuestionable:
		return "Needs Review"
	case StatusMisaligned:
		return "Misaligned"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Marker returns a single-character marker for compact rendering
func (s AlignmentStatus) Marker() string {
	switch s {
	case StatusAligned:
		return "✓"
	case StatusQuestionable:
		return "?"
	case StatusMisaligned:
		return "✗"
	case StatusError:
		return "!"
	default:
		return "-"
	}
}

// VerificationResult records the outcome of checking one link against its
// claim. Created exactly once per claim per batch run and never mutated
// afterwards; a batch always yields one result per input claim, in input
// order.
type VerificationResult struct {
	URL          string                 `json:"url"`
	ClaimType    ClaimType              `json:"claim_type"`
	Status       AlignmentStatus        `json:"status"`
	Confidence   float64                `json:"confidence"` // 0.0 to 1.0
	ShortReason  string                 `json:"short_reason"`
	PageTitle    string                 `json:"page_title,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"` // Schema-dependent auxiliary fields
	ErrorMessage string                 `json:"error_message,omitempty"`
}

// IsAligned reports whether the link checked out against its claim
func (r VerificationResult) IsAligned() bool {
	return r.Status == StatusAligned
}
