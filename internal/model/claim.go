package model

// ClaimType categorizes the assertion marketing copy makes about a link
type ClaimType string

const (
	ClaimTypeApplication    ClaimType = "application"     // Link claimed to be a job/program application page
	ClaimTypeSpeakerProfile ClaimType = "speaker_profile" // Link claimed to be a named person's profile
	ClaimTypeGeneric        ClaimType = "generic"         // Link claimed to be about a topic or event
)

// LinkClaim represents a link extracted from marketing copy together with the
// claim the surrounding text makes about it. Immutable once the classifier
// has built it.
type LinkClaim struct {
	URL           string    `json:"url"`
	ClaimContext  string    `json:"claim_context"`            // Normalized text surrounding the link
	ClaimType     ClaimType `json:"claim_type"`               // What kind of page the copy promises
	ExtractedName string    `json:"extracted_name,omitempty"` // Expected person, speaker profiles only
}
