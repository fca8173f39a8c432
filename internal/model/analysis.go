package model

// Schema selects the field set the page-analysis collaborator extracts
type Schema string

const (
	SchemaApplication Schema = "application" // Application/signup form pages
	SchemaSpeaker     Schema = "speaker"     // Personal profile pages
	SchemaGeneric     Schema = "generic"     // Topic relevance only
	SchemaEvent       Schema = "event"       // Event listings with date/time/location
)

// PageAnalysis is the structured result returned by the rendering
// collaborator for one page. Which fields carry meaning depends on the
// Schema that was requested; the verdict policy only reads the fields
// belonging to that schema.
type PageAnalysis struct {
	Schema Schema `json:"-"`

	// Present for every schema
	PageTitle  string  `json:"page_title,omitempty"`
	Confidence float64 `json:"confidence"` // 0..1
	Reason     string  `json:"reason,omitempty"`

	// Application schema
	IsApplicationPage bool   `json:"is_application_page,omitempty"`
	PagePurpose       string `json:"page_purpose,omitempty"`
	HasFormFields     bool   `json:"has_form_fields,omitempty"`
	RoleOrPosition    string `json:"role_or_position,omitempty"`

	// Speaker schema
	IsAboutPerson   bool   `json:"is_about_person,omitempty"`
	PersonNameFound string `json:"person_name_found,omitempty"`
	ProfileType     string `json:"profile_type,omitempty"` // linkedin, company_bio, personal_website, other
	PersonTitle     string `json:"person_title,omitempty"`

	// Generic schema
	IsRelevant bool   `json:"is_relevant,omitempty"`
	PageType   string `json:"page_type,omitempty"` // event, article, product, registration, ...
	TopicMatch bool   `json:"topic_match,omitempty"`

	// Event schema (TopicMatch is shared with generic)
	IsEventPage   bool   `json:"is_event_page,omitempty"`
	EventDate     string `json:"event_date,omitempty"` // Exactly as shown on the page
	EventTime     string `json:"event_time,omitempty"`
	EventLocation string `json:"event_location,omitempty"`
}

// ClampConfidence forces the confidence into [0,1]. Extraction backends
// occasionally report percentages or negative sentinels.
func (a *PageAnalysis) ClampConfidence() {
	if a.Confidence < 0 {
		a.Confidence = 0
	}
	if a.Confidence > 1 {
		a.Confidence = 1
	}
}
