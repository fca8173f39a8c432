// Package verify turns extracted link claims into alignment verdicts by
// driving a rendering collaborator and applying the decision policy.
package verify

import (
	"context"
	"fmt"

	"github.com/claimlens/claimlens/internal/model"
)

// Renderer opens page-rendering sessions against the external collaborator.
// Implementations live in internal/browse; tests substitute fakes.
type Renderer interface {
	OpenSession(ctx context.Context) (Session, error)
}

// Session is a single rendering session, reused for every link in a batch:
// navigate, extract, navigate next. Close must be safe to call on every exit
// path.
type Session interface {
	// ID identifies the session for logging.
	ID() string

	// Navigate loads the URL in the session.
	Navigate(ctx context.Context, url string) error

	// Extract returns a structured analysis of the current page shaped by
	// the requested schema.
	Extract(ctx context.Context, req ExtractRequest) (*model.PageAnalysis, error)

	Close() error
}

// ExtractRequest describes one structured page-analysis request.
type ExtractRequest struct {
	Schema       model.Schema
	Instruction  string // Prose guidance for model-backed extraction
	ExpectedName string // Speaker schema: the person the copy names
	CopyContext  string // Clipped marketing copy around the link
}

// maxContextChars caps how much surrounding copy is handed to the
// collaborator per request.
const maxContextChars = 300

// buildRequest assembles the extraction request for a claim under the
// selected schema, including the per-schema instruction text.
func buildRequest(claim model.LinkClaim, schema model.Schema) ExtractRequest {
	copyContext := clip(claim.ClaimContext, maxContextChars)

	req := ExtractRequest{
		Schema:       schema,
		ExpectedName: claim.ExtractedName,
		CopyContext:  copyContext,
	}

	switch schema {
	case model.SchemaApplication:
		req.Instruction = "Analyze this page: Is this an application form or job application page? " +
			"Look for form fields, submit buttons, application instructions. " +
			"Determine if someone could apply for a job, program, or opportunity here."

	case model.SchemaSpeaker:
		name := claim.ExtractedName
		if name == "" {
			name = "the expected person"
		}
		req.Instruction = fmt.Sprintf(
			"Analyze this page: Is this page about a person named '%s'? "+
				"Look for their name, biography, job title, company, photo. "+
				"This should be a profile page (LinkedIn, company bio, etc.) for %s.",
			name, name)

	case model.SchemaEvent:
		req.Instruction = fmt.Sprintf(
			"Extract the event details EXACTLY as shown on this page.\n\n"+
				"IMPORTANT: Read the date and time EXACTLY as displayed on the page. "+
				"Do NOT guess or infer dates. Copy the exact text shown for the event date and time.\n\n"+
				"Marketing copy context: '%s'\n\n"+
				"Extract: the event name, the EXACT date shown, the EXACT time shown, and location.",
			copyContext)

	default:
		req.Instruction = fmt.Sprintf(
			"Check if this page matches the expected topic from this marketing text: '%s'\n\n"+
				"IMPORTANT: Focus on whether the PAGE TITLE or main heading matches the expected topic. "+
				"Event registration pages with matching titles ARE aligned. "+
				"Don't penalize pages for having minimal text if the title clearly matches the topic.",
			copyContext)
	}

	return req
}

// clip truncates s to at most n bytes
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
