package browse

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/claimlens/claimlens/internal/llm"
	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/verify"
)

const extractorSystemPrompt = "You are a precise web page analyst. Respond only with valid JSON."

// Extractor turns captured page content into a structured PageAnalysis by
// asking an LLM provider to fill the schema's fields.
type Extractor struct {
	provider     llm.Provider
	model        string
	maxPageChars int
}

// NewExtractor creates a model-backed page analyzer
func NewExtractor(provider llm.Provider, modelName string, maxPageChars int) *Extractor {
	if maxPageChars <= 0 {
		maxPageChars = 8000
	}
	return &Extractor{
		provider:     provider,
		model:        modelName,
		maxPageChars: maxPageChars,
	}
}

// Extract analyzes the captured page under the requested schema.
func (e *Extractor) Extract(ctx context.Context, req verify.ExtractRequest, page *Page) (*model.PageAnalysis, error) {
	if e.provider == nil {
		return nil, fmt.Errorf("page extraction requires an LLM provider")
	}

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		System:   extractorSystemPrompt,
		Prompt:   e.buildExtractionPrompt(req, page),
		Model:    e.model,
		JSONOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction completion: %w", err)
	}

	var analysis model.PageAnalysis
	if err := json.Unmarshal([]byte(llm.StripJSONFences(resp.Content)), &analysis); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}

	if analysis.PageTitle == "" {
		analysis.PageTitle = page.Title
	}
	analysis.ClampConfidence()

	return &analysis, nil
}

// schemaFields lists the JSON fields the model must fill for each schema.
var schemaFields = map[model.Schema]string{
	model.SchemaApplication: `{
    "is_application_page": true or false,
    "page_purpose": "what this page is for",
    "has_form_fields": true or false,
    "role_or_position": "the role being applied for, if any",
    "confidence": 0.0 to 1.0,
    "reason": "one-sentence justification"
}`,
	model.SchemaSpeaker: `{
    "is_about_person": true or false,
    "person_name_found": "the person's name as shown on the page",
    "profile_type": "linkedin|company_bio|personal_website|other",
    "person_title": "their job title, if shown",
    "confidence": 0.0 to 1.0,
    "reason": "one-sentence justification"
}`,
	model.SchemaEvent: `{
    "is_event_page": true or false,
    "event_date": "the date EXACTLY as shown on the page, empty if none",
    "event_time": "the time EXACTLY as shown on the page, empty if none",
    "event_location": "the location, if shown",
    "topic_match": true or false,
    "confidence": 0.0 to 1.0,
    "reason": "one-sentence justification"
}`,
	model.SchemaGeneric: `{
    "is_relevant": true or false,
    "page_type": "event|article|product|registration|other",
    "topic_match": true or false,
    "confidence": 0.0 to 1.0,
    "reason": "one-sentence justification"
}`,
}

func (e *Extractor) buildExtractionPrompt(req verify.ExtractRequest, page *Page) string {
	fields, ok := schemaFields[req.Schema]
	if !ok {
		fields = schemaFields[model.SchemaGeneric]
	}

	var b strings.Builder
	b.WriteString(req.Instruction)
	b.WriteString("\n\nPage title: ")
	b.WriteString(page.Title)
	b.WriteString("\n\nPage content:\n---\n")
	b.WriteString(clipText(page.Text, e.maxPageChars))
	b.WriteString("\n---\n\nRespond with a JSON object in this exact format:\n")
	b.WriteString(fields)
	b.WriteString("\nAlso include \"page_title\" with the page title. Base every field only on the page content above.")

	return b.String()
}
