package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/claimlens/claimlens/internal/model"
)

const reviewSystemPrompt = "You are an expert copywriter. Respond only with valid JSON."

// Reviewer checks marketing copy for spelling, wording, and internal
// consistency issues using an LLM provider.
type Reviewer struct {
	provider Provider
	model    string
}

// NewReviewer creates a copy reviewer backed by the given provider.
// A nil provider produces a disabled reviewer.
func NewReviewer(provider Provider, model string) *Reviewer {
	return &Reviewer{
		provider: provider,
		model:    model,
	}
}

// IsEnabled reports whether the reviewer has a provider to call.
func (r *Reviewer) IsEnabled() bool {
	return r != nil && r.provider != nil
}

// Review analyzes the given copy and returns structured feedback.
func (r *Reviewer) Review(ctx context.Context, text string) (*model.CopyReview, error) {
	if !r.IsEnabled() {
		return nil, fmt.Errorf("copy review requires an LLM provider")
	}
	if strings.TrimSpace(text) == "" {
		return &model.CopyReview{OverallScore: 100}, nil
	}

	resp, err := r.provider.Complete(ctx, CompletionRequest{
		System:   reviewSystemPrompt,
		Prompt:   buildReviewPrompt(text),
		Model:    r.model,
		JSONOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("review completion: %w", err)
	}

	var review model.CopyReview
	if err := json.Unmarshal([]byte(StripJSONFences(resp.Content)), &review); err != nil {
		return nil, fmt.Errorf("parse review response: %w", err)
	}
	if review.OverallScore < 0 {
		review.OverallScore = 0
	}
	if review.OverallScore > 100 {
		review.OverallScore = 100
	}

	return &review, nil
}

func buildReviewPrompt(text string) string {
	var b strings.Builder

	b.WriteString(`You are an expert copywriter and editor reviewing marketing material.

Analyze the following marketing copy and provide feedback on:
1. Spelling errors - typos, misspellings
2. Grammar issues - incorrect grammar, punctuation
3. Wording suggestions - ways to make the copy clearer, more engaging, or more professional
4. INTERNAL CONSISTENCY - VERY IMPORTANT! Check for conflicting information within the copy:
   - Date ranges that don't match (e.g., header says "Jan 17-19" but body says "Jan 29")
   - Day of week that doesn't match the date (e.g., "Saturday 1/29" when 1/29 isn't a Saturday)
   - Conflicting times, locations, or other details mentioned in different parts
   - Schedule items that fall outside the stated date range

Marketing copy to review:
---
`)
	b.WriteString(text)
	b.WriteString(`
---

Respond with a JSON object in this exact format:
{
    "spelling_issues": [
        {
            "original": "the misspelled word",
            "suggestion": "the correct spelling",
            "context": "the sentence containing the error"
        }
    ],
    "wording_suggestions": [
        {
            "original_phrase": "the original phrase",
            "suggested_phrase": "improved version",
            "reason": "why this is better",
            "severity": "minor|moderate|important"
        }
    ],
    "consistency_issues": [
        {
            "issue_type": "date_mismatch|day_mismatch|conflicting_info",
            "description": "Clear explanation of the inconsistency",
            "conflicting_items": ["First conflicting text", "Second conflicting text"],
            "severity": "minor|moderate|critical"
        }
    ],
    "overall_score": 85,
    "summary": "Brief overall assessment of the copy quality"
}

Notes:
- Only include actual issues, not nitpicks
- For emojis and casual tone, don't flag as issues if they fit the marketing context
- Focus on clarity, professionalism, and effectiveness
- CONSISTENCY ISSUES ARE CRITICAL - date/time mismatches can confuse readers
- Score from 0-100 where 100 is perfect
- If no issues found, return empty arrays
`)

	return b.String()
}

// StripJSONFences removes markdown code fences some models wrap around
// JSON responses despite JSON-only instructions.
func StripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
