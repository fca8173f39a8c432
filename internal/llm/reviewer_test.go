package llm

import (
	"context"
	"errors"
	"testing"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name     string
	response string
	err      error
	lastReq  CompletionRequest
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &CompletionResponse{Content: m.response, Model: "mock"}, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return true
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider != nil {
		t.Error("Expected nil provider when disabled")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "mystery"})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
}

func TestReviewer_Disabled(t *testing.T) {
	reviewer := NewReviewer(nil, "")
	if reviewer.IsEnabled() {
		t.Error("Expected reviewer with nil provider to be disabled")
	}

	_, err := reviewer.Review(context.Background(), "some copy")
	if err == nil {
		t.Fatal("Expected error from disabled reviewer")
	}
}

func TestReviewer_Review_ParsesIssues(t *testing.T) {
	mock := &MockProvider{
		name: "mock",
		response: `{
			"spelling_issues": [
				{"original": "recieve", "suggestion": "receive", "context": "You will recieve an email"}
			],
			"wording_suggestions": [],
			"consistency_issues": [
				{
					"issue_type": "date_mismatch",
					"description": "Header says Jan 17-19 but body says Jan 29",
					"conflicting_items": ["Jan 17-19", "Jan 29"],
					"severity": "critical"
				}
			],
			"overall_score": 70,
			"summary": "Solid copy with one critical date conflict"
		}`,
	}

	reviewer := NewReviewer(mock, "gpt-4o-mini")
	review, err := reviewer.Review(context.Background(), "You will recieve an email. Jan 17-19. See you Jan 29!")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if !mock.lastReq.JSONOnly {
		t.Error("Expected review request to demand JSON output")
	}
	if len(review.SpellingIssues) != 1 || review.SpellingIssues[0].Suggestion != "receive" {
		t.Errorf("Unexpected spelling issues: %+v", review.SpellingIssues)
	}
	if len(review.ConsistencyIssues) != 1 || review.ConsistencyIssues[0].IssueType != "date_mismatch" {
		t.Errorf("Unexpected consistency issues: %+v", review.ConsistencyIssues)
	}
	if review.OverallScore != 70 {
		t.Errorf("Expected score 70, got %d", review.OverallScore)
	}
	if !review.HasIssues() {
		t.Error("Expected HasIssues to be true")
	}
}

func TestReviewer_Review_StripsCodeFences(t *testing.T) {
	mock := &MockProvider{
		name: "mock",
		response: "```json\n" + `{"spelling_issues": [], "wording_suggestions": [], "consistency_issues": [], "overall_score": 100, "summary": "Clean"}` + "\n```",
	}

	reviewer := NewReviewer(mock, "gpt-4o-mini")
	review, err := reviewer.Review(context.Background(), "Perfect copy.")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	if review.OverallScore != 100 {
		t.Errorf("Expected score 100, got %d", review.OverallScore)
	}
	if review.HasIssues() {
		t.Error("Expected no issues")
	}
}

func TestReviewer_Review_EmptyText(t *testing.T) {
	mock := &MockProvider{name: "mock", err: errors.New("should not be called")}
	reviewer := NewReviewer(mock, "gpt-4o-mini")

	review, err := reviewer.Review(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	if review.OverallScore != 100 {
		t.Errorf("Expected perfect score for empty text, got %d", review.OverallScore)
	}
}

func TestReviewer_Review_ClampsScore(t *testing.T) {
	mock := &MockProvider{
		name:     "mock",
		response: `{"spelling_issues": [], "wording_suggestions": [], "consistency_issues": [], "overall_score": 140, "summary": ""}`,
	}

	reviewer := NewReviewer(mock, "")
	review, err := reviewer.Review(context.Background(), "copy")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	if review.OverallScore != 100 {
		t.Errorf("Expected score clamped to 100, got %d", review.OverallScore)
	}
}

func TestStripJSONFences(t *testing.T) {
	if got := StripJSONFences(`{"a": 1}`); got != `{"a": 1}` {
		t.Errorf("Expected passthrough, got %q", got)
	}
	if got := StripJSONFences("```json\n{\"a\": 1}\n```"); got != `{"a": 1}` {
		t.Errorf("Expected fences stripped, got %q", got)
	}
	if got := StripJSONFences("```\n{\"a\": 1}\n```"); got != `{"a": 1}` {
		t.Errorf("Expected bare fences stripped, got %q", got)
	}
}
