package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/claimlens/claimlens/internal/model"
)

type fakeSession struct {
	id          string
	navigated   []string
	navErr      map[string]error
	extractErr  error
	analysis    *model.PageAnalysis
	closed      bool
	closeErr    error
	extractReqs []ExtractRequest
}

func (s *fakeSession) ID() string { return s.id }

func (s *fakeSession) Navigate(ctx context.Context, url string) error {
	s.navigated = append(s.navigated, url)
	if err, ok := s.navErr[url]; ok {
		return err
	}
	return nil
}

func (s *fakeSession) Extract(ctx context.Context, req ExtractRequest) (*model.PageAnalysis, error) {
	s.extractReqs = append(s.extractReqs, req)
	if s.extractErr != nil {
		return nil, s.extractErr
	}
	if s.analysis != nil {
		a := *s.analysis
		return &a, nil
	}
	return &model.PageAnalysis{Confidence: 0.8, IsRelevant: true, TopicMatch: true}, nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return s.closeErr
}

type fakeRenderer struct {
	session *fakeSession
	openErr error
	opened  int
}

func (r *fakeRenderer) OpenSession(ctx context.Context) (Session, error) {
	r.opened++
	if r.openErr != nil {
		return nil, r.openErr
	}
	return r.session, nil
}

func genericClaim(url string) model.LinkClaim {
	return model.LinkClaim{URL: url, ClaimType: model.ClaimTypeGeneric, ClaimContext: "read this [LINK]"}
}

func TestVerifyAll_OrderAndLength(t *testing.T) {
	session := &fakeSession{id: "s1"}
	verifier := NewVerifier(&fakeRenderer{session: session}, nil, nil)

	claims := []model.LinkClaim{
		genericClaim("https://a.example.com"),
		genericClaim("https://b.example.com"),
		genericClaim("https://c.example.com"),
	}

	results := verifier.VerifyAll(context.Background(), claims)
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for i, claim := range claims {
		if results[i].URL != claim.URL {
			t.Errorf("Result %d: expected %s, got %s", i, claim.URL, results[i].URL)
		}
	}
	if len(session.navigated) != 3 {
		t.Errorf("Expected 3 navigations, got %d", len(session.navigated))
	}
	if !session.closed {
		t.Error("Expected session to be closed")
	}
}

func TestVerifyAll_SessionReused(t *testing.T) {
	renderer := &fakeRenderer{session: &fakeSession{id: "s1"}}
	verifier := NewVerifier(renderer, nil, nil)

	claims := []model.LinkClaim{
		genericClaim("https://a.example.com"),
		genericClaim("https://b.example.com"),
	}
	verifier.VerifyAll(context.Background(), claims)

	if renderer.opened != 1 {
		t.Errorf("Expected exactly 1 session for the batch, got %d", renderer.opened)
	}
}

func TestVerifyAll_Empty(t *testing.T) {
	renderer := &fakeRenderer{session: &fakeSession{id: "s1"}}
	verifier := NewVerifier(renderer, nil, nil)

	results := verifier.VerifyAll(context.Background(), nil)
	if results == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results, got %d", len(results))
	}
	if renderer.opened != 0 {
		t.Errorf("Expected no session for an empty batch, got %d", renderer.opened)
	}
}

func TestVerifyAll_SessionOpenFailure(t *testing.T) {
	verifier := NewVerifier(&fakeRenderer{openErr: errors.New("browser down")}, nil, nil)

	claims := []model.LinkClaim{
		genericClaim("https://a.example.com"),
		genericClaim("https://b.example.com"),
	}
	results := verifier.VerifyAll(context.Background(), claims)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Status != model.StatusError {
			t.Errorf("Expected error status for %s, got %s", r.URL, r.Status)
		}
		if r.Confidence != 0.0 {
			t.Errorf("Expected confidence 0.0, got %f", r.Confidence)
		}
	}
}

func TestVerifyAll_NavigationFailureIsSoft(t *testing.T) {
	session := &fakeSession{
		id:     "s1",
		navErr: map[string]error{"https://bad.example.com": errors.New("dns failure")},
	}
	verifier := NewVerifier(&fakeRenderer{session: session}, nil, nil)

	claims := []model.LinkClaim{
		genericClaim("https://bad.example.com"),
		genericClaim("https://good.example.com"),
	}
	results := verifier.VerifyAll(context.Background(), claims)

	if results[0].Status != model.StatusQuestionable {
		t.Errorf("Expected questionable for failed navigation, got %s", results[0].Status)
	}
	if results[0].Confidence != 0.3 {
		t.Errorf("Expected confidence 0.3, got %f", results[0].Confidence)
	}
	// The batch continues past the failure
	if results[1].Status != model.StatusAligned {
		t.Errorf("Expected the next link verified normally, got %s", results[1].Status)
	}
}

func TestVerifyAll_ExtractFailureIsSoft(t *testing.T) {
	session := &fakeSession{id: "s1", extractErr: errors.New("model unavailable")}
	verifier := NewVerifier(&fakeRenderer{session: session}, nil, nil)

	results := verifier.VerifyAll(context.Background(), []model.LinkClaim{
		genericClaim("https://a.example.com"),
	})

	if results[0].Status != model.StatusQuestionable {
		t.Errorf("Expected questionable, got %s", results[0].Status)
	}
	if !session.closed {
		t.Error("Expected session closed after failures")
	}
}

func TestVerifyAll_SchemaFollowsClaim(t *testing.T) {
	session := &fakeSession{id: "s1"}
	verifier := NewVerifier(&fakeRenderer{session: session}, nil, nil)

	claims := []model.LinkClaim{
		{URL: "https://example.com/apply", ClaimType: model.ClaimTypeApplication},
		{URL: "https://linkedin.com/in/jane", ClaimType: model.ClaimTypeSpeakerProfile, ExtractedName: "Jane Doe"},
		{URL: "https://lu.ma/kickoff", ClaimType: model.ClaimTypeGeneric, ClaimContext: "kickoff Jan 29 [LINK]"},
	}
	verifier.VerifyAll(context.Background(), claims)

	if len(session.extractReqs) != 3 {
		t.Fatalf("Expected 3 extract requests, got %d", len(session.extractReqs))
	}
	if session.extractReqs[0].Schema != model.SchemaApplication {
		t.Errorf("Expected application schema, got %s", session.extractReqs[0].Schema)
	}
	if session.extractReqs[1].Schema != model.SchemaSpeaker {
		t.Errorf("Expected speaker schema, got %s", session.extractReqs[1].Schema)
	}
	if session.extractReqs[1].ExpectedName != "Jane Doe" {
		t.Errorf("Expected speaker request to carry the name, got %q", session.extractReqs[1].ExpectedName)
	}
	if session.extractReqs[2].Schema != model.SchemaEvent {
		t.Errorf("Expected event schema for event URL, got %s", session.extractReqs[2].Schema)
	}
}
