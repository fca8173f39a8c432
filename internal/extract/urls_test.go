package extract

import (
	"testing"
)

func TestURLs_FormattedLink(t *testing.T) {
	spans := URLs("Check out <https://example.com/careers|our careers page> today!")
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	if spans[0].URL != "https://example.com/careers" {
		t.Errorf("Expected https://example.com/careers, got %s", spans[0].URL)
	}
	// The span covers the whole <...> token, label included
	if spans[0].Start != 10 {
		t.Errorf("Expected span start 10, got %d", spans[0].Start)
	}
}

func TestURLs_FormattedWithoutLabel(t *testing.T) {
	spans := URLs("Details: <https://example.com/event>")
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	if spans[0].URL != "https://example.com/event" {
		t.Errorf("Expected https://example.com/event, got %s", spans[0].URL)
	}
}

func TestURLs_BareURL(t *testing.T) {
	spans := URLs("Register at https://lu.ma/kickoff before Friday")
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	if spans[0].URL != "https://lu.ma/kickoff" {
		t.Errorf("Expected https://lu.ma/kickoff, got %s", spans[0].URL)
	}
}

func TestURLs_BareInsideFormattedNotDuplicated(t *testing.T) {
	spans := URLs("Apply: <https://example.com/apply|Apply Now>")
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span (formatted wins), got %d", len(spans))
	}
}

func TestURLs_MixedSortedByPosition(t *testing.T) {
	text := "First https://a.example.com then <https://b.example.com|B> done"
	spans := URLs(text)
	if len(spans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(spans))
	}
	if spans[0].URL != "https://a.example.com" {
		t.Errorf("Expected first span to be a.example.com, got %s", spans[0].URL)
	}
	if spans[1].URL != "https://b.example.com" {
		t.Errorf("Expected second span to be b.example.com, got %s", spans[1].URL)
	}
	if spans[0].End > spans[1].Start {
		t.Errorf("Expected non-overlapping spans, got [%d,%d) and [%d,%d)",
			spans[0].Start, spans[0].End, spans[1].Start, spans[1].End)
	}
}

func TestURLs_None(t *testing.T) {
	spans := URLs("Just plain copy with no links at all.")
	if len(spans) != 0 {
		t.Errorf("Expected 0 spans, got %d", len(spans))
	}
}

func TestClaims_Empty(t *testing.T) {
	claims := Claims("")
	if len(claims) != 0 {
		t.Errorf("Expected 0 claims for empty message, got %d", len(claims))
	}
}

func TestClaims_FiltersUnparseable(t *testing.T) {
	// "https://" alone has no host and must be dropped silently
	claims := Claims("broken link https:// and a real one https://example.com/page")
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if claims[0].URL != "https://example.com/page" {
		t.Errorf("Expected the real URL, got %s", claims[0].URL)
	}
}

func TestClaims_ClassifiesAndCarriesContext(t *testing.T) {
	claims := Claims("We're hiring! Apply now: https://example.com/careers/apply")
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	claim := claims[0]
	if claim.ClaimType != "application" {
		t.Errorf("Expected application claim, got %s", claim.ClaimType)
	}
	if claim.ClaimContext == "" {
		t.Error("Expected non-empty claim context")
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize(nil); got != "No links found in the message." {
		t.Errorf("Expected no-links summary, got %q", got)
	}

	claims := Claims("Meet our speaker Jane Doe: https://linkedin.com/in/janedoe")
	summary := Summarize(claims)
	if summary == "" {
		t.Fatal("Expected non-empty summary")
	}
	if want := "Found 1 link(s):"; summary[:len(want)] != want {
		t.Errorf("Expected summary to start with %q, got %q", want, summary)
	}
}
