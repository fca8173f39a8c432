package extract

import (
	"strings"
	"testing"
)

func spanFor(t *testing.T, text, url string) URLSpan {
	t.Helper()
	idx := strings.Index(text, url)
	if idx == -1 {
		t.Fatalf("url %q not in text", url)
	}
	return URLSpan{URL: url, Start: idx, End: idx + len(url)}
}

func TestContextWindow_UsesFullLine(t *testing.T) {
	text := "Our keynote speaker is amazing\nApply for the fellowship today: https://example.com/apply\nSee you there!"
	span := spanFor(t, text, "https://example.com/apply")

	window := ContextWindow(text, span)
	if !strings.Contains(window, "Apply for the fellowship today") {
		t.Errorf("Expected the link's own line, got %q", window)
	}
	if strings.Contains(window, "keynote") || strings.Contains(window, "See you") {
		t.Errorf("Expected neighboring lines excluded, got %q", window)
	}
}

func TestContextWindow_ReplacesLinkWithPlaceholder(t *testing.T) {
	text := "Submit your application here: https://example.com/apply please"
	span := spanFor(t, text, "https://example.com/apply")

	window := ContextWindow(text, span)
	if strings.Contains(window, "https://example.com/apply") {
		t.Errorf("Expected link replaced, got %q", window)
	}
	if !strings.Contains(window, "[LINK]") {
		t.Errorf("Expected [LINK] placeholder, got %q", window)
	}
}

func TestContextWindow_ShortLineFallsBackToWindow(t *testing.T) {
	text := "We are announcing our annual engineering open house this month. Everyone is welcome to join us.\nhttps://example.com/x\nBring a friend."
	span := spanFor(t, text, "https://example.com/x")

	window := ContextWindow(text, span)
	// The line is just the URL, well under the minimum, so the window
	// reaches back into the preceding sentence.
	if !strings.Contains(window, "open house") {
		t.Errorf("Expected fallback window to include preceding text, got %q", window)
	}
}

func TestContextWindow_StripsMentions(t *testing.T) {
	text := "<@U12345ABC> check this speaker bio please: https://example.com/team/jane"
	span := spanFor(t, text, "https://example.com/team/jane")

	window := ContextWindow(text, span)
	if strings.Contains(window, "<@") {
		t.Errorf("Expected mentions stripped, got %q", window)
	}
}

func TestStripMentions(t *testing.T) {
	got := StripMentions("<@U0ABC123> please review this copy")
	if got != "please review this copy" {
		t.Errorf("Expected mention and trailing space removed, got %q", got)
	}

	got = StripMentions("no mentions here")
	if got != "no mentions here" {
		t.Errorf("Expected text unchanged, got %q", got)
	}
}
