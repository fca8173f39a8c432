package extract

import (
	"testing"

	"github.com/claimlens/claimlens/internal/model"
)

func TestClassify_ProfileURLMarker(t *testing.T) {
	claimType, name := Classify("https://linkedin.com/in/janesmith", "- Dr. Jane Smith (Keynote): [LINK]")
	if claimType != model.ClaimTypeSpeakerProfile {
		t.Errorf("Expected speaker_profile, got %s", claimType)
	}
	if name != "Jane Smith" {
		t.Errorf("Expected Jane Smith, got %q", name)
	}
}

func TestClassify_ProfileURLBeatsApplicationContext(t *testing.T) {
	// URL markers outrank context phrases
	claimType, _ := Classify("https://twitter.com/someone", "Apply now and follow [LINK]")
	if claimType != model.ClaimTypeSpeakerProfile {
		t.Errorf("Expected speaker_profile from URL marker, got %s", claimType)
	}
}

func TestClassify_ApplicationURLMarker(t *testing.T) {
	for _, url := range []string{
		"https://example.com/apply",
		"https://example.com/jobs/application",
		"https://example.com/careers/backend",
	} {
		claimType, name := Classify(url, "check this out [LINK]")
		if claimType != model.ClaimTypeApplication {
			t.Errorf("Expected application for %s, got %s", url, claimType)
		}
		if name != "" {
			t.Errorf("Expected no name for application claim, got %q", name)
		}
	}
}

func TestClassify_SpeakerContextBeforeApplicationPhrases(t *testing.T) {
	// "speaker" in the context wins even though "apply now" is also present
	claimType, _ := Classify("https://example.com/people/jane",
		"Meet our speaker Jane Doe and apply now [LINK]")
	if claimType != model.ClaimTypeSpeakerProfile {
		t.Errorf("Expected speaker_profile, got %s", claimType)
	}
}

func TestClassify_ListItemName(t *testing.T) {
	claimType, name := Classify("https://example.com/bio/marcus", "- Marcus Webb, CTO at Acme [LINK]")
	if claimType != model.ClaimTypeSpeakerProfile {
		t.Errorf("Expected speaker_profile, got %s", claimType)
	}
	if name != "Marcus Webb" {
		t.Errorf("Expected Marcus Webb, got %q", name)
	}
}

func TestClassify_ApplicationPhrases(t *testing.T) {
	cases := []string{
		"Apply now for the fellowship [LINK]",
		"Applications are open until Friday [LINK]",
		"We're hiring a platform engineer [LINK]",
		"Submit your application by Monday [LINK]",
	}
	for _, context := range cases {
		claimType, _ := Classify("https://example.com/x", context)
		if claimType != model.ClaimTypeApplication {
			t.Errorf("Expected application for %q, got %s", context, claimType)
		}
	}
}

func TestClassify_ProfileWordNeedsName(t *testing.T) {
	// "bio" alone without an extractable name stays generic
	claimType, _ := Classify("https://example.com/x", "read the bio at [LINK]")
	if claimType != model.ClaimTypeGeneric {
		t.Errorf("Expected generic, got %s", claimType)
	}

	claimType, name := Classify("https://example.com/x", "read the bio of Jane Doe: [LINK]")
	if claimType != model.ClaimTypeSpeakerProfile {
		t.Errorf("Expected speaker_profile, got %s", claimType)
	}
	if name != "Jane Doe" {
		t.Errorf("Expected Jane Doe, got %q", name)
	}
}

func TestClassify_DefaultGeneric(t *testing.T) {
	claimType, name := Classify("https://example.com/blog/post", "Great write-up on caching [LINK]")
	if claimType != model.ClaimTypeGeneric {
		t.Errorf("Expected generic, got %s", claimType)
	}
	if name != "" {
		t.Errorf("Expected no name, got %q", name)
	}
}
