package extract

import (
	"regexp"
	"strings"
)

// UI labels that satisfy the capitalized-name patterns but are never people
var ctaFalsePositives = map[string]bool{
	"Apply Now":  true,
	"Learn More": true,
	"Read More":  true,
	"Click Here": true,
	"Sign Up":    true,
}

// Name patterns, tried in order against the original-case context.
// Order matters: label-style names ("Jane Doe:") are the most reliable
// signal in speaker lists, the [LINK]-adjacent pattern the least.
var namePatterns = []*regexp.Regexp{
	// Name followed by a colon or dash (list/label style)
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\s*[:\-–—]`),
	// Name after an introducing word
	regexp.MustCompile(`(?:by|from|with|featuring)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
	// Name in straight or curly quotes
	regexp.MustCompile(`["'“”‘’]([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)["'“”‘’]`),
	// Honorific followed by a name
	regexp.MustCompile(`(?:Dr\.|Mr\.|Ms\.|Mrs\.)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	// Two-word name immediately preceding the link placeholder
	regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+)(?:\s*[:\-–—]?\s*\[LINK\])`),
}

// PersonName extracts a person's name from a context window using simple
// capitalization heuristics. Each pattern's candidate is checked against the
// call-to-action filter; the first surviving candidate wins. Returns ""
// when nothing plausible is found.
func PersonName(context string) string {
	for _, pattern := range namePatterns {
		m := pattern.FindStringSubmatch(context)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if ctaFalsePositives[name] {
			continue
		}
		return name
	}
	return ""
}
