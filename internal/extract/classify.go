package extract

import (
	"regexp"
	"strings"

	"github.com/claimlens/claimlens/internal/model"
)

// Context phrases implying a job or program application link
var applicationPhrases = []*regexp.Regexp{
	regexp.MustCompile(`\bapply\s+now\b`),
	regexp.MustCompile(`\bapply\s+here\b`),
	regexp.MustCompile(`\bapply\s+today\b`),
	regexp.MustCompile(`\bapplications?\s+(?:are\s+)?(?:open|due|close)`),
	regexp.MustCompile(`\bsubmit\s+(?:your\s+)?application\b`),
	regexp.MustCompile(`\bjoin\s+(?:our\s+)?team\b`),
	regexp.MustCompile(`\bwe'?re\s+hiring\b`),
	regexp.MustCompile(`\bcareers?\s+(?:page|opportunity|opening)\b`),
	regexp.MustCompile(`\bjob\s+(?:posting|opening|listing)\b`),
}

// Context phrases implying a speaker or presenter profile link
var speakerPhrases = []*regexp.Regexp{
	regexp.MustCompile(`\bspeakers?\b`),
	regexp.MustCompile(`\bpresenters?\b`),
	regexp.MustCompile(`\bpanelists?\b`),
	regexp.MustCompile(`\bfeatured\s+(?:guest|speaker)\b`),
	regexp.MustCompile(`\bmeet\s+(?:the\s+)?(?:speaker|team|presenter)\b`),
	regexp.MustCompile(`\babout\s+(?:the\s+)?(?:speaker|author|presenter)\b`),
}

// List item opening with a capitalized name: "- Jane Doe:" or "• Dr. Jane Doe,"
var listItemPattern = regexp.MustCompile(`^[\-•*]\s*(?:Dr\.\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)

// Words hinting the context describes a person
var profileWords = []string{"bio", "profile", "about me"}

// URL markers checked before any context heuristics
var (
	profileURLMarkers     = []string{"linkedin.com/in/", "twitter.com/"}
	applicationURLMarkers = []string{"/apply", "/application", "/careers"}
)

// Classify maps a (url, context) pair to the claim the copy makes about the
// link, plus the expected person's name for speaker profiles. The rules form
// an ordered cascade and the first match wins; the order is a contract.
// Speaker-context checks run before application phrases on purpose, so a
// speaker bio whose copy also says "apply now" is still a profile claim.
func Classify(url, context string) (model.ClaimType, string) {
	contextLower := strings.ToLower(context)
	urlLower := strings.ToLower(url)

	// 1. Profile markers in the URL are the most reliable signal
	for _, marker := range profileURLMarkers {
		if strings.Contains(urlLower, marker) {
			return model.ClaimTypeSpeakerProfile, PersonName(context)
		}
	}

	// 2. Application markers in the URL path
	for _, marker := range applicationURLMarkers {
		if strings.Contains(urlLower, marker) {
			return model.ClaimTypeApplication, ""
		}
	}

	// 3. Speaker-indicating phrases in the context
	for _, pattern := range speakerPhrases {
		if pattern.MatchString(contextLower) {
			return model.ClaimTypeSpeakerProfile, PersonName(context)
		}
	}

	// 4. List item opening with a person's name
	if m := listItemPattern.FindStringSubmatch(strings.TrimSpace(context)); m != nil {
		if !ctaFalsePositives[m[1]] {
			return model.ClaimTypeSpeakerProfile, m[1]
		}
	}

	// 5. Application-indicating phrases
	for _, pattern := range applicationPhrases {
		if pattern.MatchString(contextLower) {
			return model.ClaimTypeApplication, ""
		}
	}

	// 6. Profile words, but only when a name can actually be extracted
	for _, word := range profileWords {
		if strings.Contains(contextLower, word) {
			if name := PersonName(context); name != "" {
				return model.ClaimTypeSpeakerProfile, name
			}
			break
		}
	}

	return model.ClaimTypeGeneric, ""
}
