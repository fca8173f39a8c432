package extract

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"

	"github.com/claimlens/claimlens/internal/model"
)

// URLSpan is one link occurrence in message text. Start and End are byte
// offsets of the full matched token, which for platform-formatted links
// includes the angle brackets and label.
type URLSpan struct {
	URL   string
	Start int
	End   int
}

var (
	// Platform-formatted links: <url> or <url|label>
	formattedLinkPattern = regexp.MustCompile(`<(https?://[^|>]+)(?:\|[^>]*)?>`)

	// Bare URLs; balanced parentheses are allowed inside the path
	bareURLPattern = regexp.MustCompile(`(?i)https?://[^\s<>\[\]()]+(?:\([^\s<>\[\]()]*\)|[^\s<>\[\](),.])*`)
)

// URLs finds every link in the text as (url, start, end) spans. Formatted
// links are recorded first; a bare match whose span falls entirely inside an
// already-recorded formatted span is the same link seen twice and is dropped.
// The result is sorted ascending by start offset (stable, so formatted links
// win position ties) and spans never overlap.
func URLs(text string) []URLSpan {
	var spans []URLSpan

	for _, m := range formattedLinkPattern.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, URLSpan{URL: text[m[2]:m[3]], Start: m[0], End: m[1]})
	}

	formatted := make([][2]int, len(spans))
	for i, s := range spans {
		formatted[i] = [2]int{s.Start, s.End}
	}

	for _, m := range bareURLPattern.FindAllStringIndex(text, -1) {
		contained := false
		for _, f := range formatted {
			if f[0] <= m[0] && m[1] <= f[1] {
				contained = true
				break
			}
		}
		if !contained {
			spans = append(spans, URLSpan{URL: text[m[0]:m[1]], Start: m[0], End: m[1]})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// Claims extracts every link from a message and classifies the claim the
// surrounding copy makes about it. Links that do not parse to a scheme and
// host are filtered out silently; they are noise, not errors.
func Claims(text string) []model.LinkClaim {
	var claims []model.LinkClaim

	for _, span := range URLs(text) {
		parsed, err := url.Parse(span.URL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			continue
		}

		context := ContextWindow(text, span)
		claimType, name := Classify(span.URL, context)

		claims = append(claims, model.LinkClaim{
			URL:           span.URL,
			ClaimContext:  context,
			ClaimType:     claimType,
			ExtractedName: name,
		})
	}

	return claims
}

// Summarize renders the extracted claims for logging
func Summarize(claims []model.LinkClaim) string {
	if len(claims) == 0 {
		return "No links found in the message."
	}

	out := fmt.Sprintf("Found %d link(s):", len(claims))
	for i, claim := range claims {
		nameInfo := ""
		if claim.ExtractedName != "" {
			nameInfo = fmt.Sprintf(" (expecting: %s)", claim.ExtractedName)
		}
		out += fmt.Sprintf("\n  %d. [%s]%s: %s", i+1, claim.ClaimType, nameInfo, claim.URL)
	}
	return out
}
