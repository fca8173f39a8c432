package extract

import (
	"regexp"
	"strings"
)

const (
	// Lines shorter than this are too sparse to classify on their own
	minLineContext = 30

	// Fallback window around the link when the line is too short
	contextBefore = 150
	contextAfter  = 50
)

// Placeholder substituted for the link token inside its own context window
const linkPlaceholder = "[LINK]"

var mentionPattern = regexp.MustCompile(`<@[A-Z0-9]+>`)

// ContextWindow derives the normalized text surrounding a link span. It
// prefers the full line containing the link; when that line is under
// minLineContext characters it falls back to a character window biased toward
// the text before the link, where the claim usually lives. The link token
// itself is replaced with a placeholder and user mentions are stripped.
// An empty result is valid.
func ContextWindow(text string, span URLSpan) string {
	lineStart := strings.LastIndexByte(text[:span.Start], '\n') + 1
	lineEnd := strings.IndexByte(text[span.End:], '\n')
	if lineEnd == -1 {
		lineEnd = len(text)
	} else {
		lineEnd += span.End
	}

	window := strings.TrimSpace(text[lineStart:lineEnd])
	if len(window) < minLineContext {
		start := span.Start - contextBefore
		if start < 0 {
			start = 0
		}
		end := span.End + contextAfter
		if end > len(text) {
			end = len(text)
		}
		window = text[start:end]
	}

	window = strings.Replace(window, text[span.Start:span.End], linkPlaceholder, 1)
	window = mentionPattern.ReplaceAllString(window, "")

	return strings.TrimSpace(window)
}

// StripMentions removes user-mention tokens and the whitespace after them.
// Used on whole messages before extraction so a leading bot mention does not
// end up inside the first context window.
var mentionWithSpacePattern = regexp.MustCompile(`<@[A-Z0-9]+>\s*`)

func StripMentions(text string) string {
	return strings.TrimSpace(mentionWithSpacePattern.ReplaceAllString(text, ""))
}
