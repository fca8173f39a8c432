package verify

import (
	"regexp"
	"strings"
)

// DateTimeMention holds the raw date and time substrings found in a claim's
// context window. Either field may be empty; an empty field never
// participates in mismatch detection.
type DateTimeMention struct {
	DateMentioned string
	TimeMentioned string
}

// Empty reports whether no date or time was mentioned at all
func (m DateTimeMention) Empty() bool {
	return m.DateMentioned == "" && m.TimeMentioned == ""
}

var datePatterns = []*regexp.Regexp{
	// "jan 18", "january 18th", "january 18, 2026"
	regexp.MustCompile(`(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+\d{1,2}(?:st|nd|rd|th)?(?:[,\s]+\d{4})?`),
	// "1/18", "01-18-2026"
	regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}(?:[/\-]\d{2,4})?`),
}

var timePatterns = []*regexp.Regexp{
	// Range: "5-7 pm", "5–7 PM"
	regexp.MustCompile(`\d{1,2}(?::\d{2})?\s*[-–]\s*\d{1,2}(?::\d{2})?\s*(?:am|pm)`),
	// Single time, meridiem required: "6 pm", "6:00 pm est"
	regexp.MustCompile(`\d{1,2}(?::\d{2})?\s*(?:am|pm)(?:\s*(?:est|pst|cst|mst|et|pt))?`),
}

// ExtractDateTime scans copy text for the first date mention and the first
// time mention. Bare hours without a meridiem marker are ignored: "at 6" is
// not a time, "6 PM" is.
func ExtractDateTime(text string) DateTimeMention {
	lower := strings.ToLower(text)

	var mention DateTimeMention
	for _, pattern := range datePatterns {
		if s := pattern.FindString(lower); s != "" {
			mention.DateMentioned = s
			break
		}
	}
	for _, pattern := range timePatterns {
		if s := pattern.FindString(lower); s != "" {
			mention.TimeMentioned = s
			break
		}
	}
	return mention
}

var (
	// First day-of-month number anywhere in a date string
	dayNumberPattern = regexp.MustCompile(`\d{1,2}`)
	// Starting hour of a time string or range
	leadingHourPattern = regexp.MustCompile(`^\d{1,2}`)
)

// dayNumber returns the leading numeric token of a date string, "" if none
func dayNumber(date string) string {
	return dayNumberPattern.FindString(strings.ToLower(date))
}

// startHour returns the leading hour of a time string, "" if none
func startHour(t string) string {
	return leadingHourPattern.FindString(strings.ToLower(t))
}
