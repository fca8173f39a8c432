package verify

import (
	"fmt"
	"strings"

	"github.com/claimlens/claimlens/internal/model"
)

// URL substrings marking known event platforms. Generic claims against
// these hosts are analyzed with the event schema.
var eventURLMarkers = []string{"luma", "eventbrite", "meetup", "lu.ma", "kickoff", "open-house", "event"}

// SelectSchema picks the page-analysis schema for a claim. Application and
// speaker claims use their dedicated schemas. A generic claim is upgraded to
// the event schema when the URL matches an event platform marker OR the copy
// mentions a date or time; either signal alone is enough. The returned
// mention is non-empty only for generic claims and feeds the event policy.
func SelectSchema(claim model.LinkClaim) (model.Schema, DateTimeMention) {
	switch claim.ClaimType {
	case model.ClaimTypeApplication:
		return model.SchemaApplication, DateTimeMention{}
	case model.ClaimTypeSpeakerProfile:
		return model.SchemaSpeaker, DateTimeMention{}
	}

	mention := ExtractDateTime(clip(claim.ClaimContext, maxContextChars))

	urlLower := strings.ToLower(claim.URL)
	for _, marker := range eventURLMarkers {
		if strings.Contains(urlLower, marker) {
			return model.SchemaEvent, mention
		}
	}
	if !mention.Empty() {
		return model.SchemaEvent, mention
	}
	return model.SchemaGeneric, mention
}

// Decide turns a page analysis into a verification result for the claim.
// It is a pure function of its inputs: same claim, mention, and analysis
// always yield the same verdict.
func Decide(claim model.LinkClaim, mention DateTimeMention, analysis *model.PageAnalysis) model.VerificationResult {
	analysis.ClampConfidence()

	switch analysis.Schema {
	case model.SchemaApplication:
		return decideApplication(claim, analysis)
	case model.SchemaSpeaker:
		return decideSpeaker(claim, analysis)
	case model.SchemaEvent:
		return decideEvent(claim, mention, analysis)
	default:
		return decideGeneric(claim, analysis)
	}
}

func decideApplication(claim model.LinkClaim, a *model.PageAnalysis) model.VerificationResult {
	var status model.AlignmentStatus
	switch {
	case a.IsApplicationPage:
		status = model.StatusAligned
	case a.Confidence > 0.4:
		status = model.StatusQuestionable
	default:
		status = model.StatusMisaligned
	}

	return model.VerificationResult{
		URL:         claim.URL,
		ClaimType:   claim.ClaimType,
		Status:      status,
		Confidence:  a.Confidence,
		ShortReason: reasonOr(a.Reason, "Analysis complete"),
		PageTitle:   a.PageTitle,
		Details: map[string]interface{}{
			"page_purpose":     a.PagePurpose,
			"has_form_fields":  a.HasFormFields,
			"role_or_position": a.RoleOrPosition,
		},
	}
}

func decideSpeaker(claim model.LinkClaim, a *model.PageAnalysis) model.VerificationResult {
	var status model.AlignmentStatus
	switch {
	case a.IsAboutPerson:
		status = model.StatusAligned
	case a.Confidence > 0.4:
		status = model.StatusQuestionable
	default:
		status = model.StatusMisaligned
	}

	return model.VerificationResult{
		URL:         claim.URL,
		ClaimType:   claim.ClaimType,
		Status:      status,
		Confidence:  a.Confidence,
		ShortReason: reasonOr(a.Reason, "Analysis complete"),
		PageTitle:   a.PageTitle,
		Details: map[string]interface{}{
			"person_name_found": a.PersonNameFound,
			"profile_type":      a.ProfileType,
			"person_title":      a.PersonTitle,
		},
	}
}

func decideGeneric(claim model.LinkClaim, a *model.PageAnalysis) model.VerificationResult {
	confidence := a.Confidence

	var status model.AlignmentStatus
	switch {
	case a.IsRelevant || a.TopicMatch:
		// A clear title/topic match outweighs thin page content
		status = model.StatusAligned
		if confidence < 0.7 {
			confidence = 0.75
		}
	case confidence > 0.4:
		status = model.StatusQuestionable
	default:
		status = model.StatusMisaligned
	}

	return model.VerificationResult{
		URL:         claim.URL,
		ClaimType:   claim.ClaimType,
		Status:      status,
		Confidence:  confidence,
		ShortReason: reasonOr(a.Reason, "Analysis complete"),
		PageTitle:   a.PageTitle,
		Details: map[string]interface{}{
			"page_type":   a.PageType,
			"topic_match": a.TopicMatch,
		},
	}
}

// decideEvent applies the date/time consistency check on top of topic
// matching. A mismatch is flagged only when both the copy and the page carry
// a value AND their leading numbers differ; missing data on either side never
// counts against the link. Any mismatch overrides all other signals.
func decideEvent(claim model.LinkClaim, mention DateTimeMention, a *model.PageAnalysis) model.VerificationResult {
	var mismatches []string

	if mention.DateMentioned != "" && a.EventDate != "" {
		copyDay := dayNumber(mention.DateMentioned)
		pageDay := dayNumber(a.EventDate)
		if copyDay != "" && pageDay != "" && copyDay != pageDay {
			mismatches = append(mismatches,
				fmt.Sprintf("Date: copy mentions day %s, page shows day %s", copyDay, pageDay))
		}
	}

	if mention.TimeMentioned != "" && a.EventTime != "" {
		copyStart := startHour(mention.TimeMentioned)
		pageStart := startHour(a.EventTime)
		if copyStart != "" && pageStart != "" && copyStart != pageStart {
			mismatches = append(mismatches,
				fmt.Sprintf("Time: copy mentions %s, page shows %s", mention.TimeMentioned, a.EventTime))
		}
	}

	confidence := a.Confidence
	var status model.AlignmentStatus
	var reason string

	switch {
	case len(mismatches) > 0:
		status = model.StatusMisaligned
		reason = strings.Join(mismatches, " | ")
		confidence = 0.9
	case a.IsEventPage && a.TopicMatch:
		status = model.StatusAligned
		reason = reasonOr(a.Reason, "Event page matches")
		if a.EventDate != "" {
			reason += " (Event: " + a.EventDate
			if a.EventTime != "" {
				reason += " at " + a.EventTime
			}
			reason += ")"
		}
	case a.TopicMatch:
		status = model.StatusAligned
		reason = reasonOr(a.Reason, "Topic matches")
	case confidence > 0.4:
		status = model.StatusQuestionable
		reason = reasonOr(a.Reason, "Partial match")
	default:
		status = model.StatusMisaligned
		reason = reasonOr(a.Reason, "Does not match")
	}

	return model.VerificationResult{
		URL:         claim.URL,
		ClaimType:   claim.ClaimType,
		Status:      status,
		Confidence:  confidence,
		ShortReason: reason,
		PageTitle:   a.PageTitle,
		Details: map[string]interface{}{
			"is_event_page":  a.IsEventPage,
			"event_date":     a.EventDate,
			"event_time":     a.EventTime,
			"event_location": a.EventLocation,
			"topic_match":    a.TopicMatch,
			"copy_date":      mention.DateMentioned,
			"copy_time":      mention.TimeMentioned,
			"date_mismatch":  len(mismatches) > 0,
		},
	}
}

// fallbackResult downgrades a single failed extraction to QUESTIONABLE
// without aborting the batch.
func fallbackResult(claim model.LinkClaim, err error) model.VerificationResult {
	return model.VerificationResult{
		URL:          claim.URL,
		ClaimType:    claim.ClaimType,
		Status:       model.StatusQuestionable,
		Confidence:   0.3,
		ShortReason:  "Extraction issue: " + clip(err.Error(), 50),
		ErrorMessage: err.Error(),
	}
}

// sessionErrorResult marks a claim that could not be checked at all because
// the rendering collaborator was unavailable.
func sessionErrorResult(claim model.LinkClaim, err error) model.VerificationResult {
	return model.VerificationResult{
		URL:          claim.URL,
		ClaimType:    claim.ClaimType,
		Status:       model.StatusError,
		Confidence:   0.0,
		ShortReason:  "Rendering session unavailable: " + clip(err.Error(), 80),
		ErrorMessage: err.Error(),
	}
}

func reasonOr(reason, fallback string) string {
	if reason == "" {
		return fallback
	}
	return reason
}
