package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/claimlens/claimlens/internal/model"
)

// RenderText writes the human-readable report to w.
func RenderText(w io.Writer, report *ReviewReport) {
	fmt.Fprintf(w, "Link Verification Results\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n\n")

	if len(report.Results) == 0 {
		fmt.Fprintf(w, "No links were found in the message to verify.\n")
	} else {
		fmt.Fprintf(w, "%s\n\n", summaryLine(report.Results))
		for i, result := range report.Results {
			renderResult(w, i+1, result)
		}
	}

	if report.Copy != nil {
		renderCopyReview(w, report.Copy)
	}
}

// summaryLine builds the one-line tally, listing only non-zero buckets.
func summaryLine(results []model.VerificationResult) string {
	var aligned, questionable, misaligned, errors int
	for _, r := range results {
		switch r.Status {
		case model.StatusAligned:
			aligned++
		case model.StatusQuestionable:
			questionable++
		case model.StatusMisaligned:
			misaligned++
		case model.StatusError:
			errors++
		}
	}

	var parts []string
	if aligned > 0 {
		parts = append(parts, fmt.Sprintf("%d aligned", aligned))
	}
	if questionable > 0 {
		parts = append(parts, fmt.Sprintf("%d need review", questionable))
	}
	if misaligned > 0 {
		parts = append(parts, fmt.Sprintf("%d misaligned", misaligned))
	}
	if errors > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", errors))
	}

	return fmt.Sprintf("%d link(s) checked: %s", len(results), strings.Join(parts, ", "))
}

func renderResult(w io.Writer, index int, result model.VerificationResult) {
	displayURL := result.URL
	if len(displayURL) > 60 {
		displayURL = displayURL[:57] + "..."
	}

	fmt.Fprintf(w, "Link %d: %s\n", index, displayURL)
	fmt.Fprintf(w, "  %s %s – %s", result.Status.Marker(), result.Status.Label(), result.ShortReason)
	if result.Status != model.StatusError {
		fmt.Fprintf(w, " (%d%% confidence)", int(result.Confidence*100))
	}
	fmt.Fprintf(w, "\n")

	if result.PageTitle != "" && result.Status != model.StatusError {
		fmt.Fprintf(w, "  Page: %q\n", result.PageTitle)
	}
	if result.ErrorMessage != "" {
		fmt.Fprintf(w, "  Error: %s\n", result.ErrorMessage)
	}
	fmt.Fprintf(w, "\n")
}

func renderCopyReview(w io.Writer, review *model.CopyReview) {
	fmt.Fprintf(w, "Copy Review\n")
	fmt.Fprintf(w, "───────────────────────────────────────────────────────────\n\n")
	fmt.Fprintf(w, "Overall score: %d/100\n", review.OverallScore)
	if review.Summary != "" {
		fmt.Fprintf(w, "%s\n", review.Summary)
	}

	if len(review.SpellingIssues) > 0 {
		fmt.Fprintf(w, "\nSpelling issues (%d):\n", len(review.SpellingIssues))
		for _, issue := range review.SpellingIssues {
			fmt.Fprintf(w, "  • %q → %q\n", issue.Original, issue.Suggestion)
			if issue.Context != "" {
				fmt.Fprintf(w, "    Context: %q\n", clipLine(issue.Context, 60))
			}
		}
	}

	if len(review.WordingSuggestions) > 0 {
		fmt.Fprintf(w, "\nWording suggestions (%d):\n", len(review.WordingSuggestions))
		for _, s := range review.WordingSuggestions {
			fmt.Fprintf(w, "  • [%s] %q → %q\n", severityOr(s.Severity, "minor"), s.OriginalPhrase, s.SuggestedPhrase)
			if s.Reason != "" {
				fmt.Fprintf(w, "    Reason: %s\n", s.Reason)
			}
		}
	}

	if len(review.ConsistencyIssues) > 0 {
		fmt.Fprintf(w, "\nConsistency issues (%d):\n", len(review.ConsistencyIssues))
		for _, issue := range review.ConsistencyIssues {
			fmt.Fprintf(w, "  • [%s] %s: %s\n",
				severityOr(issue.Severity, "moderate"), issueTypeLabel(issue.IssueType), issue.Description)
			for _, item := range issue.ConflictingItems {
				fmt.Fprintf(w, "    - %q\n", item)
			}
		}
	}

	if !review.HasIssues() {
		fmt.Fprintf(w, "\nNo spelling, wording, or consistency issues found.\n")
	}
}

func issueTypeLabel(issueType string) string {
	switch issueType {
	case "date_mismatch":
		return "Date mismatch"
	case "day_mismatch":
		return "Day/date mismatch"
	case "conflicting_info":
		return "Conflicting info"
	default:
		return "Issue"
	}
}

func severityOr(severity, fallback string) string {
	if severity == "" {
		return fallback
	}
	return severity
}

func clipLine(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// RenderJSON writes the full report as indented JSON to path.
func RenderJSON(report *ReviewReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
