package browse

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/util"
	"github.com/claimlens/claimlens/internal/verify"
)

// heuristicTextChars caps how much page text the heuristics scan
const heuristicTextChars = 5000

// applicationIndicators are words whose presence on a page suggests an
// application or signup form.
var applicationIndicators = []string{"apply", "application", "submit", "form", "career", "job", "position", "hire"}

// contextWordPattern picks keywords from copy context for topic matching
var contextWordPattern = regexp.MustCompile(`\b[a-z]{4,}\b`)

// contextStopWords are context keywords too common to signal topic match
var contextStopWords = map[string]bool{
	"http": true, "https": true, "link": true, "click": true, "here": true, "this": true, "that": true,
}

// DirectRenderer verifies links by fetching pages over plain HTTP and
// scoring them with keyword heuristics. It is the fallback when no browser
// session is configured.
type DirectRenderer struct {
	fetcher *Fetcher
	robots  *util.RobotsChecker
	log     *zap.Logger
}

// NewDirectRenderer creates a direct-mode renderer
func NewDirectRenderer(fetcher *Fetcher, robots *util.RobotsChecker, log *zap.Logger) *DirectRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirectRenderer{
		fetcher: fetcher,
		robots:  robots,
		log:     log,
	}
}

// OpenSession returns a session backed by the shared fetcher. Direct-mode
// sessions hold no external resources, so opening never fails.
func (r *DirectRenderer) OpenSession(ctx context.Context) (verify.Session, error) {
	s := &directSession{
		id:       uuid.NewString(),
		renderer: r,
	}
	r.log.Debug("Opened direct session", zap.String("session_id", s.id))
	return s, nil
}

type directSession struct {
	id       string
	renderer *DirectRenderer
	page     *Page
}

func (s *directSession) ID() string {
	return s.id
}

// Navigate fetches and parses the page, honoring robots.txt when a checker
// is configured.
func (s *directSession) Navigate(ctx context.Context, rawURL string) error {
	s.page = nil

	if s.renderer.robots != nil {
		allowed, err := s.renderer.robots.CanFetch(ctx, rawURL)
		if err != nil {
			s.renderer.log.Debug("Robots check failed, proceeding",
				zap.String("url", rawURL), zap.Error(err))
		} else if !allowed {
			return fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
	}

	html, err := s.renderer.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return err
	}

	page, err := ParsePage(html)
	if err != nil {
		return err
	}

	s.page = page
	return nil
}

// Extract scores the current page against the requested schema using
// keyword heuristics. No model call is made in direct mode.
func (s *directSession) Extract(ctx context.Context, req verify.ExtractRequest) (*model.PageAnalysis, error) {
	if s.page == nil {
		return nil, fmt.Errorf("no page loaded")
	}

	titleLower := strings.ToLower(s.page.Title)
	textLower := strings.ToLower(clipText(s.page.Text, heuristicTextChars))

	analysis := &model.PageAnalysis{
		PageTitle:  s.page.Title,
		Confidence: 0.5,
		Reason:     "Could not definitively verify alignment",
	}

	switch req.Schema {
	case model.SchemaApplication:
		matches := 0
		for _, w := range applicationIndicators {
			if strings.Contains(titleLower, w) || strings.Contains(textLower, w) {
				matches++
			}
		}
		switch {
		case matches >= 3:
			analysis.IsApplicationPage = true
			analysis.Confidence = 0.7
			analysis.Reason = "Page appears to be an application form"
		case matches >= 1:
			analysis.Confidence = 0.5
			analysis.Reason = "Page may contain application content"
		}

	case model.SchemaSpeaker:
		if req.ExpectedName != "" {
			nameLower := strings.ToLower(req.ExpectedName)
			if strings.Contains(titleLower, nameLower) || strings.Contains(clipText(textLower, 2000), nameLower) {
				analysis.IsAboutPerson = true
				analysis.PersonNameFound = req.ExpectedName
				analysis.Confidence = 0.75
				analysis.Reason = fmt.Sprintf("Page contains info about %s", req.ExpectedName)
			}
		}

	case model.SchemaEvent:
		if s.topicMatches(req.CopyContext, titleLower, textLower, analysis) {
			analysis.IsEventPage = true
		}
		// Pull whatever date/time the page text shows so the
		// consistency check can run even without a browser.
		pageMention := verify.ExtractDateTime(textLower)
		analysis.EventDate = pageMention.DateMentioned
		analysis.EventTime = pageMention.TimeMentioned

	default:
		s.topicMatches(req.CopyContext, titleLower, textLower, analysis)
	}

	return analysis, nil
}

// topicMatches counts copy-context keywords appearing on the page and fills
// the generic fields when enough of them match.
func (s *directSession) topicMatches(copyContext, titleLower, textLower string, analysis *model.PageAnalysis) bool {
	words := contextWordPattern.FindAllString(strings.ToLower(copyContext), -1)
	seen := make(map[string]bool)
	matches := 0
	for _, w := range words {
		if contextStopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		if strings.Contains(titleLower, w) || strings.Contains(textLower, w) {
			matches++
		}
	}

	if matches >= 3 {
		analysis.IsRelevant = true
		analysis.TopicMatch = true
		analysis.Confidence = 0.65
		analysis.Reason = fmt.Sprintf("Page content matches context (%d keywords)", matches)
		return true
	}
	return false
}

func (s *directSession) Close() error {
	s.page = nil
	return nil
}
