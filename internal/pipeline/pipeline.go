// Package pipeline wires extraction, link verification, and copy review
// into one message-level operation and renders its report.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/claimlens/claimlens/internal/browse"
	"github.com/claimlens/claimlens/internal/cache"
	"github.com/claimlens/claimlens/internal/extract"
	"github.com/claimlens/claimlens/internal/llm"
	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/util"
	"github.com/claimlens/claimlens/internal/verify"
	"github.com/claimlens/claimlens/internal/worker"
)

// ReviewReport is the complete outcome of reviewing one message: the
// claims found, one verdict per claim, and the optional prose review.
type ReviewReport struct {
	Message    string                     `json:"message"`
	Claims     []model.LinkClaim          `json:"claims"`
	Results    []model.VerificationResult `json:"results"`
	Copy       *model.CopyReview          `json:"copy_review,omitempty"`
	ReviewedAt time.Time                  `json:"reviewed_at"`
}

// Pipeline runs the full review for a message
type Pipeline struct {
	verifier *verify.Verifier
	reviewer *llm.Reviewer
	log      *zap.Logger
}

// New creates a pipeline from its collaborators. reviewer may be nil or
// disabled; link verification runs regardless.
func New(verifier *verify.Verifier, reviewer *llm.Reviewer, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		verifier: verifier,
		reviewer: reviewer,
		log:      log,
	}
}

// FromConfig assembles the pipeline described by the configuration:
// browser-backed rendering with model extraction when the browser is
// enabled, direct HTTP fetching with heuristics otherwise.
func FromConfig(cfg *model.Config, log *zap.Logger) (*Pipeline, error) {
	if log == nil {
		log = zap.NewNop()
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, err
	}

	var renderer verify.Renderer
	if cfg.Browser.Enabled {
		extractor := browse.NewExtractor(provider, cfg.LLM.Model, cfg.Browser.MaxPageChars)
		renderer = browse.NewRodRenderer(cfg.Browser, extractor, log)
		log.Debug("using browser renderer")
	} else {
		var pageCache cache.Cache
		if cfg.Cache.Enabled {
			if cfg.Cache.Dir != "" {
				pageCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
			} else {
				pageCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
			}
		}
		fetcher := browse.NewFetcher(cfg.HTTP, pageCache)
		robots := util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
		renderer = browse.NewDirectRenderer(fetcher, robots, log)
		log.Debug("using direct HTTP renderer")
	}

	var limiter *worker.Limiter
	if cfg.Rate.RequestsPerSecond > 0 {
		limiter = worker.NewLimiter(cfg.Rate.RequestsPerSecond, cfg.Rate.Burst)
	}

	var reviewer *llm.Reviewer
	if cfg.Review.Enabled {
		reviewModel := cfg.Review.Model
		if reviewModel == "" {
			reviewModel = cfg.LLM.Model
		}
		reviewer = llm.NewReviewer(provider, reviewModel)
	}

	return New(verify.NewVerifier(renderer, limiter, log), reviewer, log), nil
}

// ReviewMessage extracts claims from the message, verifies every link, and
// reviews the prose. Verification and review run concurrently. A review
// failure is logged and dropped; the report is still produced.
func (p *Pipeline) ReviewMessage(ctx context.Context, message string) (*ReviewReport, error) {
	cleaned := extract.StripMentions(message)
	claims := extract.Claims(message)

	p.log.Info("message parsed",
		zap.Int("claims", len(claims)),
		zap.String("summary", extract.Summarize(claims)))

	report := &ReviewReport{
		Message:    cleaned,
		Claims:     claims,
		Results:    []model.VerificationResult{},
		ReviewedAt: time.Now(),
	}

	g, gctx := errgroup.WithContext(ctx)

	if len(claims) > 0 {
		g.Go(func() error {
			report.Results = p.verifier.VerifyAll(gctx, claims)
			return nil
		})
	}

	if p.reviewer.IsEnabled() {
		g.Go(func() error {
			review, err := p.reviewer.Review(gctx, cleaned)
			if err != nil {
				p.log.Warn("copy review failed", zap.Error(err))
				return nil
			}
			report.Copy = review
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}
