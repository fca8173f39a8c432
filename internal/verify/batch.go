package verify

import (
	"context"

	"go.uber.org/zap"

	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/worker"
)

// Verifier checks each extracted claim against its destination page. One
// rendering session is opened per batch and reused for every link; claims
// are verified strictly in extraction order and that order is preserved in
// the result list.
type Verifier struct {
	renderer Renderer
	limiter  *worker.Limiter
	log      *zap.Logger
}

// NewVerifier creates a verifier. limiter may be nil to disable per-domain
// navigation rate limiting.
func NewVerifier(renderer Renderer, limiter *worker.Limiter, log *zap.Logger) *Verifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Verifier{
		renderer: renderer,
		limiter:  limiter,
		log:      log,
	}
}

// VerifyAll verifies every claim against a single reused session. The
// returned slice always has exactly one result per input claim, in input
// order. Per-link failures are downgraded in place; only a failure to open
// the session at all escalates to ERROR, and even then every claim still
// gets a result. The session is closed on every exit path.
func (v *Verifier) VerifyAll(ctx context.Context, claims []model.LinkClaim) []model.VerificationResult {
	results := make([]model.VerificationResult, 0, len(claims))
	if len(claims) == 0 {
		return results
	}

	session, err := v.renderer.OpenSession(ctx)
	if err != nil {
		v.log.Warn("rendering session unavailable", zap.Error(err))
		for _, claim := range claims {
			results = append(results, sessionErrorResult(claim, err))
		}
		return results
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			v.log.Debug("close session", zap.Error(cerr))
		}
	}()

	v.log.Info("verification session opened",
		zap.String("session", session.ID()),
		zap.Int("claims", len(claims)))

	for i, claim := range claims {
		v.log.Info("verifying link",
			zap.Int("index", i+1),
			zap.Int("total", len(claims)),
			zap.String("url", claim.URL),
			zap.String("claim_type", string(claim.ClaimType)))

		result := v.verifyOne(ctx, session, claim)
		results = append(results, result)

		v.log.Debug("link verdict",
			zap.String("url", result.URL),
			zap.String("status", string(result.Status)),
			zap.Float64("confidence", result.Confidence))
	}

	return results
}

// verifyOne runs one claim through schema selection, navigation, extraction
// and the decision policy. Any failure along the way is a soft per-link
// downgrade, never an abort.
func (v *Verifier) verifyOne(ctx context.Context, session Session, claim model.LinkClaim) model.VerificationResult {
	schema, mention := SelectSchema(claim)

	if v.limiter != nil {
		if err := v.limiter.Wait(ctx, claim.URL); err != nil {
			return fallbackResult(claim, err)
		}
	}

	if err := session.Navigate(ctx, claim.URL); err != nil {
		return fallbackResult(claim, err)
	}

	analysis, err := session.Extract(ctx, buildRequest(claim, schema))
	if err != nil {
		return fallbackResult(claim, err)
	}
	analysis.Schema = schema

	return Decide(claim, mention, analysis)
}
