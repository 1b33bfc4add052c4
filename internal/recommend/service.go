package recommend

import (
	"context"
	"time"

	"github.com/bilmem-net/ai-hediye/internal/catalog"
	"github.com/bilmem-net/ai-hediye/internal/domain/entity"
	"github.com/bilmem-net/ai-hediye/internal/logging"
	"github.com/bilmem-net/ai-hediye/internal/metrics"
	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

// Enricher attaches images and prices to raw candidates.
type Enricher interface {
	Enrich(ctx context.Context, candidates []entity.Candidate) []entity.GiftRecommendation
}

type Service struct {
	generator Generator
	enricher  Enricher
	catalog   *catalog.Service
}

// NewService wires the AI path and the catalog fallback. generator may be
// nil when no API key is configured.
func NewService(generator Generator, enricher Enricher, products *catalog.Service) *Service {
	return &Service{generator: generator, enricher: enricher, catalog: products}
}

// Recommend generates candidates for state and enriches them. Errors are
// returned unclassified so callers can log the provider detail.
func (s *Service) Recommend(ctx context.Context, state wizard.State) ([]entity.GiftRecommendation, error) {
	started := time.Now()
	if s.generator == nil {
		metrics.ObserveRecommendation("not_configured", started)
		return nil, ErrNotConfigured
	}
	candidates, err := s.generator.Generate(ctx, state)
	if err != nil {
		metrics.ObserveRecommendation(string(Classify(err).Category), started)
		return nil, err
	}
	recs := s.enricher.Enrich(ctx, candidates)
	outcome := "ok"
	if len(recs) == 0 {
		outcome = "empty"
	}
	metrics.ObserveRecommendation(outcome, started)
	logging.Ctx(ctx).Info().Int("count", len(recs)).Dur("took", time.Since(started)).Msg("recommendations generated")
	return recs, nil
}

// Fallback scores the curated catalog for state.
func (s *Service) Fallback(state wizard.State) []entity.GiftRecommendation {
	recs := Score(state, s.catalog.List())
	metrics.RecommendationsTotal.WithLabelValues("catalog", "ok").Inc()
	return recs
}
