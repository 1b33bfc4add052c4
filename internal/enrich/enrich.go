// Package enrich attaches a representative image and an average market
// price to AI gift candidates.
package enrich

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/bilmem-net/ai-hediye/internal/domain/entity"
	"github.com/bilmem-net/ai-hediye/internal/logging"
	"github.com/bilmem-net/ai-hediye/internal/metrics"
)

// ImageSearcher returns the URL of a representative image for query, or ""
// when nothing was found.
type ImageSearcher interface {
	SearchImage(ctx context.Context, query string) (string, error)
}

// PriceProvider looks up market prices for query.
type PriceProvider interface {
	Prices(ctx context.Context, query string) (entity.PriceResult, error)
}

// Pipeline enriches every candidate concurrently. Lookup failures are
// absorbed per item and never fail the batch.
type Pipeline struct {
	images  ImageSearcher
	prices  PriceProvider
	limiter *rate.Limiter
}

type Option func(*Pipeline)

// WithRateLimit caps outbound lookups across the pipeline at perSecond.
// Zero or less leaves lookups unthrottled.
func WithRateLimit(perSecond float64) Option {
	return func(p *Pipeline) {
		if perSecond > 0 {
			p.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

func NewPipeline(images ImageSearcher, prices PriceProvider, opts ...Option) *Pipeline {
	if prices == nil {
		prices = NopPriceProvider{}
	}
	p := &Pipeline{images: images, prices: prices}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Enrich returns one recommendation per candidate, in input order, once all
// lookups have settled.
func (p *Pipeline) Enrich(ctx context.Context, candidates []entity.Candidate) []entity.GiftRecommendation {
	out := make([]entity.GiftRecommendation, len(candidates))
	var g errgroup.Group
	for i, c := range candidates {
		g.Go(func() error {
			out[i] = p.enrichOne(ctx, c)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (p *Pipeline) enrichOne(ctx context.Context, c entity.Candidate) entity.GiftRecommendation {
	var (
		image *string
		price entity.PriceResult
		g     errgroup.Group
	)
	g.Go(func() error {
		image = p.lookupImage(ctx, c)
		return nil
	})
	g.Go(func() error {
		price = p.lookupPrice(ctx, c)
		return nil
	})
	_ = g.Wait()

	currency := price.Currency
	if currency == "" {
		currency = entity.CurrencyTRY
	}
	return entity.GiftRecommendation{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		PriceRange:    c.PriceRange,
		Category:      c.Category,
		Reason:        c.Reason,
		SearchQuery:   c.SearchQuery,
		BuyLink:       entity.BuyLink(c.Title),
		ImageURL:      image,
		AvgPrice:      price.AvgPrice,
		PriceCurrency: &currency,
	}
}

func (p *Pipeline) wait(ctx context.Context) error {
	if p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}

func (p *Pipeline) lookupImage(ctx context.Context, c entity.Candidate) *string {
	if p.images == nil {
		return nil
	}
	url, err := func() (string, error) {
		if err := p.wait(ctx); err != nil {
			return "", err
		}
		return p.images.SearchImage(ctx, c.Lookup())
	}()
	if err != nil {
		metrics.LookupFailuresTotal.WithLabelValues("image").Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("title", c.Title).Msg("image search failed")
		return nil
	}
	if url == "" {
		return nil
	}
	return &url
}

func (p *Pipeline) lookupPrice(ctx context.Context, c entity.Candidate) entity.PriceResult {
	res, err := func() (entity.PriceResult, error) {
		if err := p.wait(ctx); err != nil {
			return entity.PriceResult{}, err
		}
		return p.prices.Prices(ctx, c.Title)
	}()
	if err != nil {
		metrics.LookupFailuresTotal.WithLabelValues("price").Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("title", c.Title).Msg("price search failed")
		return Unknown()
	}
	return res
}
