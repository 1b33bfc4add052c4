package enrich

import (
	"cmp"
	"context"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bilmem-net/ai-hediye/internal/domain/entity"
)

// MaxSources is the number of cheapest listings reported with an average.
const MaxSources = 3

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.]`)
	leadingNumber = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
)

// Unknown is the neutral price result.
func Unknown() entity.PriceResult {
	return entity.PriceResult{Currency: entity.CurrencyTRY, Sources: []entity.PriceSource{}}
}

// ParsePrice reads a Turkish formatted price such as "1.500,00 TL" or
// "₺1.500". Dots are thousands separators and the first comma is the
// decimal mark. It reports false for non-positive or unreadable input.
func ParsePrice(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	s = nonNumeric.ReplaceAllString(s, "")
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// AveragePrice returns the rounded mean of prices. With fewer than two
// values the average is unknown; with four or more the single lowest and
// highest values are dropped first.
func AveragePrice(prices []float64) (int, bool) {
	if len(prices) < 2 {
		return 0, false
	}
	sorted := slices.Clone(prices)
	slices.Sort(sorted)
	if len(sorted) >= 4 {
		sorted = sorted[1 : len(sorted)-1]
	}
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return int(math.Round(sum / float64(len(sorted)))), true
}

// Aggregate turns parsed listings into a PriceResult carrying the trimmed
// average and the cheapest listings.
func Aggregate(sources []entity.PriceSource) entity.PriceResult {
	if len(sources) < 2 {
		return Unknown()
	}
	sorted := slices.Clone(sources)
	slices.SortStableFunc(sorted, func(a, b entity.PriceSource) int { return cmp.Compare(a.Price, b.Price) })

	prices := make([]float64, len(sorted))
	for i, s := range sorted {
		prices[i] = s.Price
	}
	avg, _ := AveragePrice(prices)
	return entity.PriceResult{
		AvgPrice: &avg,
		Currency: entity.CurrencyTRY,
		Sources:  sorted[:min(MaxSources, len(sorted))],
	}
}

// NopPriceProvider is used when no price source is configured; every lookup
// is unknown.
type NopPriceProvider struct{}

func (NopPriceProvider) Prices(context.Context, string) (entity.PriceResult, error) {
	return Unknown(), nil
}

// GoogleCSEProvider is a placeholder for a Programmable Search Engine price
// source. It always reports unknown.
type GoogleCSEProvider struct {
	APIKey string
	CX     string
}

func (GoogleCSEProvider) Prices(context.Context, string) (entity.PriceResult, error) {
	return Unknown(), nil
}

// ProviderConfig selects the price and image providers.
type ProviderConfig struct {
	SerpAPIKey string
	CSEAPIKey  string
	CSECX      string
}

// NewPriceProvider prefers SerpAPI, then Google CSE, then no provider.
func NewPriceProvider(cfg ProviderConfig) PriceProvider {
	switch {
	case cfg.SerpAPIKey != "":
		return NewSerpAPIPriceProvider(cfg.SerpAPIKey)
	case cfg.CSEAPIKey != "" && cfg.CSECX != "":
		return GoogleCSEProvider{APIKey: cfg.CSEAPIKey, CX: cfg.CSECX}
	default:
		return NopPriceProvider{}
	}
}

// NewImageSearcher uses SerpAPI when a key is set and scrapes Google Images
// otherwise.
func NewImageSearcher(cfg ProviderConfig) ImageSearcher {
	if cfg.SerpAPIKey != "" {
		return NewSerpAPIImageSearcher(cfg.SerpAPIKey)
	}
	return NewGoogleImageSearcher()
}
