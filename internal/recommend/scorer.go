package recommend

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bilmem-net/ai-hediye/internal/catalog"
	"github.com/bilmem-net/ai-hediye/internal/domain/entity"
	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

// Scoring weights of the fallback recommender.
const (
	BudgetOverPenalty = -20000
	BudgetFitWeight   = 60
	RecipientMatch    = 120
	ClosenessMet      = 40
	ClosenessUnmet    = -80
	CategoryMatch     = 150
	TagMatch          = 80
	OccasionMatch     = 100

	// MaxResults is the number of suggestions returned by Score.
	MaxResults = 3
)

var trPrinter = message.NewPrinter(language.Turkish)

// ScoreProduct computes the relevance of p for the given wizard state. The
// state must carry a recipient and a closeness.
func ScoreProduct(state wizard.State, p catalog.Product) float64 {
	score := 0.0

	if float64(p.Price) > state.Budget {
		score += BudgetOverPenalty
	} else {
		score += float64(p.Price) / state.Budget * BudgetFitWeight
	}

	if state.Recipient != nil && slices.Contains(p.Suitability.Recipients, *state.Recipient) {
		score += RecipientMatch
	}

	if state.Closeness != nil && state.Closeness.Rank() >= p.Suitability.MinCloseness.Rank() {
		score += ClosenessMet
	} else {
		score += ClosenessUnmet
	}

	interests := make([]string, len(state.Interests))
	for i, in := range state.Interests {
		interests[i] = strings.ToLower(in)
	}
	score += float64(countMatches(p.Categories, interests) * CategoryMatch)
	score += float64(countMatches(p.Tags, interests) * TagMatch)

	if state.Occasion != nil && slices.Contains(p.Suitability.Occasions, *state.Occasion) {
		score += OccasionMatch
	}
	return score
}

// countMatches counts the values that overlap any interest by substring in
// either direction.
func countMatches(values, interests []string) int {
	n := 0
	for _, v := range values {
		if slices.ContainsFunc(interests, func(in string) bool {
			return strings.Contains(in, v) || strings.Contains(v, in)
		}) {
			n++
		}
	}
	return n
}

// Score ranks the catalog for state and returns at most MaxResults
// positively scored products, best first. Ties keep catalog order. It
// returns an empty slice when recipient or closeness is unset.
func Score(state wizard.State, products []catalog.Product) []entity.GiftRecommendation {
	if state.Recipient == nil || state.Closeness == nil {
		return []entity.GiftRecommendation{}
	}

	type scored struct {
		product catalog.Product
		score   float64
	}
	ranked := make([]scored, 0, len(products))
	for _, p := range products {
		if s := ScoreProduct(state, p); s > 0 {
			ranked = append(ranked, scored{product: p, score: s})
		}
	}
	slices.SortStableFunc(ranked, func(a, b scored) int { return cmp.Compare(b.score, a.score) })
	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}

	out := make([]entity.GiftRecommendation, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, fromProduct(r.product))
	}
	return out
}

func fromProduct(p catalog.Product) entity.GiftRecommendation {
	category := ""
	if len(p.Categories) > 0 {
		// a Caser is stateful and must not be shared
		category = cases.Title(language.Turkish).String(p.Categories[0])
	}
	image := p.ImageURL
	return entity.GiftRecommendation{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		PriceRange:  FormatPrice(p.Price),
		Category:    category,
		Reason: p.Title + ", Google aramalarında " + strings.Join(p.Categories, ", ") +
			" kategorisinde en çok tercih edilen ve bütçenize tam uyum sağlayan seçenektir.",
		BuyLink:  entity.ShoppingLink(p.Title),
		ImageURL: &image,
	}
}

// FormatPrice renders an amount in lira with Turkish digit grouping, e.g. ₺1.590.
func FormatPrice(amount int) string {
	return "₺" + trPrinter.Sprintf("%d", amount)
}
