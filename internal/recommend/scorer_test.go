package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilmem-net/ai-hediye/internal/catalog"
	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

func motherState(budget float64, interests ...string) wizard.State {
	st := wizard.DefaultState().
		WithRecipient(wizard.RecipientMother).
		WithCloseness(wizard.ClosenessClose).
		WithBudget(budget)
	for _, in := range interests {
		st = st.ToggleInterest(in)
	}
	return st
}

func TestScoreRanksWithinBudget(t *testing.T) {
	recs := Score(motherState(1000, "teknoloji"), catalog.Seed())

	require.Len(t, recs, 3)
	assert.Equal(t, "dp-tech-2", recs[0].ID)
	assert.Equal(t, "dp-beauty-1", recs[1].ID)
	assert.Equal(t, "dp-home-2", recs[2].ID)
	for _, r := range recs {
		assert.NotEqual(t, "dp-book-1", r.ID, "over-budget product must not be suggested")
	}
}

func TestScoreOverBudgetIsNegative(t *testing.T) {
	var kindle catalog.Product
	for _, p := range catalog.Seed() {
		if p.ID == "dp-book-1" {
			kindle = p
		}
	}
	require.Equal(t, 6800, kindle.Price)
	assert.Less(t, ScoreProduct(motherState(1000, "kitap"), kindle), 0.0)
}

func TestScoreNeedsRecipientAndCloseness(t *testing.T) {
	st := wizard.DefaultState().WithRecipient(wizard.RecipientMother)
	recs := Score(st, catalog.Seed())
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestScoreIsStable(t *testing.T) {
	products := []catalog.Product{
		{ID: "a", Price: 100, Categories: []string{"x"}, Suitability: catalog.Suitability{MinCloseness: wizard.ClosenessFormal}},
		{ID: "b", Price: 100, Categories: []string{"x"}, Suitability: catalog.Suitability{MinCloseness: wizard.ClosenessFormal}},
		{ID: "c", Price: 100, Categories: []string{"x"}, Suitability: catalog.Suitability{MinCloseness: wizard.ClosenessFormal}},
	}
	st := motherState(1000)
	for range 5 {
		recs := Score(st, products)
		require.Len(t, recs, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{recs[0].ID, recs[1].ID, recs[2].ID})
	}
}

func TestScoreOccasionAndTags(t *testing.T) {
	st := motherState(5000, "mutfak")
	newYear := wizard.OccasionNewYear
	withOccasion := st.WithOccasion(&newYear)

	var service catalog.Product
	for _, p := range catalog.Seed() {
		if p.ID == "dp-food-1" {
			service = p
		}
	}
	base := ScoreProduct(st, service)
	assert.InDelta(t, base+OccasionMatch, ScoreProduct(withOccasion, service), 0.0001)
	// "mutfak" hits one tag
	assert.InDelta(t, 2850.0/5000*BudgetFitWeight+RecipientMatch+ClosenessMet+TagMatch, base, 0.0001)
}

func TestFromProduct(t *testing.T) {
	recs := Score(motherState(2000, "teknoloji"), catalog.Seed())
	require.NotEmpty(t, recs)

	first := recs[0]
	assert.Equal(t, "Teknoloji", first.Category)
	assert.Contains(t, first.BuyLink, "tbm=shop")
	require.NotNil(t, first.ImageURL)
	assert.Contains(t, first.Reason, "kategorisinde en çok tercih edilen")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₺1.590", FormatPrice(1590))
	assert.Equal(t, "₺999", FormatPrice(999))
	assert.Equal(t, "₺15.000", FormatPrice(15000))
}
