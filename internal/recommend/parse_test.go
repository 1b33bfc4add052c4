package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

const candidateJSON = `[{"id":"1","title":"JBL Tune 510BT","description":"d","priceRange":"Tahmini: 1500 TL","category":"Müzik","reason":"r","searchQuery":"JBL Tune 510BT Beyaz"}]`

func TestStripFences(t *testing.T) {
	assert.Equal(t, `[1]`, StripFences("```json\n[1]\n```"))
	assert.Equal(t, `[1]`, StripFences("  [1]  "))
}

func TestParseCandidatesArray(t *testing.T) {
	got, err := ParseCandidates("```json\n" + candidateJSON + "\n```")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "JBL Tune 510BT", got[0].Title)
	assert.Equal(t, "JBL Tune 510BT Beyaz", got[0].Lookup())
}

func TestParseCandidatesObject(t *testing.T) {
	got, err := ParseCandidates(`{"note":"x","gifts":` + candidateJSON + `,"other":[]}`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestParseCandidatesObjectWithoutArray(t *testing.T) {
	got, err := ParseCandidates(`{"note":"nothing here"}`)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseCandidatesErrors(t *testing.T) {
	_, err := ParseCandidates("   ")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = ParseCandidates("not json at all")
	assert.ErrorIs(t, err, ErrParseResponse)
}

func TestBuildPrompt(t *testing.T) {
	st := wizard.DefaultState().
		WithRecipient(wizard.RecipientFather).
		WithCloseness(wizard.ClosenessNormal).
		WithBudget(2500).
		ToggleInterest("spor").
		ToggleInterest("kitap")

	prompt := BuildPrompt(st)
	assert.Contains(t, prompt, "1. Kime: baba")
	assert.Contains(t, prompt, "2. Yakınlık: normal")
	assert.Contains(t, prompt, "3. Bütçe: 2500 TL")
	assert.Contains(t, prompt, "4. İlgi Alanları: spor, kitap")
	assert.Contains(t, prompt, "5. Özel Gün: Belirtilmedi")

	grad := wizard.OccasionGraduation
	assert.True(t, strings.Contains(BuildPrompt(st.WithOccasion(&grad)), "5. Özel Gün: mezuniyet"))
}
