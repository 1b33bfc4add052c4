package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bilmem-net/ai-hediye/internal/domain/entity"
	"github.com/bilmem-net/ai-hediye/internal/recommend"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSuggest(t *testing.T) {
	out, err := execute(t, "suggest", "--recipient", "anne", "--closeness", "yakin", "--budget", "1000", "--interest", "teknoloji")
	require.NoError(t, err)

	var recs []entity.GiftRecommendation
	require.NoError(t, yaml.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 3)
	assert.Equal(t, "dp-tech-2", recs[0].ID)
	assert.Equal(t, "₺999", recs[0].PriceRange)
}

func TestSuggestRejectsUnknownRecipient(t *testing.T) {
	_, err := execute(t, "suggest", "--recipient", "komsu", "--closeness", "yakin")
	assert.ErrorIs(t, err, recommend.ErrInvalidState)
}

func TestCatalogJSON(t *testing.T) {
	t.Cleanup(func() { rootFlags.output = "yaml" })
	out, err := execute(t, "catalog", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "dp-tech-1"`)
}

func TestRecommendIncompleteState(t *testing.T) {
	_, err := execute(t, "recommend", "--recipient", "anne", "--closeness", "yakin")
	assert.ErrorIs(t, err, recommend.ErrInvalidState)
}

func TestRecommendAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"recommendations":[{"id":"1","title":"Termos","buyLink":"x","imageUrl":null}]}`))
	}))
	defer srv.Close()

	out, err := execute(t, "recommend", "--server", srv.URL, "--recipient", "baba", "--closeness", "normal", "--interest", "seyahat")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Termos")
}
