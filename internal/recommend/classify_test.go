package recommend

import (
	"errors"
	"fmt"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Category
	}{
		{"fetch failure", errors.New("Failed to fetch"), CategoryConnectivity},
		{"dial error", errors.New("dial tcp 1.2.3.4:443: connect: connection refused"), CategoryConnectivity},
		{"quota", errors.New("Error 429: quota exceeded"), CategoryRateLimit},
		{"deadline", fmt.Errorf("gemini generate: %w", errors.New("context deadline exceeded")), CategoryTimeout},
		{"bad key", errors.New("API Key not valid. Please pass a valid API key."), CategoryAuthorization},
		{"forbidden", errors.New("status 403"), CategoryAuthorization},
		{"connectivity wins over rate limit", errors.New("network error after 429"), CategoryConnectivity},
		{"unknown", errors.New("something odd"), CategoryGeneric},
		{"not configured", ErrNotConfigured, CategoryAuthorization},
		{"breaker open", fmt.Errorf("gemini generate: %w", gobreaker.ErrOpenState), CategoryRateLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ue := Classify(tc.err)
			assert.Equal(t, tc.want, ue.Category)
			assert.Equal(t, categoryMessages[tc.want], ue.Error())
			assert.ErrorIs(t, ue, tc.err)
		})
	}
}

func TestClassifyKeepsClassifiedErrors(t *testing.T) {
	first := Classify(errors.New("timeout"))
	assert.Same(t, first, Classify(fmt.Errorf("wrapped: %w", first)))
	assert.Nil(t, Classify(nil))
}
