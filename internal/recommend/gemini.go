package recommend

import (
	"context"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"google.golang.org/genai"

	"github.com/bilmem-net/ai-hediye/internal/domain/entity"
	"github.com/bilmem-net/ai-hediye/internal/logging"
	"github.com/bilmem-net/ai-hediye/internal/metrics"
	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Generator produces raw gift candidates for a wizard state.
type Generator interface {
	Generate(ctx context.Context, state wizard.State) ([]entity.Candidate, error)
}

// generateFunc sends prompt to model and returns the response text.
type generateFunc func(ctx context.Context, model, prompt string) (string, error)

// BreakerConfig tunes the circuit breaker guarding the AI provider.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// GeminiGenerator asks Gemini for three candidates in JSON.
type GeminiGenerator struct {
	model    string
	generate generateFunc
	breaker  *gobreaker.CircuitBreaker[string]
}

// NewGeminiGenerator creates a generator backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, cfg BreakerConfig) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	generate := func(ctx context.Context, model, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		})
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}
	return newGeminiGenerator(model, generate, cfg), nil
}

func newGeminiGenerator(model string, generate generateFunc, cfg BreakerConfig) *GeminiGenerator {
	if model == "" {
		model = DefaultModel
	}
	g := &GeminiGenerator{model: model, generate: generate}
	g.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.BreakerState.Set(float64(to))
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
	return g
}

func (g *GeminiGenerator) Generate(ctx context.Context, state wizard.State) ([]entity.Candidate, error) {
	prompt := BuildPrompt(state)
	content, err := g.breaker.Execute(func() (string, error) {
		return g.generate(ctx, g.model, prompt)
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	candidates, err := ParseCandidates(content)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Int("length", len(content)).Msg("unparsable model response")
		return nil, err
	}
	return candidates, nil
}
