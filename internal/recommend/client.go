package recommend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/bilmem-net/ai-hediye/internal/domain/entity"
	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

// RecommendPath is the server route the Client posts to.
const RecommendPath = "/api/recommend"

type recommendRequest struct {
	State *wizard.State `json:"state"`
}

type recommendResponse struct {
	Recommendations []entity.GiftRecommendation `json:"recommendations"`
	Error           string                      `json:"error,omitempty"`
}

// Client fetches AI recommendations from a running server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Recommend sends the whole state in one request. Every failure is returned
// as a *UserError carrying a localized message.
func (c *Client) Recommend(ctx context.Context, state wizard.State) ([]entity.GiftRecommendation, error) {
	recs, err := c.recommend(ctx, state)
	if err != nil {
		return nil, Classify(err)
	}
	return recs, nil
}

func (c *Client) recommend(ctx context.Context, state wizard.State) ([]entity.GiftRecommendation, error) {
	body, err := json.Marshal(recommendRequest{State: &state})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RecommendPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post recommendations: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var out recommendResponse
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if err := json.Unmarshal(raw, &out); err != nil || out.Error == "" {
			out.Error = ""
		}
		return nil, serverError(resp.StatusCode, out.Error)
	}
	if err := json.Unmarshal(raw, &out); err != nil || len(out.Recommendations) == 0 {
		return nil, ErrNoRecommendations
	}
	return out.Recommendations, nil
}

// serverError turns a non-2xx reply into an error. The server already sends
// a localized category message, so it is mapped back to its category; 429
// is a rate limit whatever the body says.
func serverError(status int, message string) error {
	err := fmt.Errorf("recommend request failed with status %d", status)
	if message != "" {
		err = fmt.Errorf("%w: %s", err, message)
	}
	if status == http.StatusTooManyRequests {
		return &UserError{Category: CategoryRateLimit, Message: CategoryRateLimit.Message(), Err: err}
	}
	if c, ok := categoryOf(message); ok {
		return &UserError{Category: c, Message: c.Message(), Err: err}
	}
	if message != "" {
		return errors.New(message)
	}
	return err
}
