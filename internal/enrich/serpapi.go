package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/bilmem-net/ai-hediye/internal/domain/entity"
)

const serpAPIBaseURL = "https://serpapi.com/search.json"

type serpClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func (c serpClient) get(ctx context.Context, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("serpapi: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SerpAPIPriceProvider reads Turkish Google Shopping results through SerpAPI.
type SerpAPIPriceProvider struct {
	client serpClient
}

func NewSerpAPIPriceProvider(apiKey string) *SerpAPIPriceProvider {
	return &SerpAPIPriceProvider{client: serpClient{apiKey: apiKey, baseURL: serpAPIBaseURL, httpClient: http.DefaultClient}}
}

type shoppingResponse struct {
	ShoppingResults []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
		Price any    `json:"price"`
	} `json:"shopping_results"`
}

func (p *SerpAPIPriceProvider) Prices(ctx context.Context, query string) (entity.PriceResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("tbm", "shop")
	params.Set("location", "Turkey")
	params.Set("hl", "tr")
	params.Set("gl", "tr")
	params.Set("currency", "TRY")

	var body shoppingResponse
	if err := p.client.get(ctx, params, &body); err != nil {
		return Unknown(), err
	}

	sources := make([]entity.PriceSource, 0, len(body.ShoppingResults))
	for _, r := range body.ShoppingResults {
		raw := priceText(r.Price)
		if raw == "" {
			continue
		}
		if v, ok := ParsePrice(raw); ok {
			sources = append(sources, entity.PriceSource{Title: r.Title, URL: r.Link, Price: v})
		}
	}
	return Aggregate(sources), nil
}

// priceText renders the loosely typed price field as text.
func priceText(v any) string {
	switch p := v.(type) {
	case string:
		return p
	case float64:
		if p == 0 {
			return ""
		}
		return strconv.FormatFloat(p, 'f', -1, 64)
	default:
		return ""
	}
}

// SerpAPIImageSearcher finds images through SerpAPI's Google Images engine.
type SerpAPIImageSearcher struct {
	client serpClient
}

func NewSerpAPIImageSearcher(apiKey string) *SerpAPIImageSearcher {
	return &SerpAPIImageSearcher{client: serpClient{apiKey: apiKey, baseURL: serpAPIBaseURL, httpClient: http.DefaultClient}}
}

type imagesResponse struct {
	ImagesResults []struct {
		Original  string `json:"original"`
		Thumbnail string `json:"thumbnail"`
	} `json:"images_results"`
}

func (s *SerpAPIImageSearcher) SearchImage(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("engine", "google_images")
	params.Set("q", query)
	params.Set("hl", "tr")
	params.Set("gl", "tr")

	var body imagesResponse
	if err := s.client.get(ctx, params, &body); err != nil {
		return "", err
	}
	for _, r := range body.ImagesResults {
		if r.Original != "" {
			return r.Original, nil
		}
		if r.Thumbnail != "" {
			return r.Thumbnail, nil
		}
	}
	return "", nil
}
