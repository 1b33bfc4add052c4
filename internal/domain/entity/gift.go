package entity

import (
	"net/url"
	"strings"
)

// Candidate is one gift suggestion as returned by the AI provider, before
// enrichment.
type Candidate struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	PriceRange  string `json:"priceRange" yaml:"priceRange"`
	Category    string `json:"category" yaml:"category"`
	Reason      string `json:"reason" yaml:"reason"`
	SearchQuery string `json:"searchQuery,omitempty" yaml:"searchQuery,omitempty"`
}

// Lookup returns the image search term for the candidate.
func (c Candidate) Lookup() string {
	if c.SearchQuery != "" {
		return c.SearchQuery
	}
	return c.Title
}

// GiftRecommendation is a display-ready suggestion. ImageURL, AvgPrice and
// PriceCurrency are nil when unknown.
type GiftRecommendation struct {
	ID            string  `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	Description   string  `json:"description" yaml:"description"`
	PriceRange    string  `json:"priceRange" yaml:"priceRange"`
	Category      string  `json:"category" yaml:"category"`
	Reason        string  `json:"reason" yaml:"reason"`
	SearchQuery   string  `json:"searchQuery,omitempty" yaml:"searchQuery,omitempty"`
	BuyLink       string  `json:"buyLink" yaml:"buyLink"`
	ImageURL      *string `json:"imageUrl" yaml:"imageUrl"`
	AvgPrice      *int    `json:"avgPrice,omitempty" yaml:"avgPrice,omitempty"`
	PriceCurrency *string `json:"priceCurrency,omitempty" yaml:"priceCurrency,omitempty"`
}

// PriceSource is one shopping result that contributed to an average.
type PriceSource struct {
	Title string  `json:"title" yaml:"title"`
	URL   string  `json:"url" yaml:"url"`
	Price float64 `json:"price" yaml:"price"`
}

// PriceResult is the outcome of a market price lookup. AvgPrice is nil when
// fewer than two usable prices were found.
type PriceResult struct {
	AvgPrice *int          `json:"avgPrice" yaml:"avgPrice"`
	Currency string        `json:"currency" yaml:"currency"`
	Sources  []PriceSource `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// CurrencyTRY is the only currency prices are reported in.
const CurrencyTRY = "TRY"

const googleSearchURL = "https://www.google.com/search?q="

// BuyLink returns the Google search link for purchasing title.
func BuyLink(title string) string {
	return googleSearchURL + escapeComponent(title+" satın al")
}

// ShoppingLink is BuyLink narrowed to the shopping tab.
func ShoppingLink(title string) string {
	return BuyLink(title) + "&tbm=shop"
}

// escapeComponent percent-encodes s for use as a single query value, with
// spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
