// Package catalog holds the curated product list used when no AI
// recommendation is available.
package catalog

import "github.com/bilmem-net/ai-hediye/internal/wizard"

// Product is a curated gift with the audience it suits.
type Product struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	ImageURL    string      `json:"imageUrl" yaml:"imageUrl"`
	Price       int         `json:"price" yaml:"price"`
	BuyURL      string      `json:"buyUrl" yaml:"buyUrl"`
	Categories  []string    `json:"categories" yaml:"categories"`
	Tags        []string    `json:"tags" yaml:"tags"`
	Suitability Suitability `json:"suitability" yaml:"suitability"`
}

// Suitability describes who a product is appropriate for. Occasions may be empty.
type Suitability struct {
	Recipients   []wizard.Recipient `json:"recipients" yaml:"recipients"`
	MinCloseness wizard.Closeness   `json:"minCloseness" yaml:"minCloseness"`
	Occasions    []wizard.Occasion  `json:"occasions,omitempty" yaml:"occasions,omitempty"`
}
