// Package site serves the crawler-facing robots.txt and sitemap.xml.
package site

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// Routes are the public pages listed in the sitemap.
var Routes = []string{
	"",
	"/wizard",
	"/hakkimizda",
	"/iletisim",
	"/blog",
	"/gizlilik",
	"/cerez-politikasi",
	"/kullanim-sartlari",
}

var disallowed = []string{"/api/", "/_next/", "/private/"}

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type URL struct {
	Loc             string  `xml:"loc"`
	LastModified    string  `xml:"lastmod"`
	ChangeFrequency string  `xml:"changefreq"`
	Priority        float64 `xml:"priority"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Robots renders robots.txt for baseURL.
func Robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-Agent: *\n")
	b.WriteString("Allow: /\n")
	for _, d := range disallowed {
		fmt.Fprintf(&b, "Disallow: %s\n", d)
	}
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", strings.TrimRight(baseURL, "/"))
	return b.String()
}

// Sitemap builds the url set for baseURL, stamped with now.
func Sitemap(baseURL string, now time.Time) URLSet {
	base := strings.TrimRight(baseURL, "/")
	set := URLSet{XMLNS: sitemapNS, URLs: make([]URL, 0, len(Routes))}
	for _, route := range Routes {
		set.URLs = append(set.URLs, URL{
			Loc:             base + route,
			LastModified:    now.UTC().Format(time.RFC3339),
			ChangeFrequency: changeFrequency(route),
			Priority:        priority(route),
		})
	}
	return set
}

func changeFrequency(route string) string {
	if route == "" || route == "/wizard" {
		return "weekly"
	}
	return "monthly"
}

func priority(route string) float64 {
	switch route {
	case "":
		return 1
	case "/wizard":
		return 0.9
	default:
		return 0.5
	}
}

// MarshalSitemap encodes set with the xml declaration.
func MarshalSitemap(set URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
