package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const googleImagesURL = "https://www.google.com/search"

// GoogleImageSearcher scrapes the Google Images result page and returns the
// first absolute image URL.
type GoogleImageSearcher struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewGoogleImageSearcher() *GoogleImageSearcher {
	return &GoogleImageSearcher{
		baseURL:    googleImagesURL,
		userAgent:  "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
		httpClient: http.DefaultClient,
	}
}

func (s *GoogleImageSearcher) SearchImage(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("tbm", "isch")
	params.Set("hl", "tr")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", s.userAgent)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image search: unexpected status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("image search: parse html: %w", err)
	}
	return firstImage(doc), nil
}

// firstImage walks the document depth first and returns the first img
// source that is an absolute http(s) URL and not a branding asset.
func firstImage(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		for _, key := range []string{"data-src", "src"} {
			for _, a := range n.Attr {
				if a.Key == key && usableImage(a.Val) {
					return a.Val
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if src := firstImage(c); src != "" {
			return src
		}
	}
	return ""
}

func usableImage(src string) bool {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return false
	}
	return !strings.Contains(src, "/images/branding/") && !strings.Contains(src, "googlelogo")
}
