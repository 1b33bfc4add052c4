package site

import (
	"encoding/xml"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobots(t *testing.T) {
	got := Robots("https://example.com/")
	assert.Contains(t, got, "User-Agent: *\nAllow: /\n")
	assert.Contains(t, got, "Disallow: /api/\n")
	assert.Contains(t, got, "Disallow: /_next/\n")
	assert.Contains(t, got, "Disallow: /private/\n")
	assert.True(t, strings.HasSuffix(got, "Sitemap: https://example.com/sitemap.xml\n"))
}

func TestSitemap(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	set := Sitemap("https://bilmem.net", now)

	require.Len(t, set.URLs, len(Routes))
	home, wizard, about := set.URLs[0], set.URLs[1], set.URLs[2]

	assert.Equal(t, "https://bilmem.net", home.Loc)
	assert.Equal(t, 1.0, home.Priority)
	assert.Equal(t, "weekly", home.ChangeFrequency)
	assert.Equal(t, "2026-01-02T03:04:05Z", home.LastModified)

	assert.Equal(t, "https://bilmem.net/wizard", wizard.Loc)
	assert.Equal(t, 0.9, wizard.Priority)
	assert.Equal(t, "weekly", wizard.ChangeFrequency)

	assert.Equal(t, "https://bilmem.net/hakkimizda", about.Loc)
	assert.Equal(t, 0.5, about.Priority)
	assert.Equal(t, "monthly", about.ChangeFrequency)
}

func TestSitemapRoute(t *testing.T) {
	app := fiber.New()
	h := NewHandler("https://bilmem.net")
	h.now = func() time.Time { return time.Unix(0, 0) }
	h.RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/sitemap.xml", nil))
	require.NoError(t, err)
	require.Equal(t, 200, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "application/xml")

	body, _ := io.ReadAll(res.Body)
	var set URLSet
	require.NoError(t, xml.Unmarshal(body, &set))
	assert.Len(t, set.URLs, 8)
	assert.Contains(t, string(body), `xmlns="`+sitemapNS+`"`)
}

func TestRobotsRoute(t *testing.T) {
	app := fiber.New()
	NewHandler("https://bilmem.net").RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/robots.txt", nil))
	require.NoError(t, err)
	require.Equal(t, 200, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "Sitemap: https://bilmem.net/sitemap.xml")
}
