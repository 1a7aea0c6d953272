package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSitemapServe(t *testing.T) {
	h := NewSitemap(testBaseURL)

	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)
	assert.NoError(t, h.Serve(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>"+testBaseURL+"/</loc>")
	assert.Contains(t, body, "<loc>"+testBaseURL+"/practice/criminal-lawyer</loc>")
	assert.Contains(t, body, "/practice/criminal-lawyer?lang=en</loc>")
	assert.Contains(t, body, "<loc>"+testBaseURL+"/accessibility-statement</loc>")
	// One entry per language per route, plus the landing page
	assert.Equal(t, 1+2*len(PageRoutes), strings.Count(body, "<loc>"))
}

func TestSitemapRobots(t *testing.T) {
	h := NewSitemap(testBaseURL)

	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)
	assert.NoError(t, h.Robots(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: "+testBaseURL+"/sitemap.xml")
}
