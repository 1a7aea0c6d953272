package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Sitemap serves the XML sitemap and robots.txt for the fixed route set
type Sitemap struct {
	baseURL string
}

func NewSitemap(baseURL string) *Sitemap {
	return &Sitemap{baseURL: baseURL}
}

// Serve generates the XML sitemap, listing each route and its English variant
func (h *Sitemap) Serve(c echo.Context) error {
	urls := []SitemapURL{
		{Loc: h.baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
	}

	for _, route := range PageRoutes {
		priority := float32(0.5)
		changeFreq := "yearly"
		if strings.HasPrefix(route, "/practice/") {
			priority = 0.8
			changeFreq = "monthly"
		}
		urls = append(urls, SitemapURL{Loc: h.baseURL + route, ChangeFreq: changeFreq, Priority: priority})
		urls = append(urls, SitemapURL{Loc: h.baseURL + route + "?lang=en", ChangeFreq: changeFreq, Priority: priority - 0.1})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// Robots serves robots.txt pointing crawlers at the sitemap
func (h *Sitemap) Robots(c echo.Context) error {
	return c.String(http.StatusOK, "User-agent: *\nAllow: /\n\nSitemap: "+h.baseURL+"/sitemap.xml\n")
}
