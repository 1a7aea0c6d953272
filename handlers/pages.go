package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"law_office_site_go/services"
)

// Pages serves the rendered HTML documents. It depends only on what it is
// constructed with, so handlers can be exercised without a running server.
type Pages struct {
	templates *services.TemplateStore
	renderer  *services.PageRenderer
}

func NewPages(templates *services.TemplateStore, renderer *services.PageRenderer) *Pages {
	return &Pages{templates: templates, renderer: renderer}
}

// pageLang selects the page language: exactly "en" selects English, anything
// else (including absent) selects Hebrew.
func pageLang(c echo.Context) string {
	if c.QueryParam("lang") == "en" {
		return "en"
	}
	return "he"
}

// Landing serves the home document. The landing page has no metadata lookup;
// only the social preview image is injected.
func (h *Pages) Landing(c echo.Context) error {
	doc := h.renderer.InjectOGImage(h.templates.Home())
	return c.HTML(http.StatusOK, doc)
}

// Page returns the handler for a metadata-injected route. Routes are
// enumerated statically, so a missing metadata entry is a configuration error.
func (h *Pages) Page(route string) echo.HandlerFunc {
	return func(c echo.Context) error {
		lang := pageLang(c)
		meta, ok := GetRouteMeta(route, lang)
		if !ok {
			c.Logger().Errorf("No metadata entry for route %s", route)
			return echo.NewHTTPError(http.StatusInternalServerError, "Page misconfigured")
		}

		doc := h.renderer.Render(h.templates.Expertise(), route, lang, meta)
		return c.HTML(http.StatusOK, doc)
	}
}
