package middleware

import "github.com/labstack/echo/v4"

// StaticCache sets long-lived immutable caching for static assets. HTML pages
// never go through this path; they are served by the route handlers so that
// metadata injection stays fresh.
func StaticCache() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			return next(c)
		}
	}
}

// NoCache marks rendered page responses as non-cacheable so language and
// metadata variants are always recomputed.
func NoCache() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Cache-Control", "no-cache")
			return next(c)
		}
	}
}
