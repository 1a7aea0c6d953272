package main

import (
	"law_office_site_go/config"
	"law_office_site_go/handlers"
	"law_office_site_go/middleware"
	"law_office_site_go/services"
	"law_office_site_go/services/i18n"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Load translations
	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// Read the page documents once; every render starts from these
	templates, err := services.NewTemplateStore("templates/pages")
	if err != nil {
		log.Fatalf("Failed to load page templates: %v", err)
	}

	renderer := services.NewPageRenderer(cfg.AppURL)

	// Relay client is created once and reused across requests
	mailer := services.NewMailer(cfg)
	if !mailer.Configured() {
		log.Println("[WARNING] No mail relay credential configured; contact form sends are disabled")
	}

	pages := handlers.NewPages(templates, renderer)
	contact := handlers.NewContact(mailer)
	sitemap := handlers.NewSitemap(cfg.AppURL)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.Gzip())

	// Broad per-IP request budget across all routes
	generalLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: 100,
		Window:   15 * time.Minute,
	})
	e.Use(generalLimiter.Middleware())

	// Static assets; HTML documents never go through this path
	static := e.Group("/static", middleware.StaticCache())
	static.Static("", cfg.StaticDir)

	// Rendered pages
	site := e.Group("", middleware.NoCache())
	site.GET("/", pages.Landing)
	for _, route := range handlers.PageRoutes {
		site.GET(route, pages.Page(route))
	}

	e.GET("/sitemap.xml", sitemap.Serve)
	e.GET("/robots.txt", sitemap.Robots)

	// Contact API: stricter per-IP budget, applied before validation runs
	contactLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: 5,
		Window:   15 * time.Minute,
		Message:  "Too many contact requests. Please try again later.",
	})
	e.POST("/api/contact", contact.Submit, echomiddleware.BodyLimit("16K"), contactLimiter.Middleware())

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
