package models

// RouteMeta is the per-route, per-language {title, description} pair used for
// SEO and social sharing tags. Entries are defined at startup and never mutated.
type RouteMeta struct {
	Title       string // Page title
	Description string // Meta description (150-160 chars recommended)
}

// SEO contains the full metadata set injected into a rendered page
type SEO struct {
	Title       string // Page title
	Description string // Meta description
	Canonical   string // Canonical path (route, plus ?lang=en for English)
	OGTitle     string // Open Graph title (defaults to Title if empty)
	OGDesc      string // Open Graph description (defaults to Description if empty)
	OGImage     string // Open Graph image URL
	Lang        string // Current language ("he" or "en")
}

// GetOGTitle returns OGTitle or falls back to Title
func (s *SEO) GetOGTitle() string {
	if s.OGTitle != "" {
		return s.OGTitle
	}
	return s.Title
}

// GetOGDesc returns OGDesc or falls back to Description
func (s *SEO) GetOGDesc() string {
	if s.OGDesc != "" {
		return s.OGDesc
	}
	return s.Description
}
