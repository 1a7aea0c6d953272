package services

import (
	"encoding/json"
	"html"
	"regexp"
	"strings"

	"law_office_site_go/models"
	"law_office_site_go/services/i18n"
)

const (
	// Fixed provider identity used in structured data
	providerName  = "משרד עורכי דין דורון שלו"
	providerPhone = "+972-50-123-4567"

	// Anchor comment after which hreflang alternates are inserted
	hreflangAnchor = "<!-- hreflang-alternates -->"

	ogImageWidth  = "1200"
	ogImageHeight = "630"
)

// First-match substitution targets. Each page document contains exactly one of
// each; multiple or absent matches are undefined behavior guarded by tests.
var (
	titleRe     = regexp.MustCompile(`<title>[^<]*</title>`)
	descRe      = regexp.MustCompile(`<meta name="description" content="[^"]*" />`)
	ogTitleRe   = regexp.MustCompile(`<meta property="og:title" content="[^"]*" />`)
	ogDescRe    = regexp.MustCompile(`<meta property="og:description" content="[^"]*" />`)
	twTitleRe   = regexp.MustCompile(`<meta name="twitter:title" content="[^"]*" />`)
	twDescRe    = regexp.MustCompile(`<meta name="twitter:description" content="[^"]*" />`)
	canonicalRe = regexp.MustCompile(`<link rel="canonical" href="[^"]*" />`)
)

// PageRenderer injects SEO metadata into cached page documents. It is a pure
// transformation over immutable inputs and is safe for concurrent use.
type PageRenderer struct {
	baseURL string
	ogImage string
}

func NewPageRenderer(baseURL string) *PageRenderer {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &PageRenderer{
		baseURL: baseURL,
		ogImage: baseURL + "/static/images/og-image.png",
	}
}

// Render produces the complete HTML document for a route and language from the
// pristine template. Hebrew is the default variant; lang must already be
// normalized to "he" or "en" by the caller.
func (r *PageRenderer) Render(template, route, lang string, meta models.RouteMeta) string {
	canonical := route
	if lang == "en" {
		canonical = route + "?lang=en"
	}

	seo := &models.SEO{
		Title:       meta.Title,
		Description: meta.Description,
		Canonical:   canonical,
		OGImage:     r.ogImage,
		Lang:        lang,
	}

	title := html.EscapeString(seo.Title)
	desc := html.EscapeString(seo.Description)
	ogTitle := html.EscapeString(seo.GetOGTitle())
	ogDesc := html.EscapeString(seo.GetOGDesc())

	doc := replaceFirst(titleRe, template, "<title>"+title+"</title>")
	doc = replaceFirst(descRe, doc, `<meta name="description" content="`+desc+`" />`)
	doc = replaceFirst(ogTitleRe, doc, `<meta property="og:title" content="`+ogTitle+`" />`)
	doc = replaceFirst(ogDescRe, doc, `<meta property="og:description" content="`+ogDesc+`" />`)
	doc = replaceFirst(twTitleRe, doc, `<meta name="twitter:title" content="`+ogTitle+`" />`)
	doc = replaceFirst(twDescRe, doc, `<meta name="twitter:description" content="`+ogDesc+`" />`)
	doc = replaceFirst(canonicalRe, doc, `<link rel="canonical" href="`+r.baseURL+seo.Canonical+`" />`)

	doc = r.injectHreflang(doc, route)
	doc = r.InjectOGImage(doc)

	if strings.HasPrefix(route, "/practice/") {
		doc = r.injectStructuredData(doc, meta, r.baseURL+seo.Canonical, lang)
	}

	return doc
}

// InjectOGImage adds the social preview image tags unless the document already
// declares an og:image, so a template carrying its own image is left alone.
func (r *PageRenderer) InjectOGImage(doc string) string {
	if strings.Contains(doc, `property="og:image"`) {
		return doc
	}
	tags := `<meta property="og:image" content="` + r.ogImage + `" />` + "\n" +
		`<meta property="og:image:width" content="` + ogImageWidth + `" />` + "\n" +
		`<meta property="og:image:height" content="` + ogImageHeight + `" />` + "\n" +
		`<meta name="twitter:image" content="` + r.ogImage + `" />` + "\n"
	return strings.Replace(doc, "</head>", tags+"</head>", 1)
}

// injectHreflang inserts the he/en/x-default alternate links after the anchor
// comment. Insertion is additive per render; idempotence holds because every
// render starts from the pristine template.
func (r *PageRenderer) injectHreflang(doc, route string) string {
	links := hreflangAnchor + "\n" +
		`<link rel="alternate" hreflang="he" href="` + r.baseURL + route + `" />` + "\n" +
		`<link rel="alternate" hreflang="en" href="` + r.baseURL + route + `?lang=en" />` + "\n" +
		`<link rel="alternate" hreflang="x-default" href="` + r.baseURL + route + `" />`
	return strings.Replace(doc, hreflangAnchor, links, 1)
}

type providerLD struct {
	Type      string `json:"@type"`
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
}

type areaServedLD struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type legalServiceLD struct {
	Context           string       `json:"@context"`
	Type              string       `json:"@type"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	URL               string       `json:"url"`
	Provider          providerLD   `json:"provider"`
	AreaServed        areaServedLD `json:"areaServed"`
	AvailableLanguage []string     `json:"availableLanguage"`
}

type breadcrumbItemLD struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type breadcrumbListLD struct {
	Context         string             `json:"@context"`
	Type            string             `json:"@type"`
	ItemListElement []breadcrumbItemLD `json:"itemListElement"`
}

// injectStructuredData appends the LegalService and BreadcrumbList JSON-LD
// blocks before the closing head marker of practice-area pages.
func (r *PageRenderer) injectStructuredData(doc string, meta models.RouteMeta, canonicalURL, lang string) string {
	// Service name is the title up to the first "|" delimiter
	name := strings.TrimSpace(strings.SplitN(meta.Title, "|", 2)[0])

	service := legalServiceLD{
		Context:     "https://schema.org",
		Type:        "LegalService",
		Name:        name,
		Description: meta.Description,
		URL:         canonicalURL,
		Provider: providerLD{
			Type:      "Attorney",
			Name:      providerName,
			Telephone: providerPhone,
		},
		AreaServed:        areaServedLD{Type: "Country", Name: "IL"},
		AvailableLanguage: []string{"Hebrew", "English"},
	}

	breadcrumbs := breadcrumbListLD{
		Context: "https://schema.org",
		Type:    "BreadcrumbList",
		ItemListElement: []breadcrumbItemLD{
			{Type: "ListItem", Position: 1, Name: i18n.Translate(lang, "breadcrumb.home"), Item: r.baseURL + "/"},
			{Type: "ListItem", Position: 2, Name: name, Item: canonicalURL},
		},
	}

	blocks := jsonLDBlock(service) + "\n" + jsonLDBlock(breadcrumbs) + "\n"
	return strings.Replace(doc, "</head>", blocks+"</head>", 1)
}

func jsonLDBlock(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		// The structs above always marshal; this is unreachable for valid input
		return ""
	}
	return `<script type="application/ld+json">` + string(data) + `</script>`
}

// replaceFirst substitutes the first structural match of re with the literal
// replacement. Zero or multiple matches are undefined behavior for page
// documents and are pinned by the renderer tests.
func replaceFirst(re *regexp.Regexp, s, replacement string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + replacement + s[loc[1]:]
}
