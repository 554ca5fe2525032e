// SPDX-License-Identifier: MIT
package blocks

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/thatcatcamp/lpsite/internal/locale"
	"github.com/thatcatcamp/lpsite/internal/seo"
	"github.com/thatcatcamp/lpsite/internal/shell"
	"github.com/thatcatcamp/lpsite/internal/state"
	"github.com/thatcatcamp/lpsite/internal/templates"
	"github.com/thatcatcamp/lpsite/internal/themes"
)

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Meta.Title}}</title>
  {{if .Meta.Description}}<meta name="description" content="{{.Meta.Description}}">{{end}}
  {{if .Meta.Canonical}}<link rel="canonical" href="{{.Meta.Canonical}}">{{end}}
  {{- range .Meta.Alternates}}
  <link rel="alternate" hreflang="{{.HrefLang}}" href="{{.Href}}">
  {{- end}}
  <meta property="og:title" content="{{.Meta.OG.Title}}">
  {{if .Meta.OG.Type}}<meta property="og:type" content="{{.Meta.OG.Type}}">{{end}}
  {{if .Meta.OG.Locale}}<meta property="og:locale" content="{{.Meta.OG.Locale}}">{{end}}
  <link rel="stylesheet" href="/theme.css?theme={{.Theme}}">
  {{- range .JSONLD}}
  <script type="application/ld+json">{{.}}</script>
  {{- end}}
</head>
<body class="theme-{{.Theme}}{{if .Dark}} dark{{end}}" data-page="{{.PageID}}">
{{range .Sections}}{{.}}
{{end}}</body>
</html>
`))

type document struct {
	Lang     string
	Meta     seo.Meta
	Theme    string
	Dark     bool
	PageID   string
	JSONLD   []template.JS
	Sections []template.HTML
}

// RenderPage renders an assembled page as a complete HTML document.
// A section that fails to render fails the whole page.
func RenderPage(p templates.Page, v state.View) ([]byte, error) {
	doc := document{
		Lang:   p.Locale.HTMLLang(),
		Meta:   p.Meta,
		Theme:  p.Theme.Name,
		Dark:   p.Theme.Dark,
		PageID: p.ID,
	}
	for _, ld := range p.Meta.JSONLD {
		doc.JSONLD = append(doc.JSONLD, template.JS(ld))
	}
	for _, d := range p.Sections {
		h, err := RenderSection(d, v)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", p.ID, err)
		}
		doc.Sections = append(doc.Sections, h)
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to render page %s: %w", p.ID, err)
	}
	return buf.Bytes(), nil
}

// RenderLegalPage renders an assembled privacy or impressum page
func RenderLegalPage(p templates.Page) ([]byte, error) {
	return RenderPage(p, state.View{})
}

var notFoundText = map[locale.Locale][2]string{
	locale.English: {"Page not found", "The page you are looking for does not exist."},
	locale.German:  {"Seite nicht gefunden", "Die gesuchte Seite existiert nicht."},
}

// RenderNotFound renders the themed 404 page for l
func RenderNotFound(theme themes.Theme, l locale.Locale) ([]byte, error) {
	if !l.Valid() {
		l = locale.Default
	}
	text := notFoundText[l]
	msgs := shell.GetMessages(l)

	var body bytes.Buffer
	body.WriteString(`<main class="not-found"><h1>404</h1><h2>`)
	template.HTMLEscape(&body, []byte(text[0]))
	body.WriteString(`</h2><p>`)
	template.HTMLEscape(&body, []byte(text[1]))
	body.WriteString(`</p><p><a href="/`)
	template.HTMLEscape(&body, []byte(l))
	body.WriteString(`">`)
	template.HTMLEscape(&body, []byte(msgs.Navbar.AriaLabels.GoToHomepage))
	body.WriteString(`</a></p></main>`)

	var buf bytes.Buffer
	err := documentTemplate.Execute(&buf, document{
		Lang:     l.HTMLLang(),
		Meta:     seo.Meta{Title: text[0], OG: seo.OpenGraph{Title: text[0]}},
		Theme:    theme.Name,
		Dark:     theme.Dark,
		PageID:   "not-found",
		Sections: []template.HTML{template.HTML(body.String())},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render not found page: %w", err)
	}
	return buf.Bytes(), nil
}
