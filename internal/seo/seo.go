// SPDX-License-Identifier: MIT
package seo

import (
	"strings"

	"github.com/thatcatcamp/lpsite/internal/locale"
)

type OpenGraph struct {
	Title       string
	Description string
	Type        string
	Locale      string
}

// Alternate is one hreflang link
type Alternate struct {
	HrefLang string
	Href     string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Alternates  []Alternate
	JSONLD      []string
}

// PageMeta builds the head metadata for path rendered in l. baseURL may be
// empty, in which case links stay relative.
func PageMeta(baseURL string, l locale.Locale, path, title, description string) Meta {
	m := Meta{
		Title:       title,
		Description: description,
		Canonical:   absolute(baseURL, locale.LocalePath(path, l)),
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
			Locale:      strings.ReplaceAll(l.HTMLLang(), "-", "_"),
		},
	}
	for _, alt := range locale.All() {
		m.Alternates = append(m.Alternates, Alternate{
			HrefLang: string(alt),
			Href:     absolute(baseURL, locale.LocalePath(path, alt)),
		})
	}
	m.Alternates = append(m.Alternates, Alternate{
		HrefLang: "x-default",
		Href:     absolute(baseURL, locale.LocalePath(path, locale.Default)),
	})
	return m
}

// AddJSONLD appends a schema payload, skipping values that fail to encode
func (m *Meta) AddJSONLD(v any) {
	if s := JSON(v); s != "" {
		m.JSONLD = append(m.JSONLD, s)
	}
}

func absolute(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}
