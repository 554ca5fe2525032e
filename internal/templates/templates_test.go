// SPDX-License-Identifier: MIT
package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/locale"
	"github.com/thatcatcamp/lpsite/internal/sections"
	"github.com/thatcatcamp/lpsite/internal/shell"
	"github.com/thatcatcamp/lpsite/internal/themes"
)

func loadCopy(t *testing.T, l locale.Locale, id string) content.PageCopy {
	t.Helper()
	repo, err := content.NewRepository(content.EmbeddedSource(), nil)
	require.NoError(t, err)
	c, ok := repo.LoadPageCopy(l, id)
	require.True(t, ok)
	return c
}

func TestAssembleFixedOrder(t *testing.T) {
	page := Assemble(themes.ResolveOrDefault("light"), locale.English, loadCopy(t, locale.English, content.PageExample), content.PageExample)
	assert.Equal(t, Order, page.Kinds())
}

func TestAssembleAgencyHero(t *testing.T) {
	c := loadCopy(t, locale.German, content.PageAgency)
	page := Assemble(themes.ResolveOrDefault("dark"), locale.German, c, content.PageAgency)

	kinds := page.Kinds()
	assert.Equal(t, KindHeroAgency, kinds[1])
	assert.Len(t, kinds, len(Order))
	for i, k := range kinds {
		if i != 1 {
			assert.Equal(t, Order[i], k)
		}
	}

	// same copy under another identity gets the standard hero
	assert.Equal(t, KindHero, Assemble(themes.ResolveOrDefault("dark"), locale.German, c, content.PageExample).Kinds()[1])
}

func TestAssembleDefaultsAbsentSections(t *testing.T) {
	page := Assemble(themes.ResolveOrDefault(""), locale.English, loadCopy(t, locale.English, content.PageAgency), content.PageAgency)

	metrics := page.Sections[6].Props.(sections.Metrics)
	assert.Equal(t, "Metrics", metrics.Heading)
	faq := page.Sections[10].Props.(sections.FAQ)
	assert.Equal(t, "Frequently asked questions", faq.Heading)
}

func TestAssembleNavbarOverride(t *testing.T) {
	agency := Assemble(themes.ResolveOrDefault(""), locale.English, loadCopy(t, locale.English, content.PageAgency), content.PageAgency)
	nav := agency.Sections[0].Props.(NavbarProps)
	assert.Equal(t, "Logo for Agencies", nav.Labels.Brand)

	example := Assemble(themes.ResolveOrDefault(""), locale.German, loadCopy(t, locale.German, content.PageExample), content.PageExample)
	nav = example.Sections[0].Props.(NavbarProps)
	assert.Equal(t, shell.GetMessages(locale.German).Navbar, nav.Labels)
	assert.Equal(t, "/en/example-lp", nav.SwitchHref)
	assert.Equal(t, locale.English, nav.SwitchTo)
	assert.Equal(t, "Zu Englisch wechseln", nav.SwitchLabel)
}

func TestWithRequestPathKeepsRoutingSegments(t *testing.T) {
	page := Assemble(themes.ResolveOrDefault(""), locale.English, loadCopy(t, locale.English, content.PageExample), content.PageExample).
		WithBaseURL("https://lp.example.com")
	routed := page.WithRequestPath("/en/saas/berlin/example-lp")

	nav := routed.Sections[0].Props.(NavbarProps)
	assert.Equal(t, "/de/saas/berlin/example-lp", nav.SwitchHref)
	assert.Equal(t, "https://lp.example.com/en/example-lp", routed.Meta.Canonical)

	// the original page is untouched
	assert.Equal(t, "/de/example-lp", page.Sections[0].Props.(NavbarProps).SwitchHref)
}

func TestDescriptorsCarryThemeAndLocale(t *testing.T) {
	theme := themes.ResolveOrDefault("navy")
	page := Assemble(theme, locale.German, loadCopy(t, locale.German, content.PageExample), content.PageExample)
	for _, d := range page.Sections {
		assert.Equal(t, theme, d.Theme)
		assert.Equal(t, locale.German, d.Locale)
	}
}

func TestAssembleLegal(t *testing.T) {
	legal := content.LegalPageCopy{Title: "Impressum", Content: content.LegalContent{
		Sections: []content.LegalSection{{Paragraphs: []string{"Firma"}}},
	}}
	page := AssembleLegal(themes.ResolveOrDefault(""), locale.German, content.LegalImpressum, legal)

	assert.Equal(t, []Kind{KindNavbar, KindLegal, KindFooter}, page.Kinds())
	assert.Equal(t, "/de/impressum", page.Path)
	nav := page.Sections[0].Props.(NavbarProps)
	assert.Equal(t, "/en/impressum", nav.SwitchHref)
	assert.False(t, nav.Anchors)
	footer := page.Sections[2].Props.(FooterProps)
	assert.Equal(t, "/de/privacy", footer.PrivacyHref)
}

func TestPageMeta(t *testing.T) {
	c := loadCopy(t, locale.English, content.PageExample)
	page := Assemble(themes.ResolveOrDefault(""), locale.English, c, content.PageExample).WithBaseURL("https://lp.example.com")

	assert.Equal(t, c.Hero.Title, page.Meta.Title)
	assert.Equal(t, "https://lp.example.com/en/example-lp", page.Meta.Canonical)
	require.Len(t, page.Meta.JSONLD, 2)
	assert.Contains(t, page.Meta.JSONLD[0], "https://lp.example.com/en/example-lp")
	assert.Contains(t, page.Meta.JSONLD[1], "FAQPage")
}
