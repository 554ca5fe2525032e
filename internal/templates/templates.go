// SPDX-License-Identifier: MIT

// Package templates composes normalized sections into ordered page
// descriptors. It decides what appears and in which order, never how.
package templates

import (
	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/locale"
	"github.com/thatcatcamp/lpsite/internal/sections"
	"github.com/thatcatcamp/lpsite/internal/seo"
	"github.com/thatcatcamp/lpsite/internal/shell"
	"github.com/thatcatcamp/lpsite/internal/themes"
)

// Kind names a section renderer
type Kind string

const (
	KindNavbar       Kind = "navbar"
	KindHero         Kind = "hero"
	KindHeroAgency   Kind = "hero-agency"
	KindSocialProof  Kind = "social-proof"
	KindValueProps   Kind = "value-props"
	KindFeatures     Kind = "features"
	KindDeepDive     Kind = "deep-dive"
	KindMetrics      Kind = "metrics"
	KindUseCases     Kind = "use-cases"
	KindTestimonials Kind = "testimonials"
	KindPricing      Kind = "pricing"
	KindFAQ          Kind = "faq"
	KindFinalCTA     Kind = "final-cta"
	KindFooter       Kind = "footer"
	KindLegal        Kind = "legal"
)

// Descriptor is one section to render: which renderer, with which
// normalized props, under which theme and locale.
type Descriptor struct {
	Kind   Kind
	ID     string // anchor id
	Theme  themes.Theme
	Locale locale.Locale
	Props  any
}

// NavItem is an in-page anchor in the navbar
type NavItem struct {
	ID    string
	Label string
}

// NavbarProps is the navbar with its locale toggle resolved
type NavbarProps struct {
	Labels      shell.NavbarLabels
	HomeHref    string
	Links       []NavItem
	SwitchTo    locale.Locale
	SwitchHref  string
	SwitchLabel string
	Anchors     bool // false on legal pages, where links point back to the landing page
	LandingHref string
}

// FooterProps is the footer with its legal links resolved
type FooterProps struct {
	Labels        shell.FooterLabels
	PrivacyHref   string
	ImpressumHref string
}

// Page is an assembled landing or legal page
type Page struct {
	ID       string
	Path     string
	Locale   locale.Locale
	Theme    themes.Theme
	Title    string
	Sections []Descriptor
	Meta     seo.Meta

	landing *content.PageCopy
}

// Order is the fixed landing page section order, hero variant aside
var Order = []Kind{
	KindNavbar, KindHero, KindSocialProof, KindValueProps, KindFeatures,
	KindDeepDive, KindMetrics, KindUseCases, KindTestimonials, KindPricing,
	KindFAQ, KindFinalCTA, KindFooter,
}

// Assemble builds the landing page for pageIdentity. The agency identity
// swaps the hero variant; everything else is the same for every page.
func Assemble(theme themes.Theme, l locale.Locale, c content.PageCopy, pageIdentity string) Page {
	path := "/" + string(l) + "/" + pageIdentity
	hero := KindHero
	if pageIdentity == content.PageAgency {
		hero = KindHeroAgency
	}

	desc := func(kind Kind, id string, props any) Descriptor {
		return Descriptor{Kind: kind, ID: id, Theme: theme, Locale: l, Props: props}
	}

	page := Page{
		ID:     pageIdentity,
		Path:   path,
		Locale: l,
		Theme:  theme,
		Title:  c.Hero.Title,
		Sections: []Descriptor{
			desc(KindNavbar, "navbar", navbarProps(sections.NormalizeNavbar(c.Navbar, l), l, path, true)),
			desc(hero, "hero", sections.NormalizeHero(c.Hero)),
			desc(KindSocialProof, "social-proof", sections.NormalizeSocialProof(c.SocialProof)),
			desc(KindValueProps, "value-props", sections.NormalizeValueProps(c.ValueProps)),
			desc(KindFeatures, "features", sections.NormalizeFeatures(c.Features)),
			desc(KindDeepDive, "deep-dive", sections.NormalizeDeepDive(c.DeepDive)),
			desc(KindMetrics, "metrics", sections.NormalizeMetrics(c.Metrics)),
			desc(KindUseCases, "use-cases", sections.NormalizeUseCases(c.UseCases)),
			desc(KindTestimonials, "testimonials", sections.NormalizeTestimonials(c.Testimonials)),
			desc(KindPricing, "pricing", sections.NormalizePricing(c.Pricing)),
			desc(KindFAQ, "faq", sections.NormalizeFAQ(c.FAQ)),
			desc(KindFinalCTA, "final-cta", sections.NormalizeFinalCTA(c.FinalCTA)),
			desc(KindFooter, "footer", footerProps(sections.NormalizeFooter(c.Footer, l), l)),
		},
	}
	page.landing = &c
	page.Meta = landingMeta("", page, c)
	return page
}

// AssembleLegal builds a privacy or impressum page. Legal pages always use
// the locale's shared chrome.
func AssembleLegal(theme themes.Theme, l locale.Locale, pageID string, c content.LegalPageCopy) Page {
	path := "/" + string(l) + "/" + pageID
	msgs := shell.GetMessages(l)
	desc := func(kind Kind, id string, props any) Descriptor {
		return Descriptor{Kind: kind, ID: id, Theme: theme, Locale: l, Props: props}
	}

	page := Page{
		ID:     pageID,
		Path:   path,
		Locale: l,
		Theme:  theme,
		Title:  c.Title,
		Sections: []Descriptor{
			desc(KindNavbar, "navbar", navbarProps(msgs.Navbar, l, path, false)),
			desc(KindLegal, pageID, sections.NormalizeLegal(c)),
			desc(KindFooter, "footer", footerProps(msgs.Footer, l)),
		},
	}
	page.Meta = seo.PageMeta("", l, path, c.Title, "")
	return page
}

// WithBaseURL returns p with absolute canonical and alternate links
func (p Page) WithBaseURL(baseURL string) Page {
	if p.landing != nil {
		p.Meta = landingMeta(baseURL, p, *p.landing)
		return p
	}
	p.Meta = seo.PageMeta(baseURL, p.Locale, p.Path, p.Meta.Title, p.Meta.Description)
	return p
}

// WithRequestPath returns p with the navbar's locale switch pointing at
// the opposite-locale form of requestPath. Segments between the locale
// and the page id are kept; canonical links stay on p.Path.
func (p Page) WithRequestPath(requestPath string) Page {
	secs := make([]Descriptor, len(p.Sections))
	copy(secs, p.Sections)
	for i, d := range secs {
		if nav, ok := d.Props.(NavbarProps); ok {
			nav.SwitchHref = locale.OppositeLocalePath(requestPath)
			secs[i].Props = nav
		}
	}
	p.Sections = secs
	return p
}

// Kinds lists the section kinds of p in order
func (p Page) Kinds() []Kind {
	out := make([]Kind, len(p.Sections))
	for i, d := range p.Sections {
		out[i] = d.Kind
	}
	return out
}

func navbarProps(labels shell.NavbarLabels, l locale.Locale, path string, anchors bool) NavbarProps {
	target := locale.Opposite(l)
	return NavbarProps{
		Labels:   labels,
		HomeHref: "/" + string(l),
		Links: []NavItem{
			{ID: "features", Label: labels.Links.Features},
			{ID: "pricing", Label: labels.Links.Pricing},
			{ID: "use-cases", Label: labels.Links.UseCases},
			{ID: "faq", Label: labels.Links.FAQ},
		},
		SwitchTo:    target,
		SwitchHref:  locale.OppositeLocalePath(path),
		SwitchLabel: labels.SwitchLabel(target),
		Anchors:     anchors,
		LandingHref: "/" + string(l),
	}
}

func footerProps(labels shell.FooterLabels, l locale.Locale) FooterProps {
	return FooterProps{
		Labels:        labels,
		PrivacyHref:   "/" + string(l) + "/" + content.LegalPrivacy,
		ImpressumHref: "/" + string(l) + "/" + content.LegalImpressum,
	}
}

func landingMeta(baseURL string, p Page, c content.PageCopy) seo.Meta {
	meta := seo.PageMeta(baseURL, p.Locale, p.Path, c.Hero.Title, c.Hero.Subtitle)
	meta.AddJSONLD(seo.WebPage(c.Hero.Title, c.Hero.Subtitle, meta.Canonical, p.Locale.HTMLLang()))
	if c.FAQ != nil {
		var qs []seo.Question
		for _, item := range c.FAQ.Items {
			qs = append(qs, seo.Question{Question: item.Question, Answer: item.Answer})
		}
		if faq := seo.FAQPage(qs); faq != nil {
			meta.AddJSONLD(faq)
		}
	}
	return meta
}
