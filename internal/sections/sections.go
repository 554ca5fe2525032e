// SPDX-License-Identifier: MIT

// Package sections turns raw page copy into total, render-ready values.
// Optional sections that are absent are replaced whole by fixed defaults;
// fields are never merged one by one.
package sections

import (
	"strings"

	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/locale"
	"github.com/thatcatcamp/lpsite/internal/shell"
)

// Caps applied when normalizing testimonials
const (
	MaxTestimonials = 3
	MaxOutcomes     = 2
)

// CustomerSeparator splits "company · person" in testimonial copy
const CustomerSeparator = " · "

// Hero is the normalized hero section
type Hero struct {
	Eyebrow      string
	Title        string
	Subtitle     string
	PrimaryCTA   string
	SecondaryCTA string
}

// SocialProof is the normalized logo strip
type SocialProof struct {
	Label string
	Logos []string
}

// List backs value props, features, use cases and security
type List struct {
	Eyebrow  string
	Heading  string
	Subtitle string
	Items    []content.Item
}

// Step is one numbered deep-dive step
type Step struct {
	Number int
	Title  string
	Body   string
}

// DeepDive is the normalized walkthrough section
type DeepDive struct {
	Eyebrow  string
	Heading  string
	Subtitle string
	Steps    []Step
}

// Integrations is the normalized integrations grid
type Integrations struct {
	Eyebrow  string
	Heading  string
	Subtitle string
	Names    []string
}

// Metrics is the normalized metrics grid
type Metrics struct {
	Heading  string
	Subtitle string
	Metrics  []content.Metric
	Columns  int
}

// Testimonial is one carousel slide, whichever copy shape it came from
type Testimonial struct {
	Company     string
	Person      string
	Outcome     string
	Description string
	Outcomes    []content.Outcome
	Modules     []string
}

// Testimonials is the normalized testimonials carousel
type Testimonials struct {
	Heading          string
	Subtitle         string
	UsedModulesLabel string
	GoogleReviews    *content.GoogleReviews
	PreviousLabel    string
	NextLabel        string
	Entries          []Testimonial
}

// Pricing is the normalized pricing section. Plans keep both billing
// modes; the active one is picked at render time.
type Pricing struct {
	Heading          string
	Subtitle         string
	Helper           string
	SingleUserLabel  string
	SingleUserTitle  string
	Toggle           *content.BillingToggleCopy
	SingleUserLabels content.SingleUserPrice
	FooterNote       string
	Plans            []content.PricingPlanCopy
	Columns          int
}

// FAQ is the normalized FAQ list
type FAQ struct {
	Heading  string
	Subtitle string
	Items    []content.FAQItem
}

// FinalCTA is the normalized closing call to action
type FinalCTA struct {
	Heading  string
	Subtitle string
	CTALabel string
}

// Legal is a normalized privacy or impressum page body
type Legal struct {
	Title    string
	Sections []content.LegalSection
}

func NormalizeHero(c content.HeroCopy) Hero {
	return Hero{
		Eyebrow:      strings.TrimSpace(c.Eyebrow),
		Title:        c.Title,
		Subtitle:     c.Subtitle,
		PrimaryCTA:   c.PrimaryCTALabel,
		SecondaryCTA: c.SecondaryCTALabel,
	}
}

func NormalizeSocialProof(c content.SocialProofCopy) SocialProof {
	return SocialProof{Label: c.Label, Logos: nonEmpty(c.Logos)}
}

func NormalizeValueProps(c content.ListCopy) List {
	return normalizeList(c)
}

func NormalizeFeatures(c content.ListCopy) List {
	return normalizeList(c)
}

// NormalizeDeepDive numbers the steps from 1
func NormalizeDeepDive(c *content.DeepDiveCopy) DeepDive {
	if c == nil {
		return DeepDive{Eyebrow: "Placeholder", Heading: "Deep Dive", Subtitle: "Learn more"}
	}
	d := DeepDive{Eyebrow: c.Eyebrow, Heading: c.Heading, Subtitle: c.Subtitle}
	for i, s := range c.Steps {
		d.Steps = append(d.Steps, Step{Number: i + 1, Title: s.Title, Body: s.Body})
	}
	return d
}

// NormalizeMetrics collapses whitespace in every metric string
func NormalizeMetrics(c *content.MetricsCopy) Metrics {
	if c == nil {
		return Metrics{Heading: "Metrics", Subtitle: "Proven results", Columns: MetricsColumns(0)}
	}
	m := Metrics{
		Heading:  CollapseWhitespace(c.Heading),
		Subtitle: CollapseWhitespace(c.Subtitle),
		Columns:  MetricsColumns(len(c.Metrics)),
	}
	for _, metric := range c.Metrics {
		m.Metrics = append(m.Metrics, content.Metric{
			Value:       CollapseWhitespace(metric.Value),
			Label:       CollapseWhitespace(metric.Label),
			Description: CollapseWhitespace(metric.Description),
		})
	}
	return m
}

func NormalizeUseCases(c *content.ListCopy) List {
	if c == nil {
		return List{Heading: "Use Cases", Subtitle: "Built for your workflows"}
	}
	return normalizeList(*c)
}

func NormalizeIntegrations(c *content.IntegrationsCopy) Integrations {
	if c == nil {
		return Integrations{Heading: "Integrations", Subtitle: "Works with your tools"}
	}
	out := Integrations{Eyebrow: c.Eyebrow, Heading: c.Heading, Subtitle: c.Subtitle}
	for _, i := range c.Integrations {
		if name := strings.TrimSpace(i.Name); name != "" {
			out.Names = append(out.Names, name)
		}
	}
	return out
}

func NormalizeSecurity(c *content.ListCopy) List {
	if c == nil {
		return List{Heading: "Security", Subtitle: "Enterprise-grade protection"}
	}
	return normalizeList(*c)
}

// NormalizeTestimonials keeps at most MaxTestimonials entries with at most
// MaxOutcomes outcomes each.
func NormalizeTestimonials(c *content.TestimonialsCopy) Testimonials {
	if c == nil {
		return Testimonials{
			Heading:       "What customers say",
			Subtitle:      "Trusted by teams worldwide",
			PreviousLabel: "Previous testimonial",
			NextLabel:     "Next testimonial",
		}
	}

	t := Testimonials{
		Heading:          c.Heading,
		Subtitle:         c.Subtitle,
		UsedModulesLabel: c.UsedModulesLabel,
		GoogleReviews:    c.GoogleReviews,
		PreviousLabel:    "Previous testimonial",
		NextLabel:        "Next testimonial",
	}
	if c.Navigation != nil {
		if c.Navigation.Previous != "" {
			t.PreviousLabel = c.Navigation.Previous
		}
		if c.Navigation.Next != "" {
			t.NextLabel = c.Navigation.Next
		}
	}

	entries := c.Testimonials
	if len(entries) > MaxTestimonials {
		entries = entries[:MaxTestimonials]
	}
	for _, e := range entries {
		t.Entries = append(t.Entries, normalizeTestimonial(e))
	}
	return t
}

func normalizeTestimonial(e content.TestimonialCopy) Testimonial {
	if e.Customer == "" {
		// quote, name, role, metric
		out := Testimonial{Company: e.Name, Person: e.Role, Description: e.Quote}
		if e.Metric != "" {
			out.Outcomes = []content.Outcome{{Value: e.Metric}}
		}
		return out
	}

	company, person := SplitCustomer(e.Customer)
	outcomes := e.Outcomes
	if len(outcomes) > MaxOutcomes {
		outcomes = outcomes[:MaxOutcomes]
	}
	return Testimonial{
		Company:     company,
		Person:      person,
		Outcome:     e.Outcome,
		Description: e.Description,
		Outcomes:    outcomes,
		Modules:     e.Modules,
	}
}

// SplitCustomer splits "company · person". Without the separator the whole
// string is the company and person is empty.
func SplitCustomer(customer string) (company, person string) {
	before, after, found := strings.Cut(customer, CustomerSeparator)
	if !found {
		return strings.TrimSpace(customer), ""
	}
	company = strings.TrimSpace(before)
	if company == "" {
		company = customer
	}
	return company, strings.TrimSpace(after)
}

func NormalizePricing(c *content.PricingCopy) Pricing {
	if c == nil {
		return Pricing{
			Heading:  "Simple pricing",
			Subtitle: "Choose the plan that works for you",
			Columns:  PricingColumns(0),
		}
	}
	p := Pricing{
		Heading:         c.Heading,
		Subtitle:        c.Subtitle,
		Helper:          c.Helper,
		SingleUserLabel: c.SingleUserLabel,
		SingleUserTitle: c.SingleUserTitle,
		Toggle:          c.BillingToggle,
		FooterNote:      c.FooterNote,
		Plans:           c.Plans,
		Columns:         PricingColumns(len(c.Plans)),
	}
	if c.SingleUserLabels != nil {
		p.SingleUserLabels = *c.SingleUserLabels
	}
	return p
}

func NormalizeFAQ(c *content.FAQCopy) FAQ {
	if c == nil {
		return FAQ{Heading: "Frequently asked questions", Subtitle: "Everything you need to know"}
	}
	return FAQ{Heading: c.Heading, Subtitle: c.Subtitle, Items: c.Items}
}

func NormalizeFinalCTA(c content.FinalCTACopy) FinalCTA {
	return FinalCTA{Heading: c.Heading, Subtitle: c.Subtitle, CTALabel: c.CTALabel}
}

// NormalizeNavbar prefers the page's own labels over the locale's chrome
func NormalizeNavbar(override *shell.NavbarLabels, l locale.Locale) shell.NavbarLabels {
	if override != nil {
		return *override
	}
	return shell.GetMessages(l).Navbar
}

// NormalizeFooter prefers the page's own labels over the locale's chrome
func NormalizeFooter(override *shell.FooterLabels, l locale.Locale) shell.FooterLabels {
	if override != nil {
		return *override
	}
	return shell.GetMessages(l).Footer
}

// NormalizeLegal drops sections that have neither a heading nor text
func NormalizeLegal(c content.LegalPageCopy) Legal {
	out := Legal{Title: c.Title}
	for _, s := range c.Content.Sections {
		paragraphs := nonEmpty(s.Paragraphs)
		if strings.TrimSpace(s.Heading) == "" && len(paragraphs) == 0 {
			continue
		}
		out.Sections = append(out.Sections, content.LegalSection{Heading: s.Heading, Paragraphs: paragraphs})
	}
	return out
}

// PricingColumns is 2 for exactly two plans and 3 otherwise
func PricingColumns(plans int) int {
	if plans == 2 {
		return 2
	}
	return 3
}

// MetricsColumns is 4 for exactly four metrics and 3 otherwise
func MetricsColumns(metrics int) int {
	if metrics == 4 {
		return 4
	}
	return 3
}

// CollapseWhitespace replaces runs of whitespace with one space and trims
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func normalizeList(c content.ListCopy) List {
	return List{Eyebrow: c.Eyebrow, Heading: c.Heading, Subtitle: c.Subtitle, Items: c.Items}
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
