// SPDX-License-Identifier: MIT

// Package blocks renders page descriptors to HTML
package blocks

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/sections"
	"github.com/thatcatcamp/lpsite/internal/state"
	"github.com/thatcatcamp/lpsite/internal/templates"
)

var sectionTemplates = template.Must(template.New("sections").Parse(sectionsHTML))

// RenderSection renders one descriptor under view state v
func RenderSection(d templates.Descriptor, v state.View) (template.HTML, error) {
	data, err := sectionData(d, v)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := sectionTemplates.ExecuteTemplate(&buf, string(d.Kind), data); err != nil {
		return "", fmt.Errorf("failed to render %s section: %w", d.Kind, err)
	}
	return template.HTML(buf.String()), nil
}

// sectionData builds the template input for d. Interactive sections get
// their state machines resolved here so templates only print values.
func sectionData(d templates.Descriptor, v state.View) (any, error) {
	switch d.Kind {
	case templates.KindNavbar:
		p, ok := d.Props.(templates.NavbarProps)
		if !ok {
			return nil, propsError(d)
		}
		return navbarData(p, v), nil
	case templates.KindHero, templates.KindHeroAgency:
		return typed[sections.Hero](d)
	case templates.KindSocialProof:
		return typed[sections.SocialProof](d)
	case templates.KindValueProps, templates.KindFeatures:
		return typed[sections.List](d)
	case templates.KindDeepDive:
		return typed[sections.DeepDive](d)
	case templates.KindMetrics:
		return typed[sections.Metrics](d)
	case templates.KindUseCases:
		p, ok := d.Props.(sections.List)
		if !ok {
			return nil, propsError(d)
		}
		return useCasesData(p, v), nil
	case templates.KindTestimonials:
		p, ok := d.Props.(sections.Testimonials)
		if !ok {
			return nil, propsError(d)
		}
		return testimonialsData(p, v), nil
	case templates.KindPricing:
		p, ok := d.Props.(sections.Pricing)
		if !ok {
			return nil, propsError(d)
		}
		return pricingData(p, v), nil
	case templates.KindFAQ:
		p, ok := d.Props.(sections.FAQ)
		if !ok {
			return nil, propsError(d)
		}
		return faqData(p, v), nil
	case templates.KindFinalCTA:
		return typed[sections.FinalCTA](d)
	case templates.KindFooter:
		return typed[templates.FooterProps](d)
	case templates.KindLegal:
		p, ok := d.Props.(sections.Legal)
		if !ok {
			return nil, propsError(d)
		}
		return legalData(p)
	default:
		return nil, fmt.Errorf("unknown section kind: %s", d.Kind)
	}
}

func typed[T any](d templates.Descriptor) (any, error) {
	p, ok := d.Props.(T)
	if !ok {
		return nil, propsError(d)
	}
	return p, nil
}

func propsError(d templates.Descriptor) error {
	return fmt.Errorf("invalid props %T for section kind %s", d.Props, d.Kind)
}

type navbar struct {
	templates.NavbarProps
	MenuOpen      bool
	MenuHref      string
	MenuAriaLabel string
}

func navbarData(p templates.NavbarProps, v state.View) navbar {
	label := p.Labels.AriaLabels.OpenMenu
	if v.Menu.Open {
		label = p.Labels.AriaLabels.CloseMenu
	}
	return navbar{
		NavbarProps:   p,
		MenuOpen:      v.Menu.Open,
		MenuHref:      v.WithMenu(v.Menu.Toggle()).Href(),
		MenuAriaLabel: label,
	}
}

type carouselControls struct {
	PrevHref     string
	NextHref     string
	PrevDisabled bool
	NextDisabled bool
}

type useCaseCard struct {
	content.Item
	Visible bool
}

type useCases struct {
	sections.List
	Cards []useCaseCard
	carouselControls
}

func useCasesData(p sections.List, v state.View) useCases {
	c := v.UseCases(len(p.Items))
	out := useCases{
		List: p,
		carouselControls: carouselControls{
			PrevHref:     v.WithUseCase(c.Prev()).Href() + "#use-cases",
			NextHref:     v.WithUseCase(c.Next()).Href() + "#use-cases",
			PrevDisabled: c.PrevDisabled(),
			NextDisabled: c.NextDisabled(),
		},
	}
	for i, item := range p.Items {
		out.Cards = append(out.Cards, useCaseCard{Item: item, Visible: c.Shows(i)})
	}
	return out
}

type testimonials struct {
	sections.Testimonials
	Active *sections.Testimonial
	Index  int
	Total  int
	carouselControls
}

func testimonialsData(p sections.Testimonials, v state.View) testimonials {
	c := v.Testimonials(len(p.Entries))
	out := testimonials{
		Testimonials: p,
		Index:        c.Start,
		Total:        len(p.Entries),
		carouselControls: carouselControls{
			PrevHref:     v.WithTestimonial(c.Prev()).Href() + "#testimonials",
			NextHref:     v.WithTestimonial(c.Next()).Href() + "#testimonials",
			PrevDisabled: c.PrevDisabled(),
			NextDisabled: c.NextDisabled(),
		},
	}
	if len(p.Entries) > 0 {
		out.Active = &p.Entries[c.Start]
	}
	return out
}

type pricingCard struct {
	content.PricingPlanCopy
	Active state.ActivePrice
}

type pricing struct {
	sections.Pricing
	Cards                 []pricingCard
	Yearly                bool
	MonthlyHref           string
	YearlyHref            string
	ActiveSingleUserLabel string
}

func pricingData(p sections.Pricing, v state.View) pricing {
	out := pricing{
		Pricing:               p,
		Yearly:                v.Billing.Active() == content.Yearly,
		MonthlyHref:           v.WithBilling(v.Billing.Select(content.Monthly)).Href() + "#pricing",
		YearlyHref:            v.WithBilling(v.Billing.Select(content.Yearly)).Href() + "#pricing",
		ActiveSingleUserLabel: v.Billing.SingleUserLabel(p.SingleUserLabels),
	}
	for _, plan := range p.Plans {
		out.Cards = append(out.Cards, pricingCard{PricingPlanCopy: plan, Active: v.Billing.PlanPrice(plan)})
	}
	return out
}

type faqItem struct {
	content.FAQItem
	Open       bool
	ToggleHref string
}

type faq struct {
	sections.FAQ
	Entries []faqItem
}

func faqData(p sections.FAQ, v state.View) faq {
	out := faq{FAQ: p}
	for i, item := range p.Items {
		out.Entries = append(out.Entries, faqItem{
			FAQItem:    item,
			Open:       v.FAQ.Item(i).Expanded,
			ToggleHref: v.WithFAQToggled(i).Href() + "#faq",
		})
	}
	return out
}

type legalSection struct {
	Heading    string
	Paragraphs []template.HTML
}

type legal struct {
	Title    string
	Sections []legalSection
}

func legalData(p sections.Legal) (legal, error) {
	out := legal{Title: p.Title}
	for _, s := range p.Sections {
		rendered := legalSection{Heading: s.Heading}
		for _, para := range s.Paragraphs {
			h, err := RenderMarkdown(para)
			if err != nil {
				return legal{}, err
			}
			rendered.Paragraphs = append(rendered.Paragraphs, h)
		}
		out.Sections = append(out.Sections, rendered)
	}
	return out, nil
}
