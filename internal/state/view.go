// SPDX-License-Identifier: MIT
package state

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/thatcatcamp/lpsite/internal/content"
)

// Query keys carrying view state between server-rendered pages
const (
	KeyBilling      = "billing"
	KeyFAQ          = "faq"
	KeyTestimonial  = "t"
	KeyUseCase      = "uc"
	KeyViewport     = "vw"
	KeyMenu         = "menu"
	defaultViewport = BreakpointMD
)

// View is the per-request state of every interactive section.
// Carousel positions are raw; callers clamp them once the item counts are known.
type View struct {
	Billing          Billing
	FAQ              Accordion
	TestimonialStart int
	UseCaseStart     int
	Viewport         int
	Menu             Menu
}

// ParseView reads the view state from query values. Malformed values fall
// back to the initial state of that machine.
func ParseView(q url.Values) View {
	v := View{
		Billing:  ParseBilling(q.Get(KeyBilling)),
		Viewport: defaultViewport,
		Menu:     Menu{Open: q.Get(KeyMenu) == "open"},
	}

	var open []int
	for _, raw := range strings.SplitN(q.Get(KeyFAQ), ",", MaxAccordionItems+1) {
		if len(open) == MaxAccordionItems {
			break
		}
		if i, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && i >= 0 && i < MaxAccordionItems {
			open = append(open, i)
		}
	}
	v.FAQ = NewAccordion(open...)

	v.TestimonialStart = nonNegative(q.Get(KeyTestimonial))
	v.UseCaseStart = nonNegative(q.Get(KeyUseCase))
	if px, err := strconv.Atoi(q.Get(KeyViewport)); err == nil && px > 0 {
		v.Viewport = px
	}
	return v
}

// Testimonials returns the testimonial carousel, one slide at a time
func (v View) Testimonials(count int) Carousel {
	return NewCarousel(v.TestimonialStart, count, 1)
}

// UseCases returns the use-case carousel sized for the viewport
func (v View) UseCases(count int) Carousel {
	return NewCarousel(v.UseCaseStart, count, VisibleForWidth(v.Viewport))
}

// Query encodes v back into query values. Initial states are omitted.
func (v View) Query() url.Values {
	q := url.Values{}
	if v.Billing.Active() == content.Yearly {
		q.Set(KeyBilling, string(v.Billing.Active()))
	}
	if len(v.FAQ.open) > 0 {
		var idx []int
		for i, open := range v.FAQ.open {
			if open {
				idx = append(idx, i)
			}
		}
		sort.Ints(idx)
		parts := make([]string, len(idx))
		for n, i := range idx {
			parts[n] = strconv.Itoa(i)
		}
		q.Set(KeyFAQ, strings.Join(parts, ","))
	}
	if v.TestimonialStart > 0 {
		q.Set(KeyTestimonial, strconv.Itoa(v.TestimonialStart))
	}
	if v.UseCaseStart > 0 {
		q.Set(KeyUseCase, strconv.Itoa(v.UseCaseStart))
	}
	if v.Viewport > 0 && v.Viewport != defaultViewport {
		q.Set(KeyViewport, strconv.Itoa(v.Viewport))
	}
	if v.Menu.Open {
		q.Set(KeyMenu, "open")
	}
	return q
}

// Href renders v as a relative query string link, "?" alone for the initial state
func (v View) Href() string {
	return "?" + v.Query().Encode()
}

func nonNegative(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// WithBilling returns v with the billing mode replaced
func (v View) WithBilling(b Billing) View {
	v.Billing = b
	return v
}

// WithFAQToggled returns v with FAQ item i flipped
func (v View) WithFAQToggled(i int) View {
	v.FAQ = v.FAQ.Toggle(i)
	return v
}

// WithTestimonial returns v with the testimonial carousel moved to c
func (v View) WithTestimonial(c Carousel) View {
	v.TestimonialStart = c.Start
	return v
}

// WithUseCase returns v with the use-case carousel moved to c
func (v View) WithUseCase(c Carousel) View {
	v.UseCaseStart = c.Start
	return v
}

// WithMenu returns v with the menu replaced
func (v View) WithMenu(m Menu) View {
	v.Menu = m
	return v
}
