// SPDX-License-Identifier: MIT

// Package state holds the small value-type state machines behind the
// interactive sections. Every transition returns a new value.
package state

// Disclosure is one expandable item
type Disclosure struct {
	Expanded bool
}

// Toggle flips the item between collapsed and expanded
func (d Disclosure) Toggle() Disclosure {
	return Disclosure{Expanded: !d.Expanded}
}

// Accordion tracks expansion per item. Items are independent and any
// number of them may be open at once.
type Accordion struct {
	open map[int]bool
}

// MaxAccordionItems bounds the item indices an accordion tracks
const MaxAccordionItems = 64

// NewAccordion returns an accordion with the given items expanded.
// Indices outside [0, MaxAccordionItems) are ignored.
func NewAccordion(expanded ...int) Accordion {
	open := make(map[int]bool)
	for _, i := range expanded {
		if i >= 0 && i < MaxAccordionItems {
			open[i] = true
		}
	}
	return Accordion{open: open}
}

// Item returns the disclosure state of item i
func (a Accordion) Item(i int) Disclosure {
	return Disclosure{Expanded: a.open[i]}
}

// Toggle flips item i and leaves every other item alone
func (a Accordion) Toggle(i int) Accordion {
	return a.set(i, a.Item(i).Toggle().Expanded)
}

// Expanded lists the open items in ascending order
func (a Accordion) Expanded(count int) []int {
	var out []int
	for i := 0; i < count; i++ {
		if a.open[i] {
			out = append(out, i)
		}
	}
	return out
}

func (a Accordion) set(i int, expanded bool) Accordion {
	if i < 0 || i >= MaxAccordionItems {
		return a
	}
	next := make(map[int]bool, len(a.open)+1)
	for k, v := range a.open {
		if v {
			next[k] = true
		}
	}
	if expanded {
		next[i] = true
	} else {
		delete(next, i)
	}
	return Accordion{open: next}
}

// Menu is the navbar's mobile menu
type Menu struct {
	Open bool
}

// Toggle opens a closed menu and closes an open one
func (m Menu) Toggle() Menu {
	return Menu{Open: !m.Open}
}

// Close closes the menu, as following a link does
func (m Menu) Close() Menu {
	return Menu{}
}
