// SPDX-License-Identifier: MIT
package state

// BreakpointMD is the viewport width at which use cases show two cards
const BreakpointMD = 768

// Carousel is a window of Visible items starting at Start over Count items.
// Start always stays within [0, max(0, Count-Visible)] and never wraps.
type Carousel struct {
	Start   int
	Count   int
	Visible int
}

// NewCarousel returns a clamped carousel
func NewCarousel(start, count, visible int) Carousel {
	if count < 0 {
		count = 0
	}
	if visible < 1 {
		visible = 1
	}
	return Carousel{Start: start, Count: count, Visible: visible}.clamp()
}

// VisibleForWidth is the use-case window size for a viewport width in px
func VisibleForWidth(px int) int {
	if px >= BreakpointMD {
		return 2
	}
	return 1
}

// MaxStart is the last valid Start
func (c Carousel) MaxStart() int {
	if c.Count-c.Visible > 0 {
		return c.Count - c.Visible
	}
	return 0
}

// Next moves the window one item forward
func (c Carousel) Next() Carousel {
	c.Start++
	return c.clamp()
}

// Prev moves the window one item back
func (c Carousel) Prev() Carousel {
	c.Start--
	return c.clamp()
}

// Resize changes the window size. Start is kept when still valid.
func (c Carousel) Resize(visible int) Carousel {
	if visible < 1 {
		visible = 1
	}
	c.Visible = visible
	return c.clamp()
}

func (c Carousel) PrevDisabled() bool {
	return c.Start <= 0
}

func (c Carousel) NextDisabled() bool {
	return c.Start >= c.MaxStart()
}

// Window returns the half-open index range [from, to) currently shown
func (c Carousel) Window() (from, to int) {
	to = c.Start + c.Visible
	if to > c.Count {
		to = c.Count
	}
	return c.Start, to
}

// Shows reports whether item i is inside the window
func (c Carousel) Shows(i int) bool {
	from, to := c.Window()
	return i >= from && i < to
}

func (c Carousel) clamp() Carousel {
	if c.Start > c.MaxStart() {
		c.Start = c.MaxStart()
	}
	if c.Start < 0 {
		c.Start = 0
	}
	return c
}
