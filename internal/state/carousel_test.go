// SPDX-License-Identifier: MIT
package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarouselClampsWithoutWrapping(t *testing.T) {
	c := NewCarousel(0, 5, 2)
	assert.True(t, c.PrevDisabled())
	assert.Equal(t, 0, c.Prev().Start)

	for i := 0; i < 10; i++ {
		c = c.Next()
	}
	assert.Equal(t, 3, c.Start)
	assert.True(t, c.NextDisabled())
	assert.False(t, c.PrevDisabled())
}

func TestCarouselStartAlwaysInRange(t *testing.T) {
	for count := 0; count <= 6; count++ {
		for visible := 1; visible <= 3; visible++ {
			for start := -2; start <= 8; start++ {
				c := NewCarousel(start, count, visible)
				assert.GreaterOrEqual(t, c.Start, 0)
				assert.LessOrEqual(t, c.Start, c.MaxStart())
				assert.GreaterOrEqual(t, c.Next().Start, 0)
				assert.LessOrEqual(t, c.Next().Start, c.MaxStart())
				assert.GreaterOrEqual(t, c.Prev().Start, 0)
			}
		}
	}
}

func TestCarouselResize(t *testing.T) {
	c := NewCarousel(2, 5, 1)
	assert.Equal(t, 2, c.Resize(2).Start, "start kept when still valid")

	c = NewCarousel(4, 5, 1)
	assert.Equal(t, 3, c.Resize(2).Start, "start re-clamped when the window grows")
}

func TestCarouselFewerItemsThanWindow(t *testing.T) {
	c := NewCarousel(0, 1, 2)
	assert.True(t, c.PrevDisabled())
	assert.True(t, c.NextDisabled())
	from, to := c.Window()
	assert.Equal(t, 0, from)
	assert.Equal(t, 1, to)

	empty := NewCarousel(3, 0, 1)
	assert.Equal(t, 0, empty.Start)
	assert.True(t, empty.NextDisabled())
}

func TestCarouselShows(t *testing.T) {
	c := NewCarousel(1, 5, 2)
	assert.False(t, c.Shows(0))
	assert.True(t, c.Shows(1))
	assert.True(t, c.Shows(2))
	assert.False(t, c.Shows(3))
}

func TestVisibleForWidth(t *testing.T) {
	assert.Equal(t, 1, VisibleForWidth(375))
	assert.Equal(t, 1, VisibleForWidth(767))
	assert.Equal(t, 2, VisibleForWidth(768))
	assert.Equal(t, 2, VisibleForWidth(1440))
}

func TestTestimonialCarouselActiveIndexClamped(t *testing.T) {
	c := NewCarousel(7, 3, 1)
	assert.Equal(t, 2, c.Start)
	assert.True(t, c.NextDisabled())
}
