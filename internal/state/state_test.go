// SPDX-License-Identifier: MIT
package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisclosureToggle(t *testing.T) {
	d := Disclosure{}
	assert.True(t, d.Toggle().Expanded)
	assert.False(t, d.Toggle().Toggle().Expanded)
}

func TestAccordionItemsAreIndependent(t *testing.T) {
	a := NewAccordion()
	a = a.Toggle(0).Toggle(2)

	assert.True(t, a.Item(0).Expanded)
	assert.False(t, a.Item(1).Expanded)
	assert.True(t, a.Item(2).Expanded)
	assert.Equal(t, []int{0, 2}, a.Expanded(3))

	b := a.Toggle(0)
	assert.Equal(t, []int{2}, b.Expanded(3))
	assert.Equal(t, []int{0, 2}, a.Expanded(3), "transitions do not mutate the receiver")
}

func TestAccordionIgnoresNegativeIndex(t *testing.T) {
	a := NewAccordion(-1, 1)
	assert.Equal(t, []int{1}, a.Expanded(5))
}

func TestAccordionIgnoresIndicesPastTheLimit(t *testing.T) {
	a := NewAccordion(1, MaxAccordionItems, MaxAccordionItems+5)
	assert.Equal(t, []int{1}, a.Expanded(MaxAccordionItems*2))
	assert.Equal(t, []int{1}, a.Toggle(MaxAccordionItems).Expanded(MaxAccordionItems*2))
}

func TestMenu(t *testing.T) {
	m := Menu{}
	assert.True(t, m.Toggle().Open)
	assert.False(t, m.Toggle().Toggle().Open)
	assert.False(t, m.Toggle().Close().Open)
	assert.False(t, m.Close().Open)
}
