// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCSSSectionLayout(t *testing.T) {
	css := GenerateCSS(ResolveOrDefault("slate").Colors())

	for _, rule := range []string{
		"section {\n  padding: 80px 24px;",
		".grid {\n  display: grid;",
		".grid-cols-2 { grid-template-columns: repeat(2, minmax(0, 1fr)); }",
		".grid-cols-3 { grid-template-columns: repeat(3, minmax(0, 1fr)); }",
		".grid-cols-4 { grid-template-columns: repeat(4, minmax(0, 1fr)); }",
		`.carousel-control[aria-disabled="true"]`,
		".popular {\n  border-color: var(--color-primary);",
		"details summary {",
	} {
		assert.Contains(t, css, rule)
	}
}

func TestGenerateCSSAccentFollowsPrimary(t *testing.T) {
	css := GenerateCSS(ResolveOrDefault("indigo").Colors())
	assert.Contains(t, css, "--color-accent: var(--color-primary);")
	assert.Contains(t, css, "--color-accent-contrast: var(--color-primary-contrast);")
}

func TestStylesheetPerTheme(t *testing.T) {
	for _, theme := range List() {
		t.Run(theme.Name, func(t *testing.T) {
			colors := theme.Colors()
			css := Stylesheet(theme)

			assert.Contains(t, css, "--color-bg: "+theme.Background+";")
			assert.Contains(t, css, "--color-primary: "+colors.Primary+";")
			assert.Contains(t, css, "--color-text: "+colors.Text+";")
			assert.Contains(t, css, "--font-body: "+theme.Font+";")
			assert.Contains(t, css, ".grid-cols-3")
			assert.Equal(t, strings.Count(css, "{"), strings.Count(css, "}"))
		})
	}
}

func TestDarkThemesSwapTextColor(t *testing.T) {
	light := ResolveOrDefault("light").Colors()
	dark := ResolveOrDefault("dark").Colors()

	assert.Equal(t, "#111827", light.Text)
	assert.Equal(t, "#f1f5f9", dark.Text)
	assert.NotEqual(t, GenerateCSS(light), GenerateCSS(dark))
}
