// SPDX-License-Identifier: MIT
package themes

import "strings"

// DefaultTheme is used when a request names no theme or an unknown one
const DefaultTheme = "light"

const (
	fontSans  = `"Inter", system-ui, -apple-system, "Segoe UI", sans-serif`
	fontSerif = `"Source Serif 4", Georgia, serif`
)

// Theme is a named set of visual tokens. It never depends on locale.
type Theme struct {
	Name       string
	Background string // page background, hex
	Font       string // CSS font stack
	Palette    string // palette name, see GetPalette
	Dark       bool
}

var themeOrder = []string{"light", "dark", "slate", "indigo", "emerald", "navy"}

var themeTable = map[string]Theme{
	"light":   {Name: "light", Background: "#ffffff", Font: fontSans, Palette: "neutral"},
	"dark":    {Name: "dark", Background: "#0b1120", Font: fontSans, Palette: "neutral", Dark: true},
	"slate":   {Name: "slate", Background: "#f8fafc", Font: fontSans, Palette: "slate"},
	"indigo":  {Name: "indigo", Background: "#ffffff", Font: fontSans, Palette: "indigo"},
	"emerald": {Name: "emerald", Background: "#f0fdf4", Font: fontSerif, Palette: "emerald"},
	"navy":    {Name: "navy", Background: "#0f172a", Font: fontSerif, Palette: "navy", Dark: true},
}

// Resolve looks up a theme by name. Names are matched case-insensitively.
func Resolve(name string) (Theme, bool) {
	t, ok := themeTable[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// ResolveOrDefault returns the named theme or DefaultTheme
func ResolveOrDefault(name string) Theme {
	if t, ok := Resolve(name); ok {
		return t
	}
	return themeTable[DefaultTheme]
}

// List returns every theme in display order
func List() []Theme {
	out := make([]Theme, 0, len(themeOrder))
	for _, name := range themeOrder {
		out = append(out, themeTable[name])
	}
	return out
}

// Colors generates the full color set for t
func (t Theme) Colors() *Colors {
	palette := GetPalette(t.Palette)
	if palette == nil {
		palette = GetPalette("neutral")
	}
	colors := GenerateColors(palette, t.Dark)
	if t.Background != "" {
		colors.Background = t.Background
	}
	return colors
}

// Stylesheet returns the CSS custom properties and base rules for t
func Stylesheet(t Theme) string {
	var b strings.Builder
	b.WriteString(GenerateCSS(t.Colors()))
	b.WriteString("\n:root {\n  --font-body: ")
	b.WriteString(t.Font)
	b.WriteString(";\n}\n\nbody {\n  font-family: var(--font-body);\n}\n")
	return b.String()
}
