// SPDX-License-Identifier: MIT
package themes

import "strconv"

// Colors represents all generated colors for a theme
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text on top of Primary
	Secondary       string // Accent/highlight color
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string
	Error           string
	Warning         string
}

// GenerateColors generates full color set from palette for light or dark mode
func GenerateColors(palette *Palette, darkMode bool) *Colors {
	var c *Colors
	if darkMode {
		c = generateDarkColors(palette)
	} else {
		c = generateLightColors(palette)
	}
	c.PrimaryContrast = contrastFor(c.Primary)
	return c
}

func generateLightColors(palette *Palette) *Colors {
	return &Colors{
		Primary:    palette.Primary,
		Secondary:  palette.Secondary,
		Background: "#ffffff",
		Surface:    "#f9fafb",
		Text:       "#111827",
		TextMuted:  "#6b7280",
		Border:     "#e5e7eb",
		Success:    "#22c55e",
		Error:      "#ef4444",
		Warning:    "#f59e0b",
	}
}

func generateDarkColors(palette *Palette) *Colors {
	return &Colors{
		Primary:    "#f1f5f9", // light version of primary
		Secondary:  palette.Secondary,
		Background: "#0f172a",
		Surface:    "#1e293b",
		Text:       "#f1f5f9",
		TextMuted:  "#94a3b8",
		Border:     "#334155",
		Success:    "#22c55e",
		Error:      "#ef4444",
		Warning:    "#f59e0b",
	}
}

// contrastFor picks black or white text for a #RRGGBB background
// using the YIQ brightness formula.
func contrastFor(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return "#ffffff"
	}
	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return "#ffffff"
	}
	r := (rgb >> 16) & 0xff
	g := (rgb >> 8) & 0xff
	b := rgb & 0xff
	if (r*299+g*587+b*114)/1000 >= 128 {
		return "#000000"
	}
	return "#ffffff"
}
