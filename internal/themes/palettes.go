// SPDX-License-Identifier: MIT
package themes

// Palette defines the brand colors a theme is built from
type Palette struct {
	Name      string // "slate", "indigo", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // hex color #RRGGBB
}

var paletteOrder = []string{"slate", "indigo", "emerald", "navy", "rose", "neutral"}

var palettes = map[string]Palette{
	"slate":   {Name: "slate", Primary: "#334155", Secondary: "#0f172a"},
	"indigo":  {Name: "indigo", Primary: "#4f46e5", Secondary: "#f97316"},
	"emerald": {Name: "emerald", Primary: "#059669", Secondary: "#f59e0b"},
	"navy":    {Name: "navy", Primary: "#000080", Secondary: "#fbbf24"},
	"rose":    {Name: "rose", Primary: "#e11d48", Secondary: "#64748b"},
	"neutral": {Name: "neutral", Primary: "#111827", Secondary: "#4b5563"},
}

// GetPalette returns a palette by name, nil if unknown
func GetPalette(name string) *Palette {
	p, ok := palettes[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	var out []*Palette
	for _, name := range paletteOrder {
		if p := GetPalette(name); p != nil {
			out = append(out, p)
		}
	}
	return out
}
