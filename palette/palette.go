// Package palette provides named color tables for chroma: the CSS3
// extended names and the 16 basic HTML names. The tables are plain
// data; the only behavior is dictionary access.
package palette

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/chroma"
)

// Palette is an immutable name-to-hex table.
type Palette struct {
	colors map[string]chroma.Hex
	names  []string
}

// Lookup resolves a color name case-insensitively.
func (p *Palette) Lookup(name string) (chroma.Hex, bool) {
	h, ok := p.colors[strings.ToLower(name)]
	return h, ok
}

// Names returns the palette's color names in sorted order. The slice
// is a copy; callers may modify it.
func (p *Palette) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Values returns the palette's hex values in name order.
func (p *Palette) Values() []chroma.Hex {
	out := make([]chroma.Hex, len(p.names))
	for i, n := range p.names {
		out[i] = p.colors[n]
	}
	return out
}

// Len reports the number of entries.
func (p *Palette) Len() int { return len(p.names) }

func newPalette(colors map[string]chroma.Hex) *Palette {
	names := make([]string, 0, len(colors))
	for n := range colors {
		names = append(names, n)
	}
	sort.Strings(names)
	return &Palette{colors: colors, names: names}
}

// CSS holds the CSS3/SVG 1.1 extended color names, built from the
// golang.org/x/image/colornames table.
var CSS = newPalette(cssColors())

func cssColors() map[string]chroma.Hex {
	m := make(map[string]chroma.Hex, len(colornames.Map))
	for name, c := range colornames.Map {
		m[name] = chroma.Hex(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	return m
}

// Basic holds the 16 color names of HTML 4.01.
var Basic = newPalette(map[string]chroma.Hex{
	"aqua":    "#00ffff",
	"black":   "#000000",
	"blue":    "#0000ff",
	"fuchsia": "#ff00ff",
	"gray":    "#808080",
	"green":   "#008000",
	"lime":    "#00ff00",
	"maroon":  "#800000",
	"navy":    "#000080",
	"olive":   "#808000",
	"purple":  "#800080",
	"red":     "#ff0000",
	"silver":  "#c0c0c0",
	"teal":    "#008080",
	"white":   "#ffffff",
	"yellow":  "#ffff00",
})
