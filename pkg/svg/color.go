package svg

import (
	"fmt"
	"sort"
)

// Color is a paint color. The zero value is the transparent sentinel and
// renders as "none".
type Color struct {
	R, G, B int
	opaque  bool
}

// RGB returns an opaque color from three 0-255 components. Values are not
// range-checked; out-of-range components pass through to the rendered
// string unchanged.
func RGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b, opaque: true}
}

// The named palette. The table is fixed and exhaustive.
var (
	Transparent = Color{}
	Aqua        = RGB(0, 255, 255)
	Black       = RGB(0, 0, 0)
	Blue        = RGB(0, 0, 255)
	Brown       = RGB(165, 42, 42)
	Cyan        = RGB(0, 255, 255)
	Fuchsia     = RGB(255, 0, 255)
	Green       = RGB(0, 128, 0)
	Lime        = RGB(0, 255, 0)
	Magenta     = RGB(255, 0, 255)
	Orange      = RGB(255, 165, 0)
	Purple      = RGB(128, 0, 128)
	Red         = RGB(255, 0, 0)
	Silver      = RGB(192, 192, 192)
	White       = RGB(255, 255, 255)
	Yellow      = RGB(255, 255, 0)
)

var namedColors = map[string]Color{
	"aqua":    Aqua,
	"black":   Black,
	"blue":    Blue,
	"brown":   Brown,
	"cyan":    Cyan,
	"fuchsia": Fuchsia,
	"green":   Green,
	"lime":    Lime,
	"magenta": Magenta,
	"orange":  Orange,
	"purple":  Purple,
	"red":     Red,
	"silver":  Silver,
	"white":   White,
	"yellow":  Yellow,
}

// NamedColor looks up a palette color by its lower-case name.
func NamedColor(name string) (Color, bool) {
	c, ok := namedColors[name]
	return c, ok
}

// PaletteNames returns the palette color names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the SVG paint value: "none" for the transparent sentinel,
// "rgb(r,g,b)" otherwise.
func (c Color) String() string {
	if !c.opaque {
		return "none"
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
