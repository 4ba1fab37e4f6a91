package svg

// Fill paints a shape interior. The zero value is the transparent fill.
type Fill struct {
	Color Color
}

// NewFill returns a fill with the given color.
func NewFill(c Color) Fill {
	return Fill{Color: c}
}

func (f Fill) render(l Layout) string {
	return attr("fill", f.Color.String())
}

// Stroke describes a shape outline. A negative Width is the no-stroke
// sentinel: such a stroke renders no attributes at all, which is how
// callers express "no outline" without a separate flag.
type Stroke struct {
	Width      float64
	Color      Color
	NonScaling bool
}

// NewStroke returns a stroke of the given width and color.
func NewStroke(width float64, c Color) Stroke {
	return Stroke{Width: width, Color: c}
}

// NoStroke returns the sentinel stroke that renders nothing.
func NoStroke() Stroke {
	return Stroke{Width: -1}
}

func (s Stroke) render(l Layout) string {
	if s.Width < 0 {
		return ""
	}
	out := attrFloat("stroke-width", l.Length(s.Width)) + attr("stroke", s.Color.String())
	if s.NonScaling {
		out += attr("vector-effect", "non-scaling-stroke")
	}
	return out
}

// Font describes text rendering. The size scales with the layout, the
// family is emitted verbatim. There is no "no font" sentinel: both
// attributes always render.
type Font struct {
	Size   float64
	Family string
}

// NewFont returns a font with the given point size and family.
func NewFont(size float64, family string) Font {
	return Font{Size: size, Family: family}
}

// DefaultFont returns the 12pt Verdana default.
func DefaultFont() Font {
	return NewFont(12, "Verdana")
}

func (f Font) render(l Layout) string {
	return attrFloat("font-size", l.Length(f.Size)) + attr("font-family", f.Family)
}
