package svg

import "strings"

// Text renders a string at an anchor point. The content is escaped for XML
// on emission; no other processing is applied.
type Text struct {
	anchor  Point
	content string
	fill    Fill
	font    Font
	stroke  Stroke
}

// NewText returns a text shape with no stroke.
func NewText(anchor Point, content string, fill Fill, font Font) *Text {
	return &Text{anchor: anchor, content: content, fill: fill, font: font, stroke: NoStroke()}
}

// SetStroke sets an outline stroke on the text and returns it for chaining.
func (t *Text) SetStroke(s Stroke) *Text {
	t.stroke = s
	return t
}

func (t *Text) Render(l Layout) string {
	var b strings.Builder
	b.WriteString(elemStart("text"))
	b.WriteString(attrFloat("x", l.X(t.anchor.X)))
	b.WriteString(attrFloat("y", l.Y(t.anchor.Y)))
	b.WriteString(t.fill.render(l))
	b.WriteString(t.stroke.render(l))
	b.WriteString(t.font.render(l))
	b.WriteString(">")
	b.WriteString(escapeText(t.content))
	b.WriteString(elemEnd("text"))
	return b.String()
}

func (t *Text) Clone() Shape {
	dup := *t
	return &dup
}

func (t *Text) Translate(delta Point) {
	t.anchor.X += delta.X
	t.anchor.Y += delta.Y
}
