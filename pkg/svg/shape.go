package svg

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// Shape is one renderable element of a scene.
//
// Render produces the shape's SVG text under the given layout; it never
// mutates the shape. Clone returns an independent deep copy: mutating the
// original afterwards must not affect the clone. Translate shifts the
// shape's caller-space coordinates in place.
type Shape interface {
	Render(l Layout) string
	Clone() Shape
	Translate(delta Point)
}

// ftoa formats a float with the shortest representation that round-trips.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// attr renders one attribute as `name="value" `, trailing space included.
func attr(name, value string) string {
	return name + `="` + value + `" `
}

func attrFloat(name string, v float64) string {
	return attr(name, ftoa(v))
}

func elemStart(name string) string {
	return "<" + name + " "
}

func elemEnd(name string) string {
	return "</" + name + ">\n"
}

const emptyElemEnd = "/>\n"

// indent inserts one tab at the start of every non-empty line of s.
// Purely cosmetic; nesting levels stack one tab per level.
func indent(s string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(s, "\n") {
		if line == "" {
			continue
		}
		b.WriteString("\t")
		b.WriteString(line)
	}
	return b.String()
}

// escapeText escapes XML-significant characters in text content.
func escapeText(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s)) //nolint:errcheck // bytes.Buffer never fails
	return buf.String()
}

// pointsAttr renders a point sequence as a points="x,y x,y " attribute,
// applying the layout transform to every coordinate.
func pointsAttr(points []Point, l Layout) string {
	var b strings.Builder
	b.WriteString(`points="`)
	for _, p := range points {
		b.WriteString(ftoa(l.X(p.X)))
		b.WriteString(",")
		b.WriteString(ftoa(l.Y(p.Y)))
		b.WriteString(" ")
	}
	b.WriteString(`" `)
	return b.String()
}

func translatePoints(points []Point, delta Point) {
	for i := range points {
		points[i].X += delta.X
		points[i].Y += delta.Y
	}
}
