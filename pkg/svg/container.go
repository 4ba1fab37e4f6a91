package svg

import (
	"slices"
	"strings"
)

// Container groups shapes under a single <g> element.
//
// Add stores an independent clone of every argument, never the argument
// itself, so later mutation of a caller's shape cannot reach the stored
// copy. The container exclusively owns its children.
//
// Translate is deliberately a no-op: children hold absolute caller-space
// coordinates and are offset individually when desired; the group never
// cascades an offset into them. Use Transform for a group-level transform
// attribute instead.
type Container struct {
	children   []Shape
	transforms []Transform
	fill       Fill
	stroke     Stroke
}

// NewContainer returns an empty container.
func NewContainer(fill Fill, stroke Stroke) *Container {
	return &Container{fill: fill, stroke: stroke}
}

// Add appends a clone of each shape and returns the container for chaining.
func (c *Container) Add(shapes ...Shape) *Container {
	for _, s := range shapes {
		c.children = append(c.children, s.Clone())
	}
	return c
}

// Transform appends a caller-space transform to the group element and
// returns the container for chaining.
func (c *Container) Transform(t Transform) *Container {
	c.transforms = append(c.transforms, t)
	return c
}

// Render emits the group with each child indented one level. An empty
// container renders the empty string, not an empty group element.
func (c *Container) Render(l Layout) string {
	if len(c.children) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(elemStart("g"))
	b.WriteString(c.fill.render(l))
	b.WriteString(c.stroke.render(l))
	if len(c.transforms) > 0 {
		frags := make([]string, len(c.transforms))
		for i, t := range c.transforms {
			frags[i] = t.fragment()
		}
		b.WriteString(attr("transform", strings.Join(frags, " ")))
	}
	b.WriteString(">\n")
	for _, child := range c.children {
		b.WriteString(indent(child.Render(l)))
	}
	b.WriteString(elemEnd("g"))
	return b.String()
}

func (c *Container) Clone() Shape {
	dup := &Container{
		fill:       c.fill,
		stroke:     c.stroke,
		transforms: slices.Clone(c.transforms),
		children:   make([]Shape, len(c.children)),
	}
	for i, child := range c.children {
		dup.children[i] = child.Clone()
	}
	return dup
}

// Translate is a no-op; see the type documentation.
func (c *Container) Translate(Point) {}
