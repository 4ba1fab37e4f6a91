package svg

import (
	"slices"
	"strings"
)

// Path is an outline made of one or more disjoint sub-paths, filled with
// the even-odd rule. Points append to the current sub-path; StartNewSubPath
// opens the next one.
type Path struct {
	subpaths [][]Point
	fill     Fill
	stroke   Stroke
}

// NewPath returns a path with a single empty sub-path.
func NewPath(fill Fill, stroke Stroke) *Path {
	return &Path{subpaths: [][]Point{{}}, fill: fill, stroke: stroke}
}

// Add appends points to the current sub-path and returns the path for
// chaining.
func (p *Path) Add(points ...Point) *Path {
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], points...)
	return p
}

// StartNewSubPath opens a fresh sub-path. It is a no-op while the current
// sub-path is still empty, so repeated calls never leave empty segments
// behind.
func (p *Path) StartNewSubPath() *Path {
	if n := len(p.subpaths); n == 0 || len(p.subpaths[n-1]) > 0 {
		p.subpaths = append(p.subpaths, nil)
	}
	return p
}

func (p *Path) Render(l Layout) string {
	var b strings.Builder
	b.WriteString(elemStart("path"))
	b.WriteString(`d="`)
	for _, sub := range p.subpaths {
		if len(sub) == 0 {
			continue
		}
		b.WriteString("M")
		for _, pt := range sub {
			b.WriteString(ftoa(l.X(pt.X)))
			b.WriteString(",")
			b.WriteString(ftoa(l.Y(pt.Y)))
			b.WriteString(" ")
		}
		b.WriteString("z ")
	}
	b.WriteString(`" `)
	b.WriteString(attr("fill-rule", "evenodd"))
	b.WriteString(p.fill.render(l))
	b.WriteString(p.stroke.render(l))
	b.WriteString(emptyElemEnd)
	return b.String()
}

func (p *Path) Clone() Shape {
	dup := *p
	dup.subpaths = make([][]Point, len(p.subpaths))
	for i, sub := range p.subpaths {
		dup.subpaths[i] = slices.Clone(sub)
	}
	return &dup
}

func (p *Path) Translate(delta Point) {
	for _, sub := range p.subpaths {
		translatePoints(sub, delta)
	}
}
