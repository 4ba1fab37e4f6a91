package svg

import (
	"slices"
	"strings"
)

// Circle is centered on a point and sized by its diameter.
type Circle struct {
	center Point
	radius float64
	fill   Fill
	stroke Stroke
}

// NewCircle returns a circle of the given diameter centered on center.
func NewCircle(center Point, diameter float64, fill Fill, stroke Stroke) *Circle {
	return &Circle{center: center, radius: diameter / 2, fill: fill, stroke: stroke}
}

func (c *Circle) Render(l Layout) string {
	var b strings.Builder
	b.WriteString(elemStart("circle"))
	b.WriteString(attrFloat("cx", l.X(c.center.X)))
	b.WriteString(attrFloat("cy", l.Y(c.center.Y)))
	b.WriteString(attrFloat("r", l.Length(c.radius)))
	b.WriteString(c.fill.render(l))
	b.WriteString(c.stroke.render(l))
	b.WriteString(emptyElemEnd)
	return b.String()
}

func (c *Circle) Clone() Shape {
	dup := *c
	return &dup
}

func (c *Circle) Translate(delta Point) {
	c.center.X += delta.X
	c.center.Y += delta.Y
}

// Ellipse is centered on a point with separate horizontal and vertical
// diameters.
type Ellipse struct {
	center  Point
	radiusX float64
	radiusY float64
	fill    Fill
	stroke  Stroke
}

// NewEllipse returns an ellipse of the given width and height centered on
// center.
func NewEllipse(center Point, width, height float64, fill Fill, stroke Stroke) *Ellipse {
	return &Ellipse{center: center, radiusX: width / 2, radiusY: height / 2, fill: fill, stroke: stroke}
}

func (e *Ellipse) Render(l Layout) string {
	var b strings.Builder
	b.WriteString(elemStart("ellipse"))
	b.WriteString(attrFloat("cx", l.X(e.center.X)))
	b.WriteString(attrFloat("cy", l.Y(e.center.Y)))
	b.WriteString(attrFloat("rx", l.Length(e.radiusX)))
	b.WriteString(attrFloat("ry", l.Length(e.radiusY)))
	b.WriteString(e.fill.render(l))
	b.WriteString(e.stroke.render(l))
	b.WriteString(emptyElemEnd)
	return b.String()
}

func (e *Ellipse) Clone() Shape {
	dup := *e
	return &dup
}

func (e *Ellipse) Translate(delta Point) {
	e.center.X += delta.X
	e.center.Y += delta.Y
}

// Rectangle is anchored at an edge point with a width and height extending
// from it.
type Rectangle struct {
	edge   Point
	width  float64
	height float64
	fill   Fill
	stroke Stroke
}

// NewRectangle returns a rectangle anchored at edge.
func NewRectangle(edge Point, width, height float64, fill Fill, stroke Stroke) *Rectangle {
	return &Rectangle{edge: edge, width: width, height: height, fill: fill, stroke: stroke}
}

func (r *Rectangle) Render(l Layout) string {
	var b strings.Builder
	b.WriteString(elemStart("rect"))
	b.WriteString(attrFloat("x", l.X(r.edge.X)))
	b.WriteString(attrFloat("y", l.Y(r.edge.Y)))
	b.WriteString(attrFloat("width", l.Length(r.width)))
	b.WriteString(attrFloat("height", l.Length(r.height)))
	b.WriteString(r.fill.render(l))
	b.WriteString(r.stroke.render(l))
	b.WriteString(emptyElemEnd)
	return b.String()
}

func (r *Rectangle) Clone() Shape {
	dup := *r
	return &dup
}

func (r *Rectangle) Translate(delta Point) {
	r.edge.X += delta.X
	r.edge.Y += delta.Y
}

// Line is a straight segment between two points. Lines have no interior,
// so they carry only a stroke.
type Line struct {
	start  Point
	end    Point
	stroke Stroke
}

// NewLine returns a line between start and end.
func NewLine(start, end Point, stroke Stroke) *Line {
	return &Line{start: start, end: end, stroke: stroke}
}

func (n *Line) Render(l Layout) string {
	var b strings.Builder
	b.WriteString(elemStart("line"))
	b.WriteString(attrFloat("x1", l.X(n.start.X)))
	b.WriteString(attrFloat("y1", l.Y(n.start.Y)))
	b.WriteString(attrFloat("x2", l.X(n.end.X)))
	b.WriteString(attrFloat("y2", l.Y(n.end.Y)))
	b.WriteString(n.stroke.render(l))
	b.WriteString(emptyElemEnd)
	return b.String()
}

func (n *Line) Clone() Shape {
	dup := *n
	return &dup
}

func (n *Line) Translate(delta Point) {
	n.start.X += delta.X
	n.start.Y += delta.Y
	n.end.X += delta.X
	n.end.Y += delta.Y
}

// Polygon is an append-only point sequence rendered as a closed shape.
type Polygon struct {
	points []Point
	fill   Fill
	stroke Stroke
}

// NewPolygon returns an empty polygon; build it up with Add.
func NewPolygon(fill Fill, stroke Stroke) *Polygon {
	return &Polygon{fill: fill, stroke: stroke}
}

// Add appends points and returns the polygon for chaining.
func (p *Polygon) Add(points ...Point) *Polygon {
	p.points = append(p.points, points...)
	return p
}

func (p *Polygon) Render(l Layout) string {
	var b strings.Builder
	b.WriteString(elemStart("polygon"))
	b.WriteString(pointsAttr(p.points, l))
	b.WriteString(p.fill.render(l))
	b.WriteString(p.stroke.render(l))
	b.WriteString(emptyElemEnd)
	return b.String()
}

func (p *Polygon) Clone() Shape {
	dup := *p
	dup.points = slices.Clone(p.points)
	return &dup
}

func (p *Polygon) Translate(delta Point) {
	translatePoints(p.points, delta)
}

// Polyline is an append-only point sequence rendered as an open shape.
type Polyline struct {
	points []Point
	fill   Fill
	stroke Stroke
}

// NewPolyline returns an empty polyline; build it up with Add.
func NewPolyline(fill Fill, stroke Stroke) *Polyline {
	return &Polyline{fill: fill, stroke: stroke}
}

// Add appends points and returns the polyline for chaining.
func (p *Polyline) Add(points ...Point) *Polyline {
	p.points = append(p.points, points...)
	return p
}

func (p *Polyline) Render(l Layout) string {
	var b strings.Builder
	b.WriteString(elemStart("polyline"))
	b.WriteString(pointsAttr(p.points, l))
	b.WriteString(p.fill.render(l))
	b.WriteString(p.stroke.render(l))
	b.WriteString(emptyElemEnd)
	return b.String()
}

func (p *Polyline) Clone() Shape {
	dup := *p
	dup.points = slices.Clone(p.points)
	return &dup
}

func (p *Polyline) Translate(delta Point) {
	translatePoints(p.points, delta)
}
