package svg

import "strings"

// LineChart is a convenience shape layered on Polyline and Circle. It
// accumulates data polylines and renders them with a vertex marker at every
// data point plus a reference axis sized to 110% of the joint data extent.
type LineChart struct {
	axisStroke Stroke
	margin     Dimensions
	polylines  []*Polyline
}

// DefaultAxisStroke is the thin purple stroke used for chart axes.
func DefaultAxisStroke() Stroke {
	return NewStroke(0.5, Purple)
}

// NewLineChart returns an empty chart. The margin offsets all data and the
// axis from the canvas origin.
func NewLineChart(margin Dimensions, axisStroke Stroke) *LineChart {
	return &LineChart{axisStroke: axisStroke, margin: margin}
}

// Add appends a clone of the polyline. Empty polylines are ignored.
func (c *LineChart) Add(p *Polyline) *LineChart {
	if len(p.points) == 0 {
		return c
	}
	c.polylines = append(c.polylines, p.Clone().(*Polyline))
	return c
}

// Render emits every polyline with its vertex markers, then the axis.
// An empty chart renders the empty string.
func (c *LineChart) Render(l Layout) string {
	if len(c.polylines) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range c.polylines {
		b.WriteString(c.polylineString(p, l))
	}
	b.WriteString(c.axisString(l))
	return b.String()
}

func (c *LineChart) Clone() Shape {
	dup := &LineChart{
		axisStroke: c.axisStroke,
		margin:     c.margin,
		polylines:  make([]*Polyline, len(c.polylines)),
	}
	for i, p := range c.polylines {
		dup.polylines[i] = p.Clone().(*Polyline)
	}
	return dup
}

func (c *LineChart) Translate(delta Point) {
	for _, p := range c.polylines {
		p.Translate(delta)
	}
}

// extent returns the joint bounding box of all data points. ok is false for
// an empty chart; callers must check before using the dimensions.
func (c *LineChart) extent() (Dimensions, bool) {
	if len(c.polylines) == 0 {
		return Dimensions{}, false
	}

	min, _ := MinPoint(c.polylines[0].points)
	max, _ := MaxPoint(c.polylines[0].points)
	for _, p := range c.polylines[1:] {
		if pMin, ok := MinPoint(p.points); ok {
			if pMin.X < min.X {
				min.X = pMin.X
			}
			if pMin.Y < min.Y {
				min.Y = pMin.Y
			}
		}
		if pMax, ok := MaxPoint(p.points); ok {
			if pMax.X > max.X {
				max.X = pMax.X
			}
			if pMax.Y > max.Y {
				max.Y = pMax.Y
			}
		}
	}
	return Dimensions{Width: max.X - min.X, Height: max.Y - min.Y}, true
}

func (c *LineChart) axisString(l Layout) string {
	ext, ok := c.extent()
	if !ok {
		return ""
	}

	// The axis is 10% wider and higher than the data extent.
	width := ext.Width * 1.1
	height := ext.Height * 1.1

	axis := NewPolyline(Fill{}, c.axisStroke).Add(
		Point{X: c.margin.Width, Y: c.margin.Height + height},
		Point{X: c.margin.Width, Y: c.margin.Height},
		Point{X: c.margin.Width + width, Y: c.margin.Height},
	)
	return axis.Render(l)
}

func (c *LineChart) polylineString(p *Polyline, l Layout) string {
	shifted := p.Clone().(*Polyline)
	shifted.Translate(Point{X: c.margin.Width, Y: c.margin.Height})

	ext, _ := c.extent() // non-empty here, Render already checked

	var b strings.Builder
	b.WriteString(shifted.Render(l))
	for _, pt := range shifted.points {
		marker := NewCircle(pt, ext.Height/30, NewFill(Black), NoStroke())
		b.WriteString(marker.Render(l))
	}
	return b.String()
}
