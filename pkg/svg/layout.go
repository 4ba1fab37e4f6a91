package svg

import "fmt"

// Origin selects which corner of the canvas acts as the caller-space (0,0).
type Origin int

const (
	TopLeft Origin = iota
	BottomLeft
	TopRight
	BottomRight
)

// String returns the kebab-case name of the origin.
func (o Origin) String() string {
	switch o {
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("Origin(%d)", int(o))
}

// ParseOrigin converts a kebab-case origin name to an Origin.
func ParseOrigin(s string) (Origin, error) {
	switch s {
	case "top-left":
		return TopLeft, nil
	case "bottom-left":
		return BottomLeft, nil
	case "top-right":
		return TopRight, nil
	case "bottom-right":
		return BottomRight, nil
	}
	return TopLeft, fmt.Errorf("unknown origin %q", s)
}

// Layout maps caller-space coordinates to device space. It fixes the canvas
// dimensions, the corner origin, a uniform scale, and an origin offset.
// A layout never changes mid-render.
type Layout struct {
	Dimensions Dimensions
	Origin     Origin
	Scale      float64
	Offset     Point
}

// NewLayout returns a layout with scale 1 and no offset.
func NewLayout(dims Dimensions, origin Origin) Layout {
	return Layout{Dimensions: dims, Origin: origin, Scale: 1}
}

// X maps a caller-space x coordinate to device space.
func (l Layout) X(x float64) float64 {
	if l.Origin == TopRight || l.Origin == BottomRight {
		return l.Dimensions.Width - (x+l.Offset.X)*l.Scale
	}
	return (x + l.Offset.X) * l.Scale
}

// Y maps a caller-space y coordinate to device space.
func (l Layout) Y(y float64) float64 {
	if l.Origin == BottomLeft || l.Origin == BottomRight {
		return l.Dimensions.Height - (y+l.Offset.Y)*l.Scale
	}
	return (y + l.Offset.Y) * l.Scale
}

// Length scales a caller-space length. Lengths only scale, they never
// mirror or translate.
func (l Layout) Length(v float64) float64 {
	return v * l.Scale
}
