package svg

// Transform is a caller-space coordinate transform attached to a group.
// Transforms accumulate in order on a Container and render as one
// transform attribute on the group element.
type Transform interface {
	fragment() string
}

// Translation shifts a group by (X, Y) in caller space.
type Translation struct {
	X, Y float64
}

func (t Translation) fragment() string {
	return "translate(" + ftoa(t.X) + "," + ftoa(t.Y) + ")"
}

// Scaling scales a group by (X, Y).
type Scaling struct {
	X, Y float64
}

// UniformScaling scales a group by the same factor on both axes.
func UniformScaling(s float64) Scaling {
	return Scaling{X: s, Y: s}
}

func (s Scaling) fragment() string {
	if s.X == s.Y {
		return "scale(" + ftoa(s.X) + ")"
	}
	return "scale(" + ftoa(s.X) + "," + ftoa(s.Y) + ")"
}
