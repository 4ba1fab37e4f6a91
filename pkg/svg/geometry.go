package svg

// Point is a 2-D coordinate in caller space.
type Point struct {
	X, Y float64
}

// Dimensions is a width/height pair.
type Dimensions struct {
	Width, Height float64
}

// MinPoint returns the component-wise minimum over points.
// The second return value is false when points is empty; a caller must not
// use the returned point in that case.
func MinPoint(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	min := points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
	}
	return min, true
}

// MaxPoint returns the component-wise maximum over points.
// The second return value is false when points is empty.
func MaxPoint(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	max := points[0]
	for _, p := range points[1:] {
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return max, true
}
