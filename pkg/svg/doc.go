// Package svg builds 2-D vector scenes in memory and serializes them to
// standalone SVG 1.1 documents.
//
// A scene is assembled from shapes (Circle, Ellipse, Rectangle, Line,
// Polygon, Polyline, Path, Text, LineChart) that are appended to a Document
// or grouped in a Container. Appending always stores an independent clone,
// so a caller may keep mutating its own shape without affecting copies that
// were already added.
//
// Coordinates are given in caller space. The Layout maps them to device
// space: it fixes the canvas dimensions, which corner acts as the (0,0)
// origin, a uniform scale, and an origin offset. Each shape applies the
// layout transform to its own coordinates at render time.
//
// # Example
//
//	layout := svg.NewLayout(svg.Dimensions{Width: 100, Height: 100}, svg.BottomLeft)
//	doc := svg.NewDocument("out.svg", layout)
//	doc.Add(svg.NewCircle(svg.Point{X: 80, Y: 80}, 20, svg.NewFill(svg.Aqua), svg.NoStroke()))
//	if err := doc.Save(); err != nil {
//	    log.Fatal(err)
//	}
package svg
