// Package scene loads declarative TOML scene descriptions and builds
// svg.Document values from them.
//
// A scene file has one [canvas] table and any number of [[shape]] tables:
//
//	[canvas]
//	width = 100
//	height = 100
//	origin = "bottom-left"
//	output = "out.svg"
//
//	[[shape]]
//	kind = "circle"
//	center = [80, 80]
//	diameter = 20
//	fill = "aqua"
//
//	[[shape]]
//	kind = "group"
//	  [[shape.shapes]]
//	  kind = "line"
//	  from = [15, 15]
//	  to = [30, 50]
//	  stroke = { width = 1, color = "green" }
//
// Colors are palette names ("red"), "#rrggbb" literals, or "none".
// Validation failures surface as structured errors from pkg/errors.
package scene
