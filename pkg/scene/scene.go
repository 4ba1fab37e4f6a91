package scene

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/svgscene/pkg/errors"
	"github.com/matzehuels/svgscene/pkg/svg"
)

// File is the top-level TOML scene description.
type File struct {
	Canvas Canvas `toml:"canvas"`
	Shapes []Def  `toml:"shape"`
}

// Canvas configures the document layout and output target.
type Canvas struct {
	Width  float64   `toml:"width"`
	Height float64   `toml:"height"`
	Origin string    `toml:"origin"` // default "bottom-left"
	Scale  float64   `toml:"scale"`  // default 1
	Offset []float64 `toml:"offset"` // [x, y]
	Output string    `toml:"output"` // default "scene.svg"
}

// Def describes one shape. Kind selects the variant; the remaining fields
// are interpreted per kind and ignored otherwise.
type Def struct {
	Kind string `toml:"kind"`

	// Geometry
	Center   []float64     `toml:"center"`   // circle, ellipse
	Diameter float64       `toml:"diameter"` // circle
	Width    float64       `toml:"width"`    // ellipse, rect
	Height   float64       `toml:"height"`   // ellipse, rect
	At       []float64     `toml:"at"`       // rect edge, text anchor
	From     []float64     `toml:"from"`     // line
	To       []float64     `toml:"to"`       // line
	Points   [][]float64   `toml:"points"`   // polygon, polyline
	Subpaths [][][]float64 `toml:"subpaths"` // path

	// Content
	Text string  `toml:"text"` // text
	Font FontDef `toml:"font"` // text

	// Styling
	Fill   string    `toml:"fill"`
	Stroke StrokeDef `toml:"stroke"`

	// Groups
	Shapes    []Def     `toml:"shapes"`    // group children
	Translate []float64 `toml:"translate"` // group transform
	ScaleBy   []float64 `toml:"scale-by"`  // group transform

	// Charts
	Lines  []LineDef `toml:"lines"`  // chart polylines
	Margin []float64 `toml:"margin"` // chart margin
}

// StrokeDef describes an outline. A zero value means no stroke.
type StrokeDef struct {
	Width      float64 `toml:"width"`
	Color      string  `toml:"color"`
	NonScaling bool    `toml:"non-scaling"`
}

// FontDef describes text rendering; zero fields fall back to the defaults.
type FontDef struct {
	Size   float64 `toml:"size"`
	Family string  `toml:"family"`
}

// LineDef is one data polyline of a chart.
type LineDef struct {
	Points [][]float64 `toml:"points"`
	Fill   string      `toml:"fill"`
	Stroke StrokeDef   `toml:"stroke"`
}

// Load reads and decodes a scene file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "read %s", path)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "parse %s", path)
	}
	return &f, nil
}

// Document builds an svg.Document from the scene description.
func (f *File) Document() (*svg.Document, error) {
	layout, err := f.Canvas.layout()
	if err != nil {
		return nil, err
	}

	output := f.Canvas.Output
	if output == "" {
		output = "scene.svg"
	}
	if err := errors.ValidateOutputPath(output); err != nil {
		return nil, err
	}

	doc := svg.NewDocument(output, layout)
	for i, def := range f.Shapes {
		shape, err := buildShape(def)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "shape %d", i+1)
		}
		doc.Add(shape)
	}
	return doc, nil
}

func (c Canvas) layout() (svg.Layout, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return svg.Layout{}, errors.New(errors.ErrCodeInvalidScene,
			"canvas dimensions must be positive, got %gx%g", c.Width, c.Height)
	}

	origin := svg.BottomLeft
	if c.Origin != "" {
		var err error
		origin, err = svg.ParseOrigin(c.Origin)
		if err != nil {
			return svg.Layout{}, errors.Wrap(errors.ErrCodeInvalidOrigin, err, "canvas origin")
		}
	}

	layout := svg.NewLayout(svg.Dimensions{Width: c.Width, Height: c.Height}, origin)
	if c.Scale != 0 {
		layout.Scale = c.Scale
	}
	if c.Offset != nil {
		offset, err := point(c.Offset)
		if err != nil {
			return svg.Layout{}, errors.Wrap(errors.ErrCodeInvalidPoint, err, "canvas offset")
		}
		layout.Offset = offset
	}
	return layout, nil
}

func buildShape(d Def) (svg.Shape, error) {
	fill, err := parseFill(d.Fill)
	if err != nil {
		return nil, err
	}
	stroke, err := parseStroke(d.Stroke)
	if err != nil {
		return nil, err
	}

	switch d.Kind {
	case "circle":
		center, err := point(d.Center)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "circle center")
		}
		return svg.NewCircle(center, d.Diameter, fill, stroke), nil

	case "ellipse":
		center, err := point(d.Center)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "ellipse center")
		}
		return svg.NewEllipse(center, d.Width, d.Height, fill, stroke), nil

	case "rect":
		at, err := point(d.At)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "rect edge")
		}
		return svg.NewRectangle(at, d.Width, d.Height, fill, stroke), nil

	case "line":
		from, err := point(d.From)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "line start")
		}
		to, err := point(d.To)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "line end")
		}
		return svg.NewLine(from, to, stroke), nil

	case "polygon":
		pts, err := points(d.Points)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "polygon points")
		}
		return svg.NewPolygon(fill, stroke).Add(pts...), nil

	case "polyline":
		pts, err := points(d.Points)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "polyline points")
		}
		return svg.NewPolyline(fill, stroke).Add(pts...), nil

	case "path":
		p := svg.NewPath(fill, stroke)
		for _, sub := range d.Subpaths {
			pts, err := points(sub)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "path sub-path")
			}
			p.Add(pts...)
			p.StartNewSubPath()
		}
		return p, nil

	case "text":
		at, err := point(d.At)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "text anchor")
		}
		font := svg.DefaultFont()
		if d.Font.Size != 0 {
			font.Size = d.Font.Size
		}
		if d.Font.Family != "" {
			font.Family = d.Font.Family
		}
		return svg.NewText(at, d.Text, fill, font), nil

	case "group":
		g := svg.NewContainer(fill, stroke)
		for i, child := range d.Shapes {
			s, err := buildShape(child)
			if err != nil {
				return nil, errors.Wrap(errors.GetCode(err), err, "group child %d", i+1)
			}
			g.Add(s)
		}
		if d.Translate != nil {
			delta, err := point(d.Translate)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "group translate")
			}
			g.Transform(svg.Translation{X: delta.X, Y: delta.Y})
		}
		if d.ScaleBy != nil {
			switch len(d.ScaleBy) {
			case 1:
				g.Transform(svg.UniformScaling(d.ScaleBy[0]))
			case 2:
				g.Transform(svg.Scaling{X: d.ScaleBy[0], Y: d.ScaleBy[1]})
			default:
				return nil, errors.New(errors.ErrCodeInvalidShape,
					"group scale-by needs 1 or 2 factors, got %d", len(d.ScaleBy))
			}
		}
		return g, nil

	case "chart":
		margin := svg.Dimensions{}
		if d.Margin != nil {
			m, err := point(d.Margin)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "chart margin")
			}
			margin = svg.Dimensions{Width: m.X, Height: m.Y}
		}
		chart := svg.NewLineChart(margin, svg.DefaultAxisStroke())
		for i, line := range d.Lines {
			pts, err := points(line.Points)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPoint, err, "chart line %d", i+1)
			}
			lineFill, err := parseFill(line.Fill)
			if err != nil {
				return nil, err
			}
			lineStroke, err := parseStroke(line.Stroke)
			if err != nil {
				return nil, err
			}
			chart.Add(svg.NewPolyline(lineFill, lineStroke).Add(pts...))
		}
		return chart, nil

	case "":
		return nil, errors.New(errors.ErrCodeInvalidShape, "shape has no kind")

	default:
		return nil, errors.New(errors.ErrCodeInvalidShape, "unknown shape kind %q", d.Kind)
	}
}

func parseFill(spec string) (svg.Fill, error) {
	c, err := parseColor(spec)
	if err != nil {
		return svg.Fill{}, err
	}
	return svg.NewFill(c), nil
}

func parseStroke(d StrokeDef) (svg.Stroke, error) {
	if d.Width == 0 && d.Color == "" {
		return svg.NoStroke(), nil
	}
	c, err := parseColor(d.Color)
	if err != nil {
		return svg.Stroke{}, err
	}
	return svg.Stroke{Width: d.Width, Color: c, NonScaling: d.NonScaling}, nil
}

// parseColor resolves a scene color spec: "" / "none" / "transparent",
// a palette name, or a #rrggbb literal.
func parseColor(spec string) (svg.Color, error) {
	if err := errors.ValidateColorSpec(spec); err != nil {
		return svg.Color{}, err
	}

	switch spec {
	case "", "none", "transparent":
		return svg.Transparent, nil
	}

	if spec[0] == '#' {
		r, err1 := strconv.ParseUint(spec[1:3], 16, 8)
		g, err2 := strconv.ParseUint(spec[3:5], 16, 8)
		b, err3 := strconv.ParseUint(spec[5:7], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return svg.Color{}, errors.New(errors.ErrCodeInvalidColor, "malformed hex color %q", spec)
		}
		return svg.RGB(int(r), int(g), int(b)), nil
	}

	c, ok := svg.NamedColor(spec)
	if !ok {
		return svg.Color{}, errors.New(errors.ErrCodeInvalidColor, "unknown color %q", spec)
	}
	return c, nil
}

func point(v []float64) (svg.Point, error) {
	if len(v) != 2 {
		return svg.Point{}, errors.New(errors.ErrCodeInvalidPoint, "point needs [x, y], got %d values", len(v))
	}
	return svg.Point{X: v[0], Y: v[1]}, nil
}

func points(v [][]float64) ([]svg.Point, error) {
	pts := make([]svg.Point, len(v))
	for i, pair := range v {
		p, err := point(pair)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}
