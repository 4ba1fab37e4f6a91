package svg

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Document is the top-level owner of a scene. It holds clones of the
// appended shapes and one Layout, and serializes the complete SVG file.
type Document struct {
	filename string
	layout   Layout
	shapes   []Shape
}

// NewDocument returns an empty document writing to filename on Save.
func NewDocument(filename string, layout Layout) *Document {
	return &Document{filename: filename, layout: layout}
}

// Layout returns the document's layout.
func (d *Document) Layout() Layout {
	return d.layout
}

// Filename returns the path the document writes to on Save.
func (d *Document) Filename() string {
	return d.filename
}

// Add appends an independent clone of each shape to the document body and
// returns the document for chaining.
func (d *Document) Add(shapes ...Shape) *Document {
	for _, s := range shapes {
		d.shapes = append(d.shapes, s.Clone())
	}
	return d
}

// String renders the complete document. It is pure and idempotent: it may
// be called any number of times and always reflects the current owned tree.
func (d *Document) String() string {
	var b strings.Builder
	d.write(&b)
	return b.String()
}

// WriteTo writes the rendered document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// Save writes the document to its file name. Failure to open or write the
// file is reported as an error value; the file is closed on every path.
func (d *Document) Save() error {
	f, err := os.Create(d.filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", d.filename, err)
	}
	defer f.Close()

	if _, err := d.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", d.filename, err)
	}
	return nil
}

// SaveAs writes the document to path and retargets the document so later
// Save calls use the same location.
func (d *Document) SaveAs(path string) error {
	d.filename = path
	return d.Save()
}

func (d *Document) write(b *strings.Builder) {
	b.WriteString("<?xml " + attr("version", "1.0") + attr("standalone", "no") + "?>\n")
	b.WriteString(`<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">` + "\n")
	b.WriteString(elemStart("svg"))
	b.WriteString(attr("width", ftoa(d.layout.Dimensions.Width)+"px"))
	b.WriteString(attr("height", ftoa(d.layout.Dimensions.Height)+"px"))
	b.WriteString(attr("xmlns", "http://www.w3.org/2000/svg"))
	b.WriteString(attr("version", "1.1"))
	b.WriteString(">\n")

	// Shapes self-correct for the layout origin, so the body needs no
	// wrapper group for any origin.
	for _, s := range d.shapes {
		b.WriteString(indent(s.Render(d.layout)))
	}

	b.WriteString(elemEnd("svg"))
}
