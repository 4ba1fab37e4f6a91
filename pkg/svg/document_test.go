package svg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const docPreamble = "<?xml version=\"1.0\" standalone=\"no\" ?>\n" +
	"<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n" +
	"<svg width=\"100px\" height=\"100px\" xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" >\n"

func TestEmptyDocument(t *testing.T) {
	doc := NewDocument("out.svg", NewLayout(Dimensions{Width: 100, Height: 100}, TopLeft))

	want := docPreamble + "</svg>\n"
	if diff := cmp.Diff(want, doc.String()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentEndToEnd(t *testing.T) {
	// 100x100 canvas, BottomLeft origin: border polygon, circle, text label,
	// and a container holding two shapes.
	dims := Dimensions{Width: 100, Height: 100}
	doc := NewDocument("out.svg", NewLayout(dims, BottomLeft))

	border := NewPolygon(Fill{}, NewStroke(1, Red)).Add(
		Point{},
		Point{X: dims.Width},
		Point{X: dims.Width, Y: dims.Height},
		Point{Y: dims.Height},
	)
	doc.Add(border)
	doc.Add(NewCircle(Point{X: 80, Y: 80}, 20, NewFill(RGB(100, 200, 120)), NewStroke(1, RGB(200, 250, 150))))
	doc.Add(NewText(Point{X: 5, Y: 77}, "Scene check", NewFill(Silver), NewFont(10, "Verdana")))
	doc.Add(NewContainer(Fill{}, NoStroke()).Add(
		NewLine(Point{X: 15, Y: 15}, Point{X: 30, Y: 50}, NewStroke(1, Green)),
		NewCircle(Point{X: 70, Y: 50}, 10, NewFill(Orange), NoStroke()),
	))

	want := docPreamble +
		"\t<polygon points=\"0,100 100,100 100,0 0,0 \" fill=\"none\" stroke-width=\"1\" stroke=\"rgb(255,0,0)\" />\n" +
		"\t<circle cx=\"80\" cy=\"20\" r=\"10\" fill=\"rgb(100,200,120)\" stroke-width=\"1\" stroke=\"rgb(200,250,150)\" />\n" +
		"\t<text x=\"5\" y=\"23\" fill=\"rgb(192,192,192)\" font-size=\"10\" font-family=\"Verdana\" >Scene check</text>\n" +
		"\t<g fill=\"none\" >\n" +
		"\t\t<line x1=\"15\" y1=\"85\" x2=\"30\" y2=\"50\" stroke-width=\"1\" stroke=\"rgb(0,128,0)\" />\n" +
		"\t\t<circle cx=\"70\" cy=\"50\" r=\"5\" fill=\"rgb(255,165,0)\" />\n" +
		"\t</g>\n" +
		"</svg>\n"

	if diff := cmp.Diff(want, doc.String()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentRenderIdempotent(t *testing.T) {
	doc := NewDocument("out.svg", NewLayout(Dimensions{Width: 100, Height: 100}, BottomLeft))
	doc.Add(NewCircle(Point{X: 50, Y: 50}, 10, NewFill(Red), NoStroke()))

	first := doc.String()
	second := doc.String()
	if first != second {
		t.Error("String() not idempotent")
	}
}

func TestDocumentAddClones(t *testing.T) {
	doc := NewDocument("out.svg", NewLayout(Dimensions{Width: 100, Height: 100}, TopLeft))
	circle := NewCircle(Point{X: 50, Y: 50}, 10, NewFill(Red), NoStroke())
	doc.Add(circle)
	before := doc.String()

	circle.Translate(Point{X: 10, Y: 10})

	if got := doc.String(); got != before {
		t.Error("appended copy changed after mutating caller shape")
	}
}

func TestDocumentEmptyContainerLeavesNoTrace(t *testing.T) {
	doc := NewDocument("out.svg", NewLayout(Dimensions{Width: 100, Height: 100}, TopLeft))
	doc.Add(NewContainer(Fill{}, NoStroke()))

	if got := doc.String(); strings.Contains(got, "<g") {
		t.Errorf("empty container rendered a group: %q", got)
	}
}

func TestDocumentSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	doc := NewDocument(path, NewLayout(Dimensions{Width: 100, Height: 100}, TopLeft))
	doc.Add(NewCircle(Point{X: 50, Y: 50}, 10, NewFill(Red), NoStroke()))

	if err := doc.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != doc.String() {
		t.Error("saved file differs from String()")
	}
}

func TestDocumentSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.svg")
	doc := NewDocument(path, NewLayout(Dimensions{Width: 100, Height: 100}, TopLeft))

	if err := doc.Save(); err == nil {
		t.Error("Save() into a missing directory should fail")
	}
}

func TestDocumentWriteTo(t *testing.T) {
	doc := NewDocument("out.svg", NewLayout(Dimensions{Width: 100, Height: 100}, TopLeft))

	var b strings.Builder
	n, err := doc.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if int(n) != len(doc.String()) {
		t.Errorf("WriteTo() wrote %d bytes, want %d", n, len(doc.String()))
	}
}
