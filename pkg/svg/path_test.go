package svg

import (
	"strings"
	"testing"
)

func TestPathSubPathDiscipline(t *testing.T) {
	p := NewPath(Fill{}, NoStroke()).
		Add(Point{X: 10, Y: 10}, Point{X: 20, Y: 10}).
		StartNewSubPath().
		Add(Point{X: 30, Y: 30}, Point{X: 40, Y: 40})

	got := p.Render(flatLayout)
	want := `d="M10,10 20,10 z M30,30 40,40 z " `
	if !strings.Contains(got, want) {
		t.Errorf("Render() = %q, want substring %q", got, want)
	}
}

func TestPathStartNewSubPathIdempotent(t *testing.T) {
	// Starting a new sub-path twice in a row must not leave an empty
	// segment behind.
	p := NewPath(Fill{}, NoStroke()).Add(Point{X: 1, Y: 1})
	p.StartNewSubPath()
	p.StartNewSubPath()
	p.Add(Point{X: 2, Y: 2})

	got := p.Render(flatLayout)
	want := `d="M1,1 z M2,2 z " `
	if !strings.Contains(got, want) {
		t.Errorf("Render() = %q, want substring %q", got, want)
	}
}

func TestPathEmptySubPathsSkipped(t *testing.T) {
	p := NewPath(Fill{}, NoStroke())
	p.StartNewSubPath() // no-op, current sub-path empty

	got := p.Render(flatLayout)
	if strings.Contains(got, "M") {
		t.Errorf("empty path rendered a move-to: %q", got)
	}
	if !strings.Contains(got, `d="" `) {
		t.Errorf("Render() = %q, want empty d attribute", got)
	}
}

func TestPathFillRule(t *testing.T) {
	p := NewPath(Fill{}, NoStroke()).Add(Point{X: 1, Y: 1})
	if got := p.Render(flatLayout); !strings.Contains(got, `fill-rule="evenodd" `) {
		t.Errorf("fill-rule missing: %q", got)
	}
}

func TestPathCloneDeep(t *testing.T) {
	p := NewPath(Fill{}, NoStroke()).Add(Point{X: 1, Y: 1})
	clone := p.Clone()
	before := clone.Render(flatLayout)

	// Mutating the original's current sub-path must not leak into the clone.
	p.Add(Point{X: 9, Y: 9})
	p.Translate(Point{X: 1, Y: 1})

	if got := clone.Render(flatLayout); got != before {
		t.Errorf("clone changed: before %q, after %q", before, got)
	}
}
