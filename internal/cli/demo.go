package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgscene/pkg/svg"
)

// newDemoCmd creates the demo command. It writes a sample SVG exercising
// the supported shape types so users can see the output format without
// authoring a scene file first.
func newDemoCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a sample SVG showing the supported shape types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "demo.svg", "output file")

	return cmd
}

// runDemo builds the sample document and saves it to output.
func runDemo(ctx context.Context, output string) error {
	logger := loggerFromContext(ctx)
	logger.Info("Building demo scene")
	p := newProgress(logger)

	doc := demoDocument(output)
	if err := doc.Save(); err != nil {
		printError("Failed to write SVG: %v", err)
		return err
	}

	p.done("Built demo scene")
	printSuccess("Demo scene written")
	printFile(output)
	return nil
}

// demoDocument assembles a 100x100 bottom-left scene with a red border,
// filled shapes, text, and a nested translated group.
func demoDocument(output string) *svg.Document {
	layout := svg.NewLayout(svg.Dimensions{Width: 100, Height: 100}, svg.BottomLeft)
	doc := svg.NewDocument(output, layout)

	border := svg.NewPolygon(svg.Fill{}, svg.NewStroke(1, svg.Red))
	border.Add(
		svg.Point{X: 0, Y: 0},
		svg.Point{X: 100, Y: 0},
		svg.Point{X: 100, Y: 100},
		svg.Point{X: 0, Y: 100},
	)
	doc.Add(border)

	doc.Add(svg.NewCircle(svg.Point{X: 80, Y: 80}, 20,
		svg.NewFill(svg.RGB(100, 200, 120)), svg.NewStroke(1, svg.RGB(200, 250, 150))))

	doc.Add(svg.NewText(svg.Point{X: 5, Y: 77}, "Simple SVG",
		svg.NewFill(svg.Silver), svg.NewFont(10, "Verdana")))

	blob := svg.NewPolygon(svg.NewFill(svg.RGB(200, 160, 220)), svg.NewStroke(0.5, svg.RGB(150, 160, 200)))
	blob.Add(
		svg.Point{X: 20, Y: 70},
		svg.Point{X: 25, Y: 72},
		svg.Point{X: 33, Y: 70},
		svg.Point{X: 35, Y: 60},
		svg.Point{X: 25, Y: 55},
		svg.Point{X: 18, Y: 63},
	)
	doc.Add(blob)

	doc.Add(svg.NewRectangle(svg.Point{X: 70, Y: 55}, 20, 15,
		svg.NewFill(svg.Yellow), svg.NoStroke()))

	inner := svg.NewContainer(svg.Fill{}, svg.NewStroke(1, svg.Green))
	inner.Add(svg.NewLine(svg.Point{X: 15, Y: 15}, svg.Point{X: 30, Y: 50}, svg.NewStroke(1, svg.Green)))
	inner.Add(svg.NewCircle(svg.Point{X: 70, Y: 50}, 10, svg.NewFill(svg.Orange), svg.NoStroke()))

	outer := svg.NewContainer(svg.Fill{}, svg.NoStroke())
	outer.Add(svg.NewCircle(svg.Point{X: 50, Y: 50}, 10, svg.NewFill(svg.Aqua), svg.NoStroke()))
	outer.Add(inner)
	outer.Transform(svg.Translation{X: 3, Y: 1.1})
	outer.Transform(svg.UniformScaling(1.2))
	doc.Add(outer)

	return doc
}
