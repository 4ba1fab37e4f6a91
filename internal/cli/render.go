package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgscene/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path; overrides the scene's output setting
}

// newRenderCmd creates the render command for building an SVG file from a
// TOML scene description.
//
// By default the output path comes from the scene's [canvas] output field
// (falling back to "scene.svg"); --output overrides it.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a TOML scene description to an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: the scene's output setting)")

	return cmd
}

// runRender loads the scene from input, builds the document, and saves it.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)
	p := newProgress(logger)

	f, err := scene.Load(input)
	if err != nil {
		printError("Failed to load scene: %v", err)
		return err
	}
	logger.Debugf("Loaded scene: %d top-level shapes", len(f.Shapes))

	doc, err := f.Document()
	if err != nil {
		printError("Failed to build scene: %v", err)
		return err
	}

	if opts.output != "" {
		err = doc.SaveAs(opts.output)
	} else {
		err = doc.Save()
	}
	if err != nil {
		printError("Failed to write SVG: %v", err)
		return err
	}

	p.done("Rendered " + input)
	printSuccess("Scene rendered")
	printFile(doc.Filename())
	return nil
}
