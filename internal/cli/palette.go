package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgscene/pkg/svg"
)

// newPaletteCmd creates the palette command, which lists the named colors
// available in scene files along with a terminal swatch.
func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the named palette colors",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printPalette()
		},
	}
}

func printPalette() {
	for _, name := range svg.PaletteNames() {
		c, _ := svg.NamedColor(name)
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).
			Render("  ")
		fmt.Printf("%s %-10s %s\n", swatch, name, c)
	}
}
