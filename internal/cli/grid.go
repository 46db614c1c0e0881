package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/grid"
	"github.com/utensils/hexalith/pkg/logo"
	"github.com/utensils/hexalith/pkg/render"
)

// Grid output formats.
const (
	gridText = "text"
	gridDOT  = "dot"
	gridSVG  = "svg"
)

// gridRadius is the circumradius used when no logo is placed.
const gridRadius = 100

// gridCommand creates the grid inspection command.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		density int
		format  string
		output  string
		seedArg string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Inspect the triangular grid",
		Long: `Print statistics for the grid at a density, or export its adjacency graph.

With --seed, cells claimed by the logo for that seed are colored in DOT and
SVG output.`,
		Example: `  hexalith grid -g 3
  hexalith grid -g 2 -f dot
  hexalith grid -g 4 -s 12345 -f svg -o grid.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateOneOf("format", format, []string{gridText, gridDOT, gridSVG}); err != nil {
				return err
			}

			g, l, err := c.buildGrid(density, seedArg)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case gridText:
				printGridStats(cmd.OutOrStdout(), g)
				return nil
			case gridDOT:
				data = []byte(render.GridDOT(g, l))
			case gridSVG:
				data, err = render.RenderDOT(cmd.Context(), render.GridDOT(g, l))
				if err != nil {
					return fmt.Errorf("render grid: %w", err)
				}
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := errors.ValidateOutputPath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Wrote grid")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&density, "grid-size", "g", logo.DefaultDensity, "grid density (2-8)")
	cmd.Flags().StringVarP(&format, "format", "f", gridText, "output format: text, dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVarP(&seedArg, "seed", "s", "", "color cells claimed by the logo for this seed")

	return cmd
}

// buildGrid builds the grid, or generates a logo when a seed is given and
// returns its grid.
func (c *CLI) buildGrid(density int, seedArg string) (*grid.Grid, *logo.Logo, error) {
	if seedArg == "" {
		if err := errors.ValidateIntRange("grid_density", density, grid.MinDensity, grid.MaxDensity); err != nil {
			return nil, nil, err
		}
		g, err := grid.Build(density, gridRadius)
		return g, nil, err
	}

	s, err := strconv.ParseUint(seedArg, 10, 64)
	if err != nil {
		return nil, nil, errors.InvalidParameter("seed", "an unsigned integer", seedArg)
	}
	p := c.Config.Params()
	p.Seed = logo.Uint64(s)
	p.Density = density
	l, err := logo.Generate(p)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("generated logo for grid", "seed", s, "shapes", len(l.Shapes))
	return l.Grid, l, nil
}

// printGridStats writes a summary of g.
func printGridStats(w io.Writer, g *grid.Grid) {
	var up, down int
	perRank := make([]int, g.MaxRank()+1)
	for _, cell := range g.Cells {
		if cell.Orientation == grid.Up {
			up++
		} else {
			down++
		}
		perRank[cell.Rank]++
	}

	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Grid density %d", g.Density)))
	fmt.Fprintln(w, keyValue("cells", strconv.Itoa(g.Len())))
	fmt.Fprintln(w, keyValue("edges", strconv.Itoa(g.EdgeCount())))
	fmt.Fprintln(w, keyValue("up/down", fmt.Sprintf("%d/%d", up, down)))
	fmt.Fprintln(w, keyValue("ranks", strconv.Itoa(len(perRank))))
	for r, n := range perRank {
		fmt.Fprintln(w, keyValue(fmt.Sprintf("  rank %d", r), strconv.Itoa(n)))
	}
}
