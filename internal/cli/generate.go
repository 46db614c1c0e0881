package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/logo"
	"github.com/utensils/hexalith/pkg/pipeline"
)

// generateFlags holds the raw flag values for the generate command.
type generateFlags struct {
	seed          uint64
	uuid          string
	theme         string
	shapes        int
	gridSize      int
	opacity       float64
	overlap       bool
	width         int
	height        int
	format        string
	candidates    int
	jitter        bool
	jitterEpsilon float64
	pickTheme     bool
	noCache       bool
	refresh       bool
	scale         float64
	background    string
	boundary      string
	cells         bool
	polygons      bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate [output]",
		Short: "Generate a logo",
		Long: `Generate a logo and write it to output (default logo.svg).

The format is taken from --format, or inferred from the output extension.
When both are given and disagree, the extension is corrected to match the
format. The same seed and parameters always produce the same logo; without
--seed or --uuid a random seed is chosen and printed so it can be replayed.`,
		Example: `  hexalith generate
  hexalith generate -s 12345 -t blues -n 4 out.png
  hexalith generate -u 0d5a4b3c-8f4e-4a1f-9d2e-3b6c7a8e9f01 -f pdf
  hexalith generate --pick-theme -f svg,png brand`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := defaultOutput
			if len(args) > 0 {
				output = args[0]
			}
			return c.runGenerate(cmd, output, f)
		},
	}

	d := c.Config.Defaults
	flags := cmd.Flags()
	flags.Uint64VarP(&f.seed, "seed", "s", 0, "random seed (random when omitted)")
	flags.StringVarP(&f.uuid, "uuid", "u", "", "derive the seed from a UUID (overrides --seed)")
	flags.StringVarP(&f.theme, "theme", "t", d.Theme, "color theme (see 'hexalith themes')")
	flags.IntVarP(&f.shapes, "shapes", "n", d.Shapes, "number of shapes")
	flags.IntVarP(&f.gridSize, "grid-size", "g", logo.DefaultDensity, "grid density (2-8)")
	flags.Float64VarP(&f.opacity, "opacity", "o", logo.DefaultOpacity, "shape opacity (0-1)")
	flags.BoolVar(&f.overlap, "overlap", logo.DefaultOverlap, "allow shapes to overlap")
	flags.IntVarP(&f.width, "width", "w", d.Width, "canvas width")
	flags.IntVarP(&f.height, "height", "H", d.Height, "canvas height")
	flags.StringVarP(&f.format, "format", "f", d.Format, "output format(s): svg, png, pdf, json (comma-separated)")
	flags.IntVar(&f.candidates, "candidates", 0, "candidate shapes grown per slot (0 for default)")
	flags.BoolVar(&f.jitter, "jitter", false, "perturb vertices (output is not reproducible)")
	flags.Float64Var(&f.jitterEpsilon, "jitter-epsilon", 0, "maximum jitter displacement")
	flags.BoolVar(&f.pickTheme, "pick-theme", false, "choose the theme interactively")
	flags.BoolVar(&f.noCache, "no-cache", false, "disable caching")
	flags.BoolVar(&f.refresh, "refresh", false, "ignore cached output and regenerate")
	flags.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	flags.StringVar(&f.background, "background", "", "background color (transparent when empty)")
	flags.StringVar(&f.boundary, "boundary", "", "stroke the hexagon boundary in this color")
	flags.BoolVar(&f.cells, "cells", false, "draw the triangular grid under the shapes")
	flags.BoolVar(&f.polygons, "polygons", false, "include placed polygons in JSON output")

	_ = cmd.RegisterFlagCompletionFunc("theme", completeThemes)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// runGenerate resolves options, runs the pipeline and writes the artifacts.
func (c *CLI) runGenerate(cmd *cobra.Command, output string, f generateFlags) error {
	ctx := withLogger(cmd.Context(), c.Logger)

	if f.pickTheme {
		current := c.Config.Defaults.Theme
		if cmd.Flags().Changed("theme") {
			current = f.theme
		}
		name, ok, err := pickTheme(current)
		if err != nil {
			return fmt.Errorf("theme picker: %w", err)
		}
		if !ok {
			printDetail("No theme selected")
			return nil
		}
		if err := cmd.Flags().Set("theme", name); err != nil {
			return err
		}
		f.theme = name
	}

	formats, paths, corrected := resolveOutputs(output, f.format, cmd.Flags().Changed("format"), c.Config.Defaults.Format)
	if corrected {
		c.Logger.Warn("output extension does not match format", "output", output, "written", paths[formats[0]])
	}
	for _, p := range paths {
		if err := errors.ValidateOutputPath(p); err != nil {
			return err
		}
	}

	opts := c.generateOptions(cmd, f)
	opts.Formats = formats

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("generated logo")

	for _, format := range formats {
		path := paths[format]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		loggerFromContext(ctx).Debug("wrote artifact", "format", format, "path", path, "bytes", len(result.Artifacts[format]))
	}

	printSummary(result, formats, paths)
	return nil
}

// generateOptions merges config defaults with the flags the user actually set.
func (c *CLI) generateOptions(cmd *cobra.Command, f generateFlags) pipeline.Options {
	changed := cmd.Flags().Changed
	p := c.Config.Params()

	if changed("seed") {
		p.Seed = logo.Uint64(f.seed)
	}
	if f.uuid != "" {
		p.UUID = f.uuid
	}
	if changed("theme") || p.Theme == "" {
		p.Theme = f.theme
	}
	if changed("shapes") || p.Shapes == 0 {
		p.Shapes = f.shapes
	}
	if changed("grid-size") || p.Density == 0 {
		p.Density = f.gridSize
	}
	if changed("opacity") {
		p.Opacity = logo.Float(f.opacity)
	}
	if changed("overlap") {
		p.Overlap = logo.Bool(f.overlap)
	}
	if changed("width") || p.Width == 0 {
		p.Width = f.width
	}
	if changed("height") || p.Height == 0 {
		p.Height = f.height
	}
	if changed("candidates") {
		p.Candidates = f.candidates
	}
	p.Jitter = f.jitter
	p.JitterEpsilon = f.jitterEpsilon

	return pipeline.Options{
		Params:     p,
		Scale:      f.scale,
		Background: f.background,
		Boundary:   f.boundary,
		Cells:      f.cells,
		Polygons:   f.polygons,
		Refresh:    f.refresh,
		Logger:     c.Logger,
	}
}

// resolveOutputs decides which formats to write and where.
//
// With an explicit format flag the output extension is replaced to match;
// corrected reports that a single-format output path was changed. Without
// one, a known extension picks the format and fallback applies otherwise.
// Multiple formats share the output's base name.
func resolveOutputs(output, formatFlag string, formatSet bool, fallback string) (formats []string, paths map[string]string, corrected bool) {
	ext := filepath.Ext(output)
	given := strings.ToLower(strings.TrimPrefix(ext, "."))

	switch {
	case formatSet:
		formats = parseFormats(formatFlag)
	case pipeline.ValidFormats[given]:
		formats = []string{given}
	default:
		formats = parseFormats(fallback)
	}

	base := strings.TrimSuffix(output, ext)
	paths = make(map[string]string, len(formats))
	for _, f := range formats {
		paths[f] = base + "." + f
	}

	corrected = ext != "" && len(formats) == 1 && paths[formats[0]] != output
	return formats, paths, corrected
}

// printSummary prints what was generated and how to reproduce it.
func printSummary(result *pipeline.Result, formats []string, paths map[string]string) {
	printSuccess("Generated logo %s", StyleNumber.Render(fmt.Sprint(result.Seed)))
	printStats(result.Stats.Shapes, result.Stats.Cells, result.CacheInfo.RenderHit)
	for _, f := range formats {
		printFile(paths[f])
	}
	if result.CacheInfo.Skipped {
		printDetail("jitter enabled, output is not reproducible")
		return
	}
	printNewline()
	printNextStep("Reproduce", fmt.Sprintf("hexalith generate -s %d", result.Seed))
}
