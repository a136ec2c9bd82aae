package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"coxtile/internal/coxeter"
	"coxtile/internal/tiling"
)

type renderOptions struct {
	preset    string
	symbol    string
	relations []string
	out       string
	width     int
	height    int
	scale     float64
	centerX   float64
	centerY   float64
	depth     int
	limit     int
	colScale  float64
	highlight bool
	trailing  bool
	distance  bool
}

func main() {
	root := &cobra.Command{
		Use:           "coxtile-render",
		Short:         "Render reflection-group tilings to PNG files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(renderCommand(), presetsCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func renderCommand() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame of a tiling",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.preset, "preset", "heptagonal", "tiling preset to render")
	fs.StringVar(&opts.symbol, "symbol", "", "Schläfli symbol, e.g. \"{7,3}\" (overrides --preset)")
	fs.StringArrayVar(&opts.relations, "relation", nil, "extra relation in \"gens;repeat\" form, e.g. \"0 2 1;8\"")
	fs.StringVarP(&opts.out, "out", "o", "tiling.png", "output PNG path")
	fs.IntVar(&opts.width, "width", 1920, "frame width in pixels")
	fs.IntVar(&opts.height, "height", 1080, "frame height in pixels")
	fs.Float64Var(&opts.scale, "scale", 0.004, "model units per pixel")
	fs.Float64Var(&opts.centerX, "center-x", 0, "model x coordinate at the frame center")
	fs.Float64Var(&opts.centerY, "center-y", 0, "model y coordinate at the frame center")
	fs.IntVar(&opts.depth, "depth", 50, "reduction depth cap per pixel")
	fs.IntVar(&opts.limit, "limit", 2000, "group enumeration step limit")
	fs.Float64Var(&opts.colScale, "colscale", 1, "colormap input range")
	fs.BoolVar(&opts.highlight, "highlight", true, "paint the untouched fundamental domain gray")
	fs.BoolVar(&opts.trailing, "trailing", false, "fold domain copies across the trailing mirror")
	fs.BoolVar(&opts.distance, "distance", false, "use distance-field coloring instead of element colors")
	return cmd
}

func presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available tiling presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range tiling.PresetNames() {
				til, err := tiling.Presets()[name]()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %v\n", name, til.Symbol)
			}
			return nil
		},
	}
}

func runRender(opts *renderOptions) error {
	til, err := buildTiling(opts)
	if err != nil {
		return err
	}

	a, s := til.Tables(opts.limit)
	params := til.Params(a, s, opts.depth)
	params.Center = [2]float64{opts.centerX, opts.centerY}
	params.Scale = [2]float64{opts.scale, opts.scale}
	params.ColScale = opts.colScale
	params.Flags = 0
	if opts.highlight {
		params.Flags |= tiling.FlagHighlight
	}
	if !opts.distance {
		params.Flags |= tiling.FlagElements
	}
	if opts.trailing {
		params.Flags |= tiling.FlagTrailing
	}

	frame := tiling.NewFrame(opts.width, opts.height)
	frame.Render(params)

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func buildTiling(opts *renderOptions) (*tiling.Tiling, error) {
	if opts.symbol != "" {
		symbol, err := coxeter.ParseSchlafli(opts.symbol)
		if err != nil {
			return nil, err
		}
		return tiling.New(opts.symbol, symbol, opts.relations, nil)
	}
	factory, ok := tiling.Presets()[opts.preset]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (try `coxtile-render presets`)", opts.preset)
	}
	return factory()
}
