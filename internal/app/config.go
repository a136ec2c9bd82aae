package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Preset   string
	Width    int
	Height   int
	Scale    float64
	Depth    int
	Limit    int
	ColScale float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Preset:   "heptagonal",
		Width:    960,
		Height:   720,
		Scale:    0.004,
		Depth:    50,
		Limit:    2000,
		ColScale: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "tiling preset to display")
	fs.IntVar(&c.Width, "width", c.Width, "frame width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "frame height in pixels")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "model units per pixel")
	fs.IntVar(&c.Depth, "depth", c.Depth, "reduction depth cap per pixel")
	fs.IntVar(&c.Limit, "limit", c.Limit, "group enumeration step limit")
	fs.Float64Var(&c.ColScale, "colscale", c.ColScale, "colormap input range")
}
