package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Layers  int
	Spacing float64
	Noise   string
	Seed    int64
	Animate bool
	Width   int
	Height  int
	TPS     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Layers:  8,
		Spacing: 1.0,
		Noise:   "perlin",
		Seed:    42,
		Animate: true,
		Width:   960,
		Height:  640,
		TPS:     60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Layers, "layers", c.Layers, "number of layers in the stack")
	fs.Float64Var(&c.Spacing, "spacing", c.Spacing, "vertical spacing between layers")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise source to displace layers with")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the noise source")
	fs.BoolVar(&c.Animate, "animate", c.Animate, "continuously re-displace visible layers")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}
