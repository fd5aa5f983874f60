package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Width  int
	Height int
	Rule   int
	Frames int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42, Frames: 20}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "visible width in cells (0 = sim default)")
	fs.IntVar(&c.Height, "h", c.Height, "visible height in cells (0 = sim default)")
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule for the elementary sim (0 = sim default)")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to print in the headless build")
}

// SimOptions converts the flags a simulation factory understands into its
// string map form. Zero values are left out so sim defaults apply.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	if c.Rule > 0 {
		opts["rule"] = strconv.Itoa(c.Rule)
	}
	return opts
}
