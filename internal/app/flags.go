package app

import "flag"

// Config represents the command-line parameters for the terminal frontend.
type Config struct {
	Width  int
	Height int
	Wrap   bool
	Length int
	TPS    int
	Seed   uint64
	ASCII  bool
}

// NewConfig returns a Config populated with sensible defaults. The default
// board is braille-friendly (width even, height a multiple of four).
func NewConfig() *Config {
	return &Config{Width: 40, Height: 24, Wrap: false, Length: 4, TPS: 8, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "wrap around the edges instead of dying")
	fs.IntVar(&c.Length, "len", c.Length, "initial snake length")
	fs.IntVar(&c.TPS, "tps", c.TPS, "base ticks per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for food placement")
	fs.BoolVar(&c.ASCII, "ascii", c.ASCII, "render with ascii cells instead of braille")
}
