package snake

import "strconv"

// Config holds the board parameters. It is read-only after construction.
type Config struct {
	Width  int
	Height int
	// WrapEdges maps an exiting head onto the opposite edge instead of dying.
	WrapEdges bool
	// InitialLen is the snake length after a reset (minimum 1).
	InitialLen int
	// BrailleFriendly is a rendering-density hint for frontends; the
	// simulation itself never consults it.
	BrailleFriendly bool
}

// DefaultConfig returns the standard board.
func DefaultConfig() Config {
	return Config{
		Width:           40,
		Height:          24,
		WrapEdges:       false,
		InitialLen:      4,
		BrailleFriendly: true,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.WrapEdges = parsed
		}
	}
	if v, ok := cfg["len"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.InitialLen = parsed
		}
	}
	return c
}
