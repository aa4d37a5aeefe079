package life

import "strconv"

// Config controls the Universe dimensions and initial pattern.
type Config struct {
	Width   int
	Height  int
	Pattern Pattern
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Pattern: PatternDefault,
		Seed:    42,
	}
}

// FromMap populates a Config from a string map. Invalid values keep their
// defaults.
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
	if v, ok := cfg["pattern"]; ok {
		if parsed, err := ParsePattern(v); err == nil {
			c.Pattern = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ToMap renders the config in the form FromMap accepts.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"pattern": c.Pattern.String(),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}
