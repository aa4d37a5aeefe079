package life

import "testing"

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "32", "h": "24", "pattern": "mwss", "seed": "-5"})
	if c.Width != 32 || c.Height != 24 || c.Pattern != PatternMWSS || c.Seed != -5 {
		t.Fatalf("unexpected config %+v", c)
	}

	d := FromMap(map[string]string{"w": "0", "h": "abc", "pattern": "nope", "seed": "x"})
	if d != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", d)
	}

	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should give the default config")
	}
}

func TestConfigMapRoundTrip(t *testing.T) {
	c := Config{Width: 10, Height: 7, Pattern: PatternGlider, Seed: 99}
	if got := FromMap(c.ToMap()); got != c {
		t.Fatalf("round trip = %+v, expected %+v", got, c)
	}
}

func TestNewWithConfig(t *testing.T) {
	u, err := NewWithConfig(Config{Width: 20, Height: 10, Pattern: PatternGlider, Seed: 1})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if u.Size().W != 20 || u.Size().H != 10 || u.Population() != 5 {
		t.Fatalf("size=%v population=%d, expected 20x10 glider", u.Size(), u.Population())
	}

	if _, err := NewWithConfig(Config{Width: 0, Height: 10}); err == nil {
		t.Fatal("zero width should fail")
	}
}

func TestParametersSnapshot(t *testing.T) {
	u := Create(PatternGlider, 8)
	values := map[string]string{}
	for _, g := range u.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	want := map[string]string{
		"w":          "64",
		"h":          "64",
		"pattern":    "glider",
		"seed":       "8",
		"generation": "0",
		"population": "5",
	}
	for k, v := range want {
		if values[k] != v {
			t.Fatalf("parameter %s = %q, expected %q", k, values[k], v)
		}
	}
}
