// Package colors holds jetplot's named color table and colormap sampling.
//
// Each hue is a [Color]: nine hex shades ordered from lightest (V1) to
// darkest (V9). The table is static; nothing in this package mutates it.
//
//	colors.Blue.V5()          // "#4299e1"
//	colors.Rainbow[1].Shade(4) // orange v4
//
// [CmapColors] samples evenly spaced colors from a named colormap, covering
// both the sequential maps built from the hues and the perceptual maps from
// gonum's moreland package.
package colors

import (
	"fmt"
	"slices"
)

// Shades is the number of entries in every Color.
const Shades = 9

// Color is a nine-step ramp of one hue, lightest first.
type Color [Shades]string

// Shade returns the i-th shade, counting from 1 like the V1..V9 accessors.
// It panics if i is outside [1, 9].
func (c Color) Shade(i int) string {
	if i < 1 || i > Shades {
		panic(fmt.Sprintf("colors: shade %d out of range [1, %d]", i, Shades))
	}
	return c[i-1]
}

func (c Color) V1() string { return c[0] }
func (c Color) V2() string { return c[1] }
func (c Color) V3() string { return c[2] }
func (c Color) V4() string { return c[3] }
func (c Color) V5() string { return c[4] }
func (c Color) V6() string { return c[5] }
func (c Color) V7() string { return c[6] }
func (c Color) V8() string { return c[7] }
func (c Color) V9() string { return c[8] }

const (
	Black = "#000000"
	White = "#ffffff"
)

var (
	Gray = Color{
		"#f7fafc", "#edf2f7", "#e2e8f0", "#cbd5e0", "#a0aec0",
		"#718096", "#4a5568", "#2d3748", "#1a202c",
	}
	Red = Color{
		"#fff5f5", "#fed7d7", "#feb2b2", "#fc8181", "#f56565",
		"#e53e3e", "#c53030", "#9b2c2c", "#742a2a",
	}
	Orange = Color{
		"#fffaf0", "#feebc8", "#fbd38d", "#f6ad55", "#ed8936",
		"#dd6b20", "#c05621", "#9c4221", "#7b341e",
	}
	Yellow = Color{
		"#fffff0", "#fefcbf", "#faf089", "#f6e05e", "#ecc94b",
		"#d69e2e", "#b7791f", "#975a16", "#744210",
	}
	Green = Color{
		"#f0fff4", "#c6f6d5", "#9ae6b4", "#68d391", "#48bb78",
		"#38a169", "#2f855a", "#276749", "#22543d",
	}
	Teal = Color{
		"#e6fffa", "#b2f5ea", "#81e6d9", "#4fd1c5", "#38b2ac",
		"#319795", "#2c7a7b", "#285e61", "#234e52",
	}
	Blue = Color{
		"#ebf8ff", "#bee3f8", "#90cdf4", "#63b3ed", "#4299e1",
		"#3182ce", "#2b6cb0", "#2c5282", "#2a4365",
	}
	Indigo = Color{
		"#ebf4ff", "#c3dafe", "#a3bffa", "#7f9cf5", "#667eea",
		"#5a67d8", "#4c51bf", "#434190", "#3c366b",
	}
	Purple = Color{
		"#faf5ff", "#e9d8fd", "#d6bcfa", "#b794f4", "#9f7aea",
		"#805ad5", "#6b46c1", "#553c9a", "#44337a",
	}
	Pink = Color{
		"#fff5f7", "#fed7e2", "#fbb6ce", "#f687b3", "#ed64a6",
		"#d53f8c", "#b83280", "#97266d", "#702459",
	}
)

// Rainbow is the default series order: hues that stay distinct when
// plotted next to each other.
var Rainbow = [...]Color{Blue, Orange, Green, Red, Purple, Teal, Pink, Indigo, Yellow}

// Bright returns the v4 shade of every Rainbow hue.
func Bright() []string { return rainbowShade(4) }

// Dark returns the v6 shade of every Rainbow hue.
func Dark() []string { return rainbowShade(6) }

func rainbowShade(i int) []string {
	out := make([]string, len(Rainbow))
	for k, c := range Rainbow {
		out[k] = c.Shade(i)
	}
	return out
}

var hues = map[string]Color{
	"gray":   Gray,
	"red":    Red,
	"orange": Orange,
	"yellow": Yellow,
	"green":  Green,
	"teal":   Teal,
	"blue":   Blue,
	"indigo": Indigo,
	"purple": Purple,
	"pink":   Pink,
}

// Lookup returns the hue registered under name ("gray", "blue", ...).
// "grey" is accepted as an alias for "gray".
func Lookup(name string) (Color, bool) {
	if name == "grey" {
		name = "gray"
	}
	c, ok := hues[name]
	return c, ok
}

// Names returns the registered hue names in sorted order.
func Names() []string {
	names := make([]string, 0, len(hues))
	for n := range hues {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Cycle returns the color for series index i, cycling through shade s of the
// Rainbow hues. It is what the chart package uses for unstyled lines.
func Cycle(i, s int) string {
	return Rainbow[i%len(Rainbow)].Shade(s)
}

// Groups returns the names accepted by Group.
func Groups() []string {
	return append([]string{"bright", "dark", "rainbow"}, Names()...)
}

// Group returns the series colors for a named palette: "rainbow" (v6 of each
// Rainbow hue), "bright", "dark", or a hue name, which yields that hue's
// shades from v3 to v9.
func Group(name string) ([]string, bool) {
	switch name {
	case "rainbow":
		return rainbowShade(6), true
	case "bright":
		return Bright(), true
	case "dark":
		return Dark(), true
	}
	c, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	return slices.Clone(c[2:]), true
}
