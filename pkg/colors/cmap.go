package colors

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/jetplot/jetplot/pkg/errors"
)

// perceptual maps the non-hue colormap names to their moreland constructors.
// The diverging maps are wrapped to satisfy the common constructor type.
var perceptual = map[string]func() palette.ColorMap{
	"blue-red":      func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"blue-tan":      func() palette.ColorMap { return moreland.SmoothBlueTan() },
	"green-purple":  func() palette.ColorMap { return moreland.SmoothGreenPurple() },
	"green-red":     func() palette.ColorMap { return moreland.SmoothGreenRed() },
	"purple-orange": func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	"kindlmann":     moreland.Kindlmann,
	"kindlmann-ext": moreland.ExtendedKindlmann,
	"blackbody":     moreland.BlackBody,
	"blackbody-ext": moreland.ExtendedBlackBody,
}

// Colormaps returns every name accepted by [Colormap], sorted.
func Colormaps() []string {
	names := Names()
	for n := range perceptual {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Colormap returns the named colormap spanning [0, 1].
// Hue names give a sequential ramp from the hue's lightest to darkest shade.
func Colormap(name string) (palette.ColorMap, error) {
	var cm palette.ColorMap
	if c, ok := Lookup(name); ok {
		ramp, err := NewRamp(c[:]...)
		if err != nil {
			return nil, err
		}
		cm = ramp
	} else if ctor, ok := perceptual[name]; ok {
		cm = ctor()
	} else {
		return nil, errors.New(errors.ErrCodeInvalidColormap, "unknown colormap %q", name)
	}
	cm.SetMax(1)
	cm.SetMin(0)
	return cm, nil
}

// CmapColors samples n evenly spaced colors from the named colormap over
// [vmin, vmax]. Both bounds must lie in [0, 1]; vmin may exceed vmax to
// sample the map in reverse.
func CmapColors(name string, n int, vmin, vmax float64) ([]color.Color, error) {
	if n < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "number of colors must be positive, got %d", n)
	}
	for _, v := range []float64{vmin, vmax} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "colormap bounds must lie in [0, 1], got %g", v)
		}
	}

	cm, err := Colormap(name)
	if err != nil {
		return nil, err
	}

	out := make([]color.Color, n)
	for i, v := range linspace(vmin, vmax, n) {
		c, err := cm.At(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "sample %s at %g", name, v)
		}
		out[i] = c
	}
	return out, nil
}

// linspace returns n evenly spaced values from a to b inclusive. For n == 1
// it returns a alone.
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + step*float64(i)
	}
	out[n-1] = b
	return out
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Clamped().Hex()
}

// Ramp is a palette.ColorMap that blends evenly spaced color stops in CIE
// L*a*b* space.
type Ramp struct {
	stops    []colorful.Color
	min, max float64
	alpha    float64
}

// NewRamp builds a Ramp from at least two hex color stops.
func NewRamp(hexes ...string) (*Ramp, error) {
	if len(hexes) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidColormap, "a ramp needs at least two stops, got %d", len(hexes))
	}
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "ramp stop %d", i)
		}
		stops[i] = c
	}
	return &Ramp{stops: stops, max: 1, alpha: 1}, nil
}

// At implements palette.ColorMap.
func (r *Ramp) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < r.min:
		return nil, palette.ErrUnderflow
	case v > r.max:
		return nil, palette.ErrOverflow
	}
	if r.max <= r.min {
		return nil, fmt.Errorf("colors: ramp range [%g, %g] is empty", r.min, r.max)
	}

	t := (v - r.min) / (r.max - r.min) * float64(len(r.stops)-1)
	i := int(math.Floor(t))
	if i >= len(r.stops)-1 {
		i = len(r.stops) - 2
	}
	var c colorful.Color
	switch f := t - float64(i); f {
	case 0:
		c = r.stops[i]
	case 1:
		c = r.stops[i+1]
	default:
		c = r.stops[i].BlendLab(r.stops[i+1], f).Clamped()
	}

	R, G, B := c.RGB255()
	return color.NRGBA{R: R, G: G, B: B, A: uint8(math.Round(r.alpha * 255))}, nil
}

func (r *Ramp) Max() float64       { return r.max }
func (r *Ramp) Min() float64       { return r.min }
func (r *Ramp) SetMax(v float64)   { r.max = v }
func (r *Ramp) SetMin(v float64)   { r.min = v }
func (r *Ramp) Alpha() float64     { return r.alpha }
func (r *Ramp) SetAlpha(a float64) { r.alpha = a }

// Palette implements palette.ColorMap by sampling n evenly spaced colors.
func (r *Ramp) Palette(n int) palette.Palette {
	cols := make(swatch, 0, n)
	if n < 1 {
		return cols
	}
	for _, v := range linspace(r.min, r.max, n) {
		c, err := r.At(v)
		if err != nil {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}

type swatch []color.Color

func (s swatch) Colors() []color.Color { return s }

var _ palette.ColorMap = (*Ramp)(nil)
