package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetplot/jetplot/pkg/errors"
)

func TestCmapColorsHueEndpoints(t *testing.T) {
	cols, err := CmapColors("blue", 9, 0, 1)
	require.NoError(t, err)
	require.Len(t, cols, 9)

	assert.Equal(t, Blue.V1(), Hex(cols[0]))
	assert.Equal(t, Blue.V9(), Hex(cols[8]))
	// Evenly spaced samples on a nine-stop ramp land on the stops.
	assert.Equal(t, Blue.V5(), Hex(cols[4]))
}

func TestCmapColorsReverse(t *testing.T) {
	fwd, err := CmapColors("red", 5, 0, 1)
	require.NoError(t, err)
	rev, err := CmapColors("red", 5, 1, 0)
	require.NoError(t, err)

	for i := range fwd {
		assert.Equal(t, Hex(fwd[i]), Hex(rev[len(rev)-1-i]))
	}
}

func TestCmapColorsSingle(t *testing.T) {
	cols, err := CmapColors("green", 1, 0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, Green.V5(), Hex(cols[0]))
}

func TestCmapColorsPerceptual(t *testing.T) {
	for _, name := range []string{
		"blue-red", "blue-tan", "green-purple", "green-red", "purple-orange",
		"kindlmann", "kindlmann-ext", "blackbody", "blackbody-ext",
	} {
		t.Run(name, func(t *testing.T) {
			cols, err := CmapColors(name, 4, 0, 1)
			require.NoError(t, err)
			assert.Len(t, cols, 4)
			assert.NotEqual(t, Hex(cols[0]), Hex(cols[3]))
		})
	}
}

func TestEveryColormapSamples(t *testing.T) {
	bounds := [][2]float64{{0, 1}, {1, 0}, {0.5, 0.5}}
	for _, name := range Colormaps() {
		for _, b := range bounds {
			cols, err := CmapColors(name, 3, b[0], b[1])
			require.NoError(t, err, "%s on [%g, %g]", name, b[0], b[1])
			assert.Len(t, cols, 3)
		}
	}
}

func TestCmapColorsErrors(t *testing.T) {
	tests := []struct {
		name       string
		cmap       string
		n          int
		vmin, vmax float64
		code       errors.Code
	}{
		{"unknown map", "viridis-ish", 3, 0, 1, errors.ErrCodeInvalidColormap},
		{"zero colors", "blue", 0, 0, 1, errors.ErrCodeInvalidInput},
		{"negative bound", "blue", 3, -0.1, 1, errors.ErrCodeInvalidInput},
		{"bound above one", "blue", 3, 0, 1.5, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CmapColors(tt.cmap, tt.n, tt.vmin, tt.vmax)
			assert.True(t, errors.Is(err, tt.code), "got %v, want code %s", err, tt.code)
		})
	}
}

func TestColormapsIncludesHuesAndPerceptual(t *testing.T) {
	names := Colormaps()
	assert.Contains(t, names, "blue")
	assert.Contains(t, names, "blue-red")
	assert.IsIncreasing(t, names)
}

func TestRamp(t *testing.T) {
	r, err := NewRamp(Black, White)
	require.NoError(t, err)

	c, err := r.At(0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, c)

	c, err = r.At(1)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, c)

	_, err = r.At(1.5)
	assert.Error(t, err)

	r.SetAlpha(0.5)
	c, _ = r.At(1)
	assert.Equal(t, uint8(128), c.(color.NRGBA).A)

	assert.Len(t, r.Palette(3).Colors(), 3)
}

func TestNewRampErrors(t *testing.T) {
	_, err := NewRamp(Black)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidColormap))

	_, err = NewRamp(Black, "not-a-color")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidColor))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", Hex(color.NRGBA{255, 0, 0, 255}))
	assert.Equal(t, "#4299e1", Hex(color.RGBA{0x42, 0x99, 0xe1, 0xff}))
}
