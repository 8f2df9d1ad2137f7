package chart

import (
	"github.com/jetplot/jetplot/pkg/errors"
)

// Defaults for the styling helpers.
const (
	DefaultFontSize      = 18.0
	DefaultBreatheFactor = 0.05
	DefaultAxisColor     = "#444444"
)

// SetFontSize sets the font size of the x and y tick labels, fixing the
// labels at the current tick values. Like every PlotWrapper helper it opens
// a new subplot unless axes are given.
func SetFontSize(size float64, opts ...Option) (*Axes, error) {
	return PlotWrapper(func(t Target) error {
		return setFontSize(t.Ax, size)
	})(opts...)
}

func setFontSize(ax *Axes, size float64) error {
	if err := ax.SetXTickLabels(ax.XTickLabels(), size); err != nil {
		return err
	}
	return ax.SetYTickLabels(ax.YTickLabels(), size)
}

// NoTicks clears all tick marks, which suits image plots.
func NoTicks(opts ...Option) (*Axes, error) {
	return AxWrapper(func(t Target) error {
		t.Ax.SetXTicks(nil)
		t.Ax.SetYTicks(nil)
		return nil
	})(opts...)
}

// NoSpines hides the top and right spines and keeps ticks on the left and
// bottom only.
func NoSpines(opts ...Option) (*Axes, error) {
	return AxWrapper(func(t Target) error {
		noSpines(t.Ax)
		return nil
	})(opts...)
}

func noSpines(ax *Axes) {
	ax.Spine(Right).SetColor(ColorNone)
	ax.Spine(Top).SetColor(ColorNone)
	ax.XAxis().TickPosition = TicksLow
	ax.YAxis().TickPosition = TicksLow
}

// TickDir points the x and y tick marks in the given direction.
func TickDir(direction TickDirection, opts ...Option) (*Axes, error) {
	return AxWrapper(func(t Target) error {
		return tickDir(t.Ax, direction)
	})(opts...)
}

func tickDir(ax *Axes, direction TickDirection) error {
	if _, err := ParseTickDirection(string(direction)); err != nil {
		return err
	}
	ax.XAxis().TickDirection = direction
	ax.YAxis().TickDirection = direction
	return nil
}

// Breathe pulls the bottom and left spines away from the data.
//
// For each axis the data span is the spine bounds if set, otherwise the
// current limits. The limits are widened by factor times the span on both
// sides and the spine is pinned to the span, so repeated calls keep the
// spines on the data while adding more room. Breathe then hides the top and
// right spines and points the ticks in direction.
func Breathe(factor float64, direction TickDirection, opts ...Option) (*Axes, error) {
	return AxWrapper(func(t Target) error {
		if factor < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "breathe factor must be non-negative, got %g", factor)
		}
		if _, err := ParseTickDirection(string(direction)); err != nil {
			return err
		}
		ax := t.Ax

		bottom := ax.Spine(Bottom)
		xa, xb, ok := bottom.Bounds()
		if !ok {
			xa, xb = ax.XLim()
		}
		xr := xb - xa
		ax.SetXLim(xa-factor*xr, xb+factor*xr)
		bottom.SetBounds(xa, xb)

		left := ax.Spine(Left)
		ya, yb, ok := left.Bounds()
		if !ok {
			ya, yb = ax.YLim()
		}
		yr := yb - ya
		ax.SetYLim(ya-factor*yr, yb+factor*yr)
		left.SetBounds(ya, yb)

		noSpines(ax)
		return tickDir(ax, direction)
	})(opts...)
}

// SetColor colors the tick marks, tick labels and axis labels of both axes.
func SetColor(color string, opts ...Option) (*Axes, error) {
	return AxWrapper(func(t Target) error {
		if err := errors.ValidateColor(color); err != nil {
			return err
		}
		for _, a := range []*Axis{t.Ax.XAxis(), t.Ax.YAxis()} {
			a.TickColor = color
			a.LabelColor = color
		}
		return nil
	})(opts...)
}
