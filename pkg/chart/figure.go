package chart

import (
	"github.com/jetplot/jetplot/pkg/colors"
	"github.com/jetplot/jetplot/pkg/errors"
)

const (
	DefaultWidth  = 640.0
	DefaultHeight = 480.0
)

// Figure is a drawing surface holding a grid of Axes.
type Figure struct {
	Width, Height float64
	Facecolor     string
	Title         string

	axes    []*Axes
	current int
}

// FigureOption configures a new Figure.
type FigureOption func(*Figure)

// WithSize sets the figure size in pixels.
func WithSize(w, h float64) FigureOption {
	return func(f *Figure) { f.Width, f.Height = w, h }
}

// WithFacecolor sets the figure background.
func WithFacecolor(c string) FigureOption {
	return func(f *Figure) { f.Facecolor = c }
}

// WithTitle sets the figure title drawn above all subplots.
func WithTitle(s string) FigureOption {
	return func(f *Figure) { f.Title = s }
}

// New creates an empty figure. Most callers go through a Canvas instead so
// the figure becomes current.
func New(opts ...FigureOption) *Figure {
	f := &Figure{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Facecolor: colors.White,
		current:   -1,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddSubplot adds an Axes at position index (1-based, row-major) of a
// rows x cols grid and makes it current.
func (f *Figure) AddSubplot(rows, cols, index int) (*Axes, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "subplot grid must be at least 1x1, got %dx%d", rows, cols)
	}
	if index < 1 || index > rows*cols {
		return nil, errors.New(errors.ErrCodeInvalidInput, "subplot index %d out of range [1, %d]", index, rows*cols)
	}
	ax := newAxes(f, rows, cols, index)
	f.axes = append(f.axes, ax)
	f.current = len(f.axes) - 1
	return ax, nil
}

// Gca returns the current axes, adding a single full-size subplot if the
// figure has none.
func (f *Figure) Gca() *Axes {
	if f.current < 0 {
		ax, _ := f.AddSubplot(1, 1, 1)
		return ax
	}
	return f.axes[f.current]
}

// Sca makes ax the current axes. It reports false if ax belongs to another
// figure.
func (f *Figure) Sca(ax *Axes) bool {
	for i, a := range f.axes {
		if a == ax {
			f.current = i
			return true
		}
	}
	return false
}

// Axes returns the subplots in creation order.
func (f *Figure) Axes() []*Axes { return f.axes }
