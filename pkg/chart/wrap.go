package chart

import (
	"github.com/jetplot/jetplot/pkg/errors"
)

// Target is the figure and axes a wrapped helper draws on.
type Target struct {
	Fig *Figure
	Ax  *Axes

	canvas *Canvas
}

// Canvas returns the canvas the target was resolved against.
func (t Target) Canvas() *Canvas { return t.canvas }

// Option names part of a Target; unset parts are filled in by the wrapper.
type Option func(*Target)

// WithFigure draws on f.
func WithFigure(f *Figure) Option { return func(t *Target) { t.Fig = f } }

// WithAxes draws on ax.
func WithAxes(ax *Axes) Option { return func(t *Target) { t.Ax = ax } }

// WithCanvas resolves defaults against c instead of the default canvas.
func WithCanvas(c *Canvas) Option { return func(t *Target) { t.canvas = c } }

// Wrapped is a helper whose drawing target is supplied through options.
type Wrapped func(opts ...Option) (*Axes, error)

// PlotWrapper wraps fn so that it always has somewhere new to draw.
//
// Without axes, the target figure is the given one or a fresh figure opened
// on the canvas, and a new full-size subplot is added to it. With axes but no
// figure, the figure is the axes' owner.
func PlotWrapper(fn func(Target) error) Wrapped {
	return wrap(fn, func(t *Target) error {
		if t.Fig == nil {
			t.Fig = t.canvas.NewFigure()
		}
		ax, err := t.Fig.AddSubplot(1, 1, 1)
		if err != nil {
			return err
		}
		t.Ax = ax
		return nil
	})
}

// AxWrapper wraps fn so that it acts on an existing plot and never creates
// one. Without axes, the target is the current axes of the given figure, or
// of the canvas' current figure.
func AxWrapper(fn func(Target) error) Wrapped {
	return wrap(fn, func(t *Target) error {
		if t.Fig == nil {
			t.Fig = t.canvas.Gcf()
		}
		t.Ax = t.Fig.Gca()
		return nil
	})
}

func wrap(fn func(Target) error, missingAxes func(*Target) error) Wrapped {
	return func(opts ...Option) (*Axes, error) {
		t := Target{canvas: std}
		for _, opt := range opts {
			opt(&t)
		}
		if t.canvas == nil {
			t.canvas = std
		}

		if t.Ax == nil {
			if err := missingAxes(&t); err != nil {
				return nil, err
			}
		} else if t.Fig == nil {
			t.Fig = t.Ax.Figure()
		}
		if t.Fig == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "axes are not attached to a figure")
		}

		if err := fn(t); err != nil {
			return t.Ax, err
		}
		if err := t.canvas.Draw(t.Fig); err != nil {
			return t.Ax, err
		}
		return t.Ax, nil
	}
}
