package chart

import (
	"slices"
	"sync"
)

// DrawFunc is called with the affected figure after a wrapped helper runs.
type DrawFunc func(*Figure) error

// Canvas tracks open figures and which of them is current. It is safe for
// concurrent use; the figures it hands out are not.
type Canvas struct {
	mu       sync.Mutex
	defaults []FigureOption
	figures  []*Figure
	current  *Figure
	hooks    []DrawFunc
}

// NewCanvas creates a canvas whose new figures start from defaults.
func NewCanvas(defaults ...FigureOption) *Canvas {
	return &Canvas{defaults: defaults}
}

// NewFigure opens a figure, applying the canvas defaults then opts, and
// makes it current.
func (c *Canvas) NewFigure(opts ...FigureOption) *Figure {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.newFigureLocked(opts...)
}

func (c *Canvas) newFigureLocked(opts ...FigureOption) *Figure {
	all := append(slices.Clone(c.defaults), opts...)
	f := New(all...)
	c.figures = append(c.figures, f)
	c.current = f
	return f
}

// Gcf returns the current figure, opening one if none is open.
func (c *Canvas) Gcf() *Figure {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return c.newFigureLocked()
	}
	return c.current
}

// Gca returns the current axes of the current figure.
func (c *Canvas) Gca() *Axes {
	return c.Gcf().Gca()
}

// SetCurrent makes f the current figure, adopting it if the canvas did not
// open it.
func (c *Canvas) SetCurrent(f *Figure) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.Contains(c.figures, f) {
		c.figures = append(c.figures, f)
	}
	c.current = f
}

// Figures returns the open figures in the order they were opened.
func (c *Canvas) Figures() []*Figure {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.figures)
}

// Close forgets f. If f was current, the most recently opened remaining
// figure becomes current.
func (c *Canvas) Close(f *Figure) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.figures = slices.DeleteFunc(c.figures, func(g *Figure) bool { return g == f })
	if c.current == f {
		c.current = nil
		if n := len(c.figures); n > 0 {
			c.current = c.figures[n-1]
		}
	}
}

// CloseAll forgets every figure.
func (c *Canvas) CloseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.figures = nil
	c.current = nil
}

// OnDraw registers fn to run whenever a wrapped helper finishes with a
// figure. Hooks run in registration order.
func (c *Canvas) OnDraw(fn DrawFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, fn)
}

// Draw runs the draw hooks for f, stopping at the first error.
func (c *Canvas) Draw(f *Figure) error {
	c.mu.Lock()
	hooks := slices.Clone(c.hooks)
	c.mu.Unlock()

	for _, h := range hooks {
		if err := h(f); err != nil {
			return err
		}
	}
	return nil
}

var std = NewCanvas()

// Default returns the canvas used by the package-level functions.
func Default() *Canvas { return std }

// NewFigure opens a figure on the default canvas.
func NewFigure(opts ...FigureOption) *Figure { return std.NewFigure(opts...) }

// Gcf returns the current figure of the default canvas.
func Gcf() *Figure { return std.Gcf() }

// Gca returns the current axes of the default canvas.
func Gca() *Axes { return std.Gca() }
