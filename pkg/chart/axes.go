package chart

import (
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/plot"

	"github.com/jetplot/jetplot/pkg/colors"
	"github.com/jetplot/jetplot/pkg/errors"
)

const (
	defaultFontSize   = 10.0
	defaultTickLength = 3.5
	defaultLineWidth  = 1.5
	defaultSpineWidth = 0.8

	// dataMargin is the fraction of the data range added on each side when
	// limits are derived from the data.
	dataMargin = 0.05
)

// Axis holds the state of one axis (x or y) of an Axes.
type Axis struct {
	Label         string
	LabelColor    string
	LabelFontSize float64

	TickColor     string
	TickFontSize  float64
	TickLength    float64
	TickDirection TickDirection
	TickPosition  TickPosition

	min, max   float64
	limitsSet  bool
	ticks      []float64
	ticksSet   bool
	tickLabels []string
}

func newAxis() Axis {
	return Axis{
		LabelColor:    colors.Black,
		LabelFontSize: defaultFontSize,
		TickColor:     colors.Black,
		TickFontSize:  defaultFontSize,
		TickLength:    defaultTickLength,
		TickDirection: TickOut,
		TickPosition:  TicksLow,
	}
}

// Line is a series drawn on an Axes, either as a connected polyline or as
// unconnected markers.
type Line struct {
	X, Y    []float64
	Color   string
	Width   float64
	Label   string
	Markers bool
}

// LineOption configures a Line added with Plot or Scatter.
type LineOption func(*Line)

// LineColor sets the line color.
func LineColor(c string) LineOption { return func(l *Line) { l.Color = c } }

// LineWidth sets the stroke width (or marker radius for scatter).
func LineWidth(w float64) LineOption { return func(l *Line) { l.Width = w } }

// LineLabel names the series.
func LineLabel(s string) LineOption { return func(l *Line) { l.Label = s } }

// Axes is a single plotting area inside a Figure.
type Axes struct {
	Title     string
	Facecolor string

	fig    *Figure
	rows   int
	cols   int
	index  int
	xaxis  Axis
	yaxis  Axis
	spines [4]Spine
	lines  []*Line
}

func newAxes(fig *Figure, rows, cols, index int) *Axes {
	ax := &Axes{
		Facecolor: colors.White,
		fig:       fig,
		rows:      rows,
		cols:      cols,
		index:     index,
		xaxis:     newAxis(),
		yaxis:     newAxis(),
	}
	for i := range ax.spines {
		ax.spines[i] = Spine{Color: colors.Black, Width: defaultSpineWidth}
	}
	return ax
}

// Figure returns the figure that owns the axes.
func (ax *Axes) Figure() *Figure { return ax.fig }

// XAxis returns the x axis for direct adjustment.
func (ax *Axes) XAxis() *Axis { return &ax.xaxis }

// YAxis returns the y axis for direct adjustment.
func (ax *Axes) YAxis() *Axis { return &ax.yaxis }

// Spine returns the spine on the given side.
func (ax *Axes) Spine(s Side) *Spine { return &ax.spines[s] }

// Lines returns the series drawn on the axes.
func (ax *Axes) Lines() []*Line { return ax.lines }

// Plot adds a connected series. A nil x uses 0..len(y)-1.
func (ax *Axes) Plot(x, y []float64, opts ...LineOption) (*Line, error) {
	return ax.add(x, y, false, opts)
}

// Scatter adds a series drawn as unconnected markers. A nil x uses 0..len(y)-1.
func (ax *Axes) Scatter(x, y []float64, opts ...LineOption) (*Line, error) {
	return ax.add(x, y, true, opts)
}

func (ax *Axes) add(x, y []float64, markers bool, opts []LineOption) (*Line, error) {
	if x == nil {
		x = make([]float64, len(y))
		for i := range x {
			x[i] = float64(i)
		}
	}
	if len(x) != len(y) {
		return nil, errors.New(errors.ErrCodeInvalidShape, "x and y must have the same length, got %d and %d", len(x), len(y))
	}
	if len(y) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "series is empty")
	}

	l := &Line{
		X:       slices.Clone(x),
		Y:       slices.Clone(y),
		Color:   colors.Cycle(len(ax.lines), 6),
		Width:   defaultLineWidth,
		Markers: markers,
	}
	for _, opt := range opts {
		opt(l)
	}
	if err := errors.ValidateColor(l.Color); err != nil {
		return nil, err
	}
	ax.lines = append(ax.lines, l)
	return l, nil
}

// XLim returns the x limits: the explicit ones if set, otherwise the data
// range padded by 5% on each side.
func (ax *Axes) XLim() (lo, hi float64) {
	return ax.limits(&ax.xaxis, func(l *Line) []float64 { return l.X })
}

// YLim is the y counterpart of XLim.
func (ax *Axes) YLim() (lo, hi float64) {
	return ax.limits(&ax.yaxis, func(l *Line) []float64 { return l.Y })
}

// SetXLim fixes the x limits.
func (ax *Axes) SetXLim(lo, hi float64) { ax.xaxis.setLimits(lo, hi) }

// SetYLim fixes the y limits.
func (ax *Axes) SetYLim(lo, hi float64) { ax.yaxis.setLimits(lo, hi) }

func (a *Axis) setLimits(lo, hi float64) {
	a.min, a.max, a.limitsSet = lo, hi, true
}

func (ax *Axes) limits(a *Axis, values func(*Line) []float64) (float64, float64) {
	if a.limitsSet {
		return a.min, a.max
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, l := range ax.lines {
		for _, v := range values(l) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	switch {
	case lo > hi:
		return 0, 1
	case lo == hi:
		return lo - 0.5, hi + 0.5
	}
	pad := (hi - lo) * dataMargin
	return lo - pad, hi + pad
}

// XTicks returns the x tick locations: the explicit ones if set, otherwise
// the major ticks gonum's default ticker chooses for the current limits.
func (ax *Axes) XTicks() []float64 {
	lo, hi := ax.XLim()
	return ax.xaxis.tickValues(lo, hi)
}

// YTicks is the y counterpart of XTicks.
func (ax *Axes) YTicks() []float64 {
	lo, hi := ax.YLim()
	return ax.yaxis.tickValues(lo, hi)
}

// SetXTicks fixes the x tick locations. An empty slice removes all ticks.
// Any explicit tick labels are discarded.
func (ax *Axes) SetXTicks(ticks []float64) { ax.xaxis.setTicks(ticks) }

// SetYTicks fixes the y tick locations.
func (ax *Axes) SetYTicks(ticks []float64) { ax.yaxis.setTicks(ticks) }

// XTickLabels returns the label drawn at each x tick.
func (ax *Axes) XTickLabels() []string {
	return ax.xaxis.labelsFor(ax.XTicks())
}

// YTickLabels returns the label drawn at each y tick.
func (ax *Axes) YTickLabels() []string {
	return ax.yaxis.labelsFor(ax.YTicks())
}

// SetXTickLabels fixes the text of the current x ticks and their font size.
// The tick locations are fixed at their current values.
func (ax *Axes) SetXTickLabels(labels []string, fontSize float64) error {
	return ax.xaxis.setTickLabels(ax.XTicks(), labels, fontSize)
}

// SetYTickLabels fixes the text of the current y ticks and their font size.
func (ax *Axes) SetYTickLabels(labels []string, fontSize float64) error {
	return ax.yaxis.setTickLabels(ax.YTicks(), labels, fontSize)
}

// XLabel returns the x axis label.
func (ax *Axes) XLabel() string { return ax.xaxis.Label }

// YLabel returns the y axis label.
func (ax *Axes) YLabel() string { return ax.yaxis.Label }

// SetXLabel sets the x axis label.
func (ax *Axes) SetXLabel(s string) { ax.xaxis.Label = s }

// SetYLabel sets the y axis label.
func (ax *Axes) SetYLabel(s string) { ax.yaxis.Label = s }

func (a *Axis) setTicks(ticks []float64) {
	a.ticks = slices.Clone(ticks)
	if a.ticks == nil {
		a.ticks = []float64{}
	}
	a.ticksSet = true
	a.tickLabels = nil
}

func (a *Axis) setTickLabels(ticks []float64, labels []string, fontSize float64) error {
	if len(labels) != len(ticks) {
		return errors.New(errors.ErrCodeInvalidShape, "got %d tick labels for %d ticks", len(labels), len(ticks))
	}
	if fontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %g", fontSize)
	}
	a.setTicks(ticks)
	a.tickLabels = slices.Clone(labels)
	a.TickFontSize = fontSize
	return nil
}

func (a *Axis) tickValues(lo, hi float64) []float64 {
	if a.ticksSet {
		return slices.Clone(a.ticks)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	var out []float64
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.Label == "" || t.Value < lo || t.Value > hi {
			continue
		}
		out = append(out, t.Value)
	}
	return out
}

func (a *Axis) labelsFor(ticks []float64) []string {
	if a.tickLabels != nil && len(a.tickLabels) == len(ticks) {
		return slices.Clone(a.tickLabels)
	}
	out := make([]string, len(ticks))
	for i, t := range ticks {
		out[i] = FormatTick(t)
	}
	return out
}

// FormatTick renders a tick value with the shortest representation that
// survives rounding to nine decimal places.
func FormatTick(v float64) string {
	v = math.Round(v*1e9) / 1e9
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
