package chart

import (
	"github.com/jetplot/jetplot/pkg/errors"
)

// ColorNone hides whatever it is applied to.
const ColorNone = "none"

// Side identifies one of the four spines around an Axes.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

var sideNames = [...]string{"left", "right", "top", "bottom"}

func (s Side) String() string {
	if s < Left || s > Bottom {
		return "unknown"
	}
	return sideNames[s]
}

// TickDirection controls whether tick marks point into the axes, out of it,
// or straddle the spine.
type TickDirection string

const (
	TickOut   TickDirection = "out"
	TickIn    TickDirection = "in"
	TickInOut TickDirection = "inout"
)

// ParseTickDirection validates a tick direction name.
func ParseTickDirection(s string) (TickDirection, error) {
	switch d := TickDirection(s); d {
	case TickOut, TickIn, TickInOut:
		return d, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid tick direction %q (must be 'in', 'out' or 'inout')", s)
	}
}

// TickPosition selects which spines of an axis carry tick marks. Low is the
// bottom spine for the x axis and the left spine for the y axis.
type TickPosition string

const (
	TicksBoth TickPosition = "both"
	TicksLow  TickPosition = "low"
	TicksHigh TickPosition = "high"
	TicksNone TickPosition = "none"
)

func (p TickPosition) low() bool  { return p == TicksBoth || p == TicksLow }
func (p TickPosition) high() bool { return p == TicksBoth || p == TicksHigh }

// Spine is one of the lines bounding the data area.
type Spine struct {
	Color string
	Width float64

	bounds    [2]float64
	hasBounds bool
}

// Visible reports whether the spine is drawn.
func (s *Spine) Visible() bool { return s.Color != ColorNone }

// SetColor sets the spine color; ColorNone hides it.
func (s *Spine) SetColor(c string) { s.Color = c }

// Bounds returns the data interval the spine is restricted to. ok is false
// when the spine spans the full axis.
func (s *Spine) Bounds() (lo, hi float64, ok bool) {
	return s.bounds[0], s.bounds[1], s.hasBounds
}

// SetBounds restricts the spine to the data interval [lo, hi].
func (s *Spine) SetBounds(lo, hi float64) {
	s.bounds = [2]float64{lo, hi}
	s.hasBounds = true
}

// ClearBounds lets the spine span the full axis again.
func (s *Spine) ClearBounds() { s.hasBounds = false }
