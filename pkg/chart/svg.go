package chart

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"
)

// Subplot grid placement, as fractions of the figure size.
const (
	subplotLeft   = 0.125
	subplotRight  = 0.9
	subplotBottom = 0.11
	subplotTop    = 0.88
	subplotWSpace = 0.2
	subplotHSpace = 0.2
)

const (
	fontFamily     = "DejaVu Sans, Helvetica, Arial, sans-serif"
	titleFontSize  = 12.0
	tickLabelPad   = 3.5
	axisLabelPad   = 4.0
	fontCharWidth  = 0.6
	markerScale    = 2.0
	tickEpsilonRel = 1e-9
)

type rect struct{ x, y, w, h float64 }

// frame returns the pixel rectangle of the axes inside its figure.
func (ax *Axes) frame() rect {
	W, H := ax.fig.Width, ax.fig.Height

	totalW := (subplotRight - subplotLeft) * W
	cellW := totalW / (float64(ax.cols) + subplotWSpace*float64(ax.cols-1))
	totalH := (subplotTop - subplotBottom) * H
	cellH := totalH / (float64(ax.rows) + subplotHSpace*float64(ax.rows-1))

	row := (ax.index - 1) / ax.cols
	col := (ax.index - 1) % ax.cols
	return rect{
		x: subplotLeft*W + float64(col)*cellW*(1+subplotWSpace),
		y: (1-subplotTop)*H + float64(row)*cellH*(1+subplotHSpace),
		w: cellW,
		h: cellH,
	}
}

// transform maps data coordinates to pixels for one Axes.
type transform struct {
	r              rect
	x0, x1, y0, y1 float64
}

func (ax *Axes) transform() transform {
	x0, x1 := ax.XLim()
	y0, y1 := ax.YLim()
	return transform{r: ax.frame(), x0: x0, x1: x1, y0: y0, y1: y1}
}

func (t transform) px(x float64) float64 {
	if t.x1 == t.x0 {
		return t.r.x
	}
	return t.r.x + (x-t.x0)/(t.x1-t.x0)*t.r.w
}

func (t transform) py(y float64) float64 {
	if t.y1 == t.y0 {
		return t.r.y + t.r.h
	}
	return t.r.y + t.r.h - (y-t.y0)/(t.y1-t.y0)*t.r.h
}

// RenderSVG draws the figure as a standalone SVG document.
func RenderSVG(f *Figure) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", f.Width, f.Height, f.Facecolor)

	if f.Title != "" {
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="%.1f">%s</text>`+"\n",
			f.Width/2, (1-subplotTop)*f.Height/2, fontFamily, titleFontSize+2, escapeXML(f.Title))
	}

	for i, ax := range f.axes {
		renderAxes(&buf, ax, i+1)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderAxes(buf *bytes.Buffer, ax *Axes, id int) {
	t := ax.transform()
	r := t.r

	fmt.Fprintf(buf, `  <g id="axes-%d">`+"\n", id)
	if ax.Facecolor != ColorNone {
		fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n", r.x, r.y, r.w, r.h, ax.Facecolor)
	}
	fmt.Fprintf(buf, `    <clipPath id="clip-%d"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/></clipPath>`+"\n",
		id, r.x, r.y, r.w, r.h)

	fmt.Fprintf(buf, `    <g clip-path="url(#clip-%d)">`+"\n", id)
	for _, l := range ax.lines {
		renderLine(buf, t, l)
	}
	buf.WriteString("    </g>\n")

	renderSpines(buf, ax, t)
	xExtent := renderXTicks(buf, ax, t)
	yExtent := renderYTicks(buf, ax, t)
	renderAxisLabels(buf, ax, r, xExtent, yExtent)

	if ax.Title != "" {
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="%.1f">%s</text>`+"\n",
			r.x+r.w/2, r.y-6, fontFamily, titleFontSize, escapeXML(ax.Title))
	}
	buf.WriteString("  </g>\n")
}

func renderLine(buf *bytes.Buffer, t transform, l *Line) {
	if l.Markers {
		for i := range l.X {
			if !finite(l.X[i]) || !finite(l.Y[i]) {
				continue
			}
			fmt.Fprintf(buf, `      <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
				t.px(l.X[i]), t.py(l.Y[i]), l.Width*markerScale, l.Color)
		}
		return
	}

	// Non-finite samples split the series into separate polylines.
	var pts []string
	flush := func() {
		if len(pts) > 1 {
			fmt.Fprintf(buf, `      <polyline points="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linejoin="round" stroke-linecap="round"/>`+"\n",
				strings.Join(pts, " "), l.Color, l.Width)
		}
		pts = pts[:0]
	}
	for i := range l.X {
		if !finite(l.X[i]) || !finite(l.Y[i]) {
			flush()
			continue
		}
		pts = append(pts, fmt.Sprintf("%.2f,%.2f", t.px(l.X[i]), t.py(l.Y[i])))
	}
	flush()
}

func renderSpines(buf *bytes.Buffer, ax *Axes, t transform) {
	r := t.r
	for side := Left; side <= Bottom; side++ {
		s := ax.Spine(side)
		if !s.Visible() {
			continue
		}
		var x1, y1, x2, y2 float64
		switch side {
		case Left, Right:
			x1 = r.x
			if side == Right {
				x1 = r.x + r.w
			}
			x2 = x1
			y1, y2 = r.y+r.h, r.y
			if lo, hi, ok := s.Bounds(); ok {
				y1, y2 = t.py(lo), t.py(hi)
			}
		case Top, Bottom:
			y1 = r.y + r.h
			if side == Top {
				y1 = r.y
			}
			y2 = y1
			x1, x2 = r.x, r.x+r.w
			if lo, hi, ok := s.Bounds(); ok {
				x1, x2 = t.px(lo), t.px(hi)
			}
		}
		fmt.Fprintf(buf, `    <line class="spine spine-%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="square"/>`+"\n",
			side, x1, y1, x2, y2, s.Color, s.Width)
	}
}

// tickSpan returns how far a tick reaches inside and outside the spine.
func tickSpan(a *Axis) (inside, outside float64) {
	switch a.TickDirection {
	case TickIn:
		return a.TickLength, 0
	case TickInOut:
		return a.TickLength / 2, a.TickLength / 2
	default:
		return 0, a.TickLength
	}
}

func inRange(v, lo, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	eps := (hi - lo) * tickEpsilonRel
	return v >= lo-eps && v <= hi+eps
}

// renderXTicks draws x tick marks and labels and returns the vertical space
// they take below the axes.
func renderXTicks(buf *bytes.Buffer, ax *Axes, t transform) float64 {
	a := ax.XAxis()
	r := t.r
	ticks := ax.XTicks()
	labels := a.labelsFor(ticks)
	in, out := tickSpan(a)
	labelsLow := a.TickPosition != TicksHigh

	for i, v := range ticks {
		if !inRange(v, t.x0, t.x1) {
			continue
		}
		x := t.px(v)
		if a.TickPosition.low() {
			base := r.y + r.h
			tickLine(buf, x, base-in, x, base+out, a)
		}
		if a.TickPosition.high() {
			tickLine(buf, x, r.y-out, x, r.y+in, a)
		}

		if labelsLow {
			y := r.y + r.h + out + tickLabelPad + a.TickFontSize
			tickText(buf, x, y, "middle", labels[i], a)
		} else {
			y := r.y - out - tickLabelPad
			tickText(buf, x, y, "middle", labels[i], a)
		}
	}

	if len(ticks) == 0 {
		return 0
	}
	return out + tickLabelPad + a.TickFontSize
}

// renderYTicks draws y tick marks and labels and returns the horizontal space
// they take left of the axes.
func renderYTicks(buf *bytes.Buffer, ax *Axes, t transform) float64 {
	a := ax.YAxis()
	r := t.r
	ticks := ax.YTicks()
	labels := a.labelsFor(ticks)
	in, out := tickSpan(a)
	labelsLow := a.TickPosition != TicksHigh

	widest := 0
	for i, v := range ticks {
		if !inRange(v, t.y0, t.y1) {
			continue
		}
		y := t.py(v)
		if a.TickPosition.low() {
			tickLine(buf, r.x-out, y, r.x+in, y, a)
		}
		if a.TickPosition.high() {
			base := r.x + r.w
			tickLine(buf, base-in, y, base+out, y, a)
		}

		if labelsLow {
			tickText(buf, r.x-out-tickLabelPad, y, "end", labels[i], a)
		} else {
			tickText(buf, r.x+r.w+out+tickLabelPad, y, "start", labels[i], a)
		}
		widest = max(widest, len(labels[i]))
	}

	if len(ticks) == 0 {
		return 0
	}
	return out + tickLabelPad + float64(widest)*a.TickFontSize*fontCharWidth
}

func tickLine(buf *bytes.Buffer, x1, y1, x2, y2 float64, a *Axis) {
	if a.TickPosition == TicksNone {
		return
	}
	fmt.Fprintf(buf, `    <line class="tick" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		x1, y1, x2, y2, a.TickColor, defaultSpineWidth)
}

func tickText(buf *bytes.Buffer, x, y float64, anchor, s string, a *Axis) {
	dy := ""
	if anchor != "middle" {
		dy = ` dy="0.35em"`
	}
	fmt.Fprintf(buf, `    <text class="tick-label" x="%.2f" y="%.2f"%s text-anchor="%s" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		x, y, dy, anchor, fontFamily, a.TickFontSize, a.TickColor, escapeXML(s))
}

func renderAxisLabels(buf *bytes.Buffer, ax *Axes, r rect, xExtent, yExtent float64) {
	if xa := ax.XAxis(); xa.Label != "" {
		y := r.y + r.h + xExtent + axisLabelPad + xa.LabelFontSize
		fmt.Fprintf(buf, `    <text class="axis-label" x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
			r.x+r.w/2, y, fontFamily, xa.LabelFontSize, xa.LabelColor, escapeXML(xa.Label))
	}
	if ya := ax.YAxis(); ya.Label != "" {
		x := r.x - yExtent - axisLabelPad
		y := r.y + r.h/2
		fmt.Fprintf(buf, `    <text class="axis-label" x="%.2f" y="%.2f" transform="rotate(-90 %.2f %.2f)" text-anchor="middle" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
			x, y, x, y, fontFamily, ya.LabelFontSize, ya.LabelColor, escapeXML(ya.Label))
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
