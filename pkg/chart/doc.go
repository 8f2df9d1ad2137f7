// Package chart provides a minimal figure/axes model with convenience
// wrappers that supply default drawing targets and cosmetic axis styling.
//
// # Drawing surface
//
// A [Figure] owns a grid of [Axes]. Each Axes carries two [Axis] values (tick
// placement, tick labels, label text and colors), four [Spine]s and the line
// series drawn on it. [RenderSVG] turns a figure into an SVG document and
// [Figure.Save] writes SVG, PNG or PDF depending on the file extension.
//
// A [Canvas] tracks the current figure the way an interactive plotting
// session does: [Canvas.Gcf] returns the current figure and [Canvas.Gca] its
// current axes, creating them on first use. The package-level [NewFigure],
// [Gcf] and [Gca] functions operate on a shared default canvas.
//
// # Default targets
//
// Most helpers accept [Option] values naming the figure and axes to act on.
// [PlotWrapper] and [AxWrapper] fill in whatever the caller left out:
//
//   - PlotWrapper creates a new subplot (on a new figure unless one is
//     given). Use it for functions that draw a new plot.
//   - AxWrapper never creates a plot; it falls back to the current axes.
//     Use it for functions that modify an existing plot.
//
// Both derive the figure from the axes when only axes are given, run the
// wrapped function, fire the canvas draw hooks and return the axes.
//
// # Styling
//
//	ax := fig.Gca()
//	ax.Plot(nil, ys)
//	chart.Breathe(0.05, chart.TickOut, chart.WithAxes(ax))
//	chart.SetColor("#444444", chart.WithAxes(ax))
//
// [NoTicks], [NoSpines], [TickDir], [SetColor], [SetFontSize] and [Breathe]
// mirror common cosmetic adjustments. Breathe pulls the spines away from the
// data by widening the limits while pinning the spine bounds to the data span.
package chart
