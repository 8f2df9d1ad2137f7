// Package pkg provides the libraries behind jetplot: minimal plot styling,
// a named color palette and signal statistics.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Plotting - [chart] (figures, axes, styling, SVG) and [render]
//     (PNG/PDF conversion)
//  2. Data - [signals] (stable rank, participation ratio, normalization),
//     [colors] (palette table and colormaps) and [dataio] (CSV/JSON tables)
//  3. Infrastructure - [cache], [config], [errors], [observability] and
//     [buildinfo]
//
// # Quick Start
//
// Plot a line on a fresh figure and strip it down:
//
//	import (
//	    "github.com/jetplot/jetplot/pkg/chart"
//	    "github.com/jetplot/jetplot/pkg/colors"
//	)
//
//	ax := chart.Gca()
//	ax.Plot(xs, ys, chart.LineColor(colors.Blue.V6()))
//	chart.Breathe(0.05, chart.TickOut, chart.WithAxes(ax))
//	_ = ax.Figure().Save("plot.svg")
//
// Compute statistics of a data matrix:
//
//	sr, err := signals.StableRank(X)
//	pr, err := signals.ParticipationRatio(cov)
//	Xn, err := signals.Normalize(X, signals.Rows)
//
// Sample a colormap:
//
//	cs, err := colors.CmapColors("blue", 5, 0.3, 1.0)
//
// # Errors
//
// Every package reports failures as [errors.Error] values carrying a
// stable code such as INVALID_SHAPE or INVALID_COLORMAP; use
// [errors.GetCode] to branch on them.
//
// [chart]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/chart
// [render]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/render
// [signals]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/signals
// [colors]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/colors
// [dataio]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/dataio
// [cache]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/cache
// [config]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/config
// [errors]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/errors
// [errors.Error]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/errors#Error
// [errors.GetCode]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/errors#GetCode
// [observability]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/jetplot/jetplot/pkg/buildinfo
package pkg
