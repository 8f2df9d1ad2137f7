// Package render converts SVG documents to raster and print formats.
//
// # Overview
//
// Charts are always drawn as SVG first (see the chart package). [ToPNG] and
// [ToPDF] convert that SVG with the external rsvg-convert tool from librsvg:
//
//	svg := chart.RenderSVG(fig)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Install librsvg with:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// When the tool is missing both functions return an error with code
// UNSUPPORTED; [Available] reports whether conversion will work.
package render
