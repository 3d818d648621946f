// Package render draws a grid, and optionally the path of one word through
// it, as a Graphviz diagram.
//
// # Overview
//
// [ToDOT] lays the cells out at their grid coordinates (pinned positions
// under the neato engine) and, for a traced word, fills the path cells and
// draws numbered edges in visiting order. [Render] turns the DOT text into
// SVG through go-graphviz, and into PDF or PNG via rsvg-convert.
//
//	p, _ := search.Trace(g, "cats")
//	dot := render.ToDOT(g, p, render.Options{Edges: true})
//	svg, err := render.Render(ctx, dot, render.FormatSVG)
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg).
package render
