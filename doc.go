// Package linechart computes the geometry of scrollable line and curve charts
// of a single series of integer samples.
//
// The package doesn't draw anything itself. A render pass turns samples into a
// [Scene], an immutable list of drawing primitives, which hosts composite onto
// a concrete surface such as an image, an SVG document or a terminal.
//
// # Pipeline
//
// Every pass runs the same steps from scratch:
//
//   - [MapPoints] places samples at evenly spaced x coordinates and normalizes
//     their values into the height of the drawing region, so that the largest
//     sample touches the top and the smallest the bottom.
//   - [Interpolate] computes the control points of a smooth curve through the
//     points (see below).
//   - [LinePath] and [FillPath] build the chart line and the closed outline
//     used to mask the gradient fill below it.
//   - [Dots], [VerticalGrid], [HorizontalGrid] and [ValueLabels] derive the
//     overlays from the same points.
//
// [Render] runs the pipeline for one data set, frame and [Config]. [Surface]
// keeps the current data, frame and configuration and renders again whenever
// one of them changes.
//
// # Coordinates
//
// Points are in region coordinates: y grows downwards and y = 0 is the top of
// the drawing region, which excludes the label margins above and below it.
// [Scene.DataTransform] moves region coordinates into the frame.
//
// The content is wider than the frame once there are more samples than fit;
// [Scene.ScrollOffset] is the scroll position that shows the newest sample.
//
// # Smoothing
//
// The curve is a sequence of cubic Béziers, one per pair of adjacent points.
// Each pair first gets control points on the straight edge, a fraction
// [Smoothing] away from its ends. At every interior point the two control
// points next to it are then averaged with each other's reflection through the
// point, which makes them collinear with it. The curve therefore passes through
// every point with a continuous tangent.
//
// # Geometry
//
// The package carries the small set of 2D primitives the pipeline needs:
// [Point], [Vec2], [Size], [Rect], [Line], [CubicBez], [Circle], [Affine] and
// [BezPath]. Paths are slices of [PathElement] and can be iterated as
// self-contained [PathSegment] values with [BezPath.Segments]. [SVG] formats
// paths as SVG path data.
package linechart
