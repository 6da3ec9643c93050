// Package draw renders scenario reports as images, for eyeballing clipping
// results.
package draw

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/scenario"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const Padding = 40

const DefaultScale = 40

type rgb struct{ r, g, b float64 }

var classColors = map[polyclip.Classification]rgb{
	polyclip.Unknown: {0.5, 0.5, 0.5},
	polyclip.Inside:  {0, 1, 0},
	polyclip.OnEdge:  {1, 1, 0},
	polyclip.Outside: {1, 0, 0},
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func emptyBounds() bounds {
	return bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

func (b *bounds) add(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
}

func reportBounds[T polyclip.Scalar](report *scenario.Report[T]) bounds {
	b := emptyBounds()
	addAll := func(points []polyclip.Point[T]) {
		for _, p := range points {
			b.add(polyclip.Float(p))
		}
	}
	addAll(report.Polygon.Points)
	for _, p := range report.Points {
		b.add(polyclip.Float(p.At))
	}
	for _, p := range report.Paths {
		addAll(p.Path)
	}
	for _, s := range report.Segments {
		addAll(s.A[:])
		addAll(s.B[:])
	}
	if math.IsInf(b.minX, 1) {
		return bounds{}
	}
	return b
}

// Render draws a report. The polygon is filled, each path is drawn thin with
// its clipped parts drawn thick over it, query points are dotted in a color
// per classification and segment pairs are drawn with their intersections
// marked. Scale is pixels per coordinate unit; zero means DefaultScale.
func Render[T polyclip.Scalar](report *scenario.Report[T], scale float64) *gg.Context {
	if scale <= 0 {
		scale = DefaultScale
	}
	b := reportBounds(report)

	// Set up the context
	width := int(scale*(b.maxX-b.minX)) + Padding*2
	height := int(scale*(b.maxY-b.minY)) + Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(Padding, Padding)
	c.Scale(scale, scale)
	c.Translate(-b.minX, -b.minY)

	drawPolygon(c, report.Polygon)

	for _, p := range report.Paths {
		c.SetLineWidth(1)
		c.SetRGB(0.6, 0.6, 0.6)
		drawPolyline(c, p.Path)
		c.SetLineWidth(4)
		c.SetRGB(1, 0.3, 0.3)
		drawPairs(c, p.Clipped)
	}

	for _, s := range report.Segments {
		c.SetLineWidth(2)
		c.SetRGB(0.3, 0.5, 1)
		drawPolyline(c, s.A[:])
		drawPolyline(c, s.B[:])
		c.SetRGB(1, 0, 1)
		for _, p := range s.Intersections {
			dot(c, p, 5/scale)
		}
	}

	for _, p := range report.Points {
		color := classColors[p.Class]
		c.SetRGB(color.r, color.g, color.b)
		dot(c, p.At, 4/scale)
	}
	return c
}

func drawPolygon[T polyclip.Scalar](c *gg.Context, poly polyclip.Polygon[T]) {
	if len(poly.Points) == 0 {
		return
	}
	c.SetLineWidth(2)
	c.MoveTo(polyclip.Float(poly.Points[0]))
	for _, p := range poly.Points[1:] {
		c.LineTo(polyclip.Float(p))
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()
}

func drawPolyline[T polyclip.Scalar](c *gg.Context, points []polyclip.Point[T]) {
	if len(points) < 2 {
		return
	}
	c.MoveTo(polyclip.Float(points[0]))
	for _, p := range points[1:] {
		c.LineTo(polyclip.Float(p))
	}
	c.Stroke()
}

// Draws clipper output, where each consecutive pair is one sub-segment.
func drawPairs[T polyclip.Scalar](c *gg.Context, points []polyclip.Point[T]) {
	for i := 0; i+1 < len(points); i += 2 {
		c.MoveTo(polyclip.Float(points[i]))
		c.LineTo(polyclip.Float(points[i+1]))
	}
	c.Stroke()
}

func dot[T polyclip.Scalar](c *gg.Context, p polyclip.Point[T], radius float64) {
	x, y := polyclip.Float(p)
	c.DrawCircle(x, y, radius)
	c.Fill()
}

// SavePNG renders a report and writes it to path.
func SavePNG[T polyclip.Scalar](report *scenario.Report[T], scale float64, path string) error {
	if err := Render(report, scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// EncodePNG renders a report and writes it to w as a PNG.
func EncodePNG[T polyclip.Scalar](report *scenario.Report[T], scale float64, w io.Writer) error {
	return errors.Wrap(Render(report, scale).EncodePNG(w), "encoding png")
}

// Show prints a PNG file inline in the terminal. Only terminals that speak the
// iTerm image protocol display it.
func Show(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "showing %s", path)
}
