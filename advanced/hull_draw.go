package advanced

import (
	"math"

	"github.com/fogleman/gg"
)

const drawPadding = 20

// Render the hull, along with points (typically the input it was computed
// from), to a PNG file at path. scale is the number of pixels per unit. This
// is a debugging aid; the origin is at the bottom left.
func (hull *ConvexHull) DrawPNG(path string, points []Point, scale float64) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, list := range [][]Point{hull.vertices, points} {
		for _, p := range list {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		// Nothing to draw, but still produce an image
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	if len(hull.vertices) > 0 {
		c.MoveTo(hull.vertices[0].X, hull.vertices[0].Y)
		for _, p := range hull.vertices[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// Dot radii are divided by scale to stay a constant size in pixels
	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}
	c.SetRGB(1, 0.5, 0)
	for _, p := range hull.vertices {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	return c.SavePNG(path)
}
