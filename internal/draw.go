package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels, so the alpha disks are not clipped
// at the edges
const drawPadding = 40

// Render the input ring, the hull, and the alpha disks of the hull edges to a
// PNG. This is for debugging; scale is pixels per unit.
func DrawHull(path string, input, hull []Point, alpha, scale float64) error {
	if len(input) == 0 {
		return errors.New("nothing to draw")
	}

	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range input {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
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
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)

	// Alpha disks, only for edges that have them
	c.SetRGBA(1, 1, 0, 0.3)
	for i, p := range hull {
		q := hull[CircularIndex(i+1, len(hull))]
		left, right, err := AlphaCenters(p, q, alpha)
		if err != nil {
			continue
		}
		for _, center := range []Point{left, right} {
			c.DrawCircle(center.X, center.Y, alpha)
			c.Stroke()
		}
	}

	// The input ring
	c.SetRGB(0.5, 0.5, 0.5)
	drawRing(c, input)
	c.Stroke()
	for _, p := range input {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	// The hull
	if len(hull) > 0 {
		c.SetLineWidth(3)
		c.SetRGB(0, 1, 1)
		drawRing(c, hull)
		c.Stroke()
	}

	return c.SavePNG(path)
}

func drawRing(c *gg.Context, points []Point) {
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Print an image inline in the terminal (iTerm only).
func CatImage(path string, w io.Writer) error {
	return imgcat.CatFile(path, w)
}
