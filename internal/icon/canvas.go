package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// ErrCanvasSize is returned when a canvas cannot be allocated at the requested size.
var ErrCanvasSize = errors.New("invalid canvas size")

// maxCanvasSize keeps the pixel buffer addressable on 32-bit platforms.
const maxCanvasSize = 1 << 14

// halfCoverage is the mask value at which a pixel counts as inside a stroke.
// Exactly half coverage lands a few steps either side of 0x80 after the
// rasterizer's fixed-point rounding.
const halfCoverage = 0x7c

// Canvas is a square NRGBA raster with hard-edged drawing primitives.
// Every painted pixel gets the exact colour it was painted with.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas allocates a size x size canvas filled with bg.
func NewCanvas(size int, bg color.NRGBA) (*Canvas, error) {
	if size <= 0 || size > maxCanvasSize {
		return nil, fmt.Errorf("canvas %dx%d: %w", size, size, ErrCanvasSize)
	}
	c := &Canvas{img: image.NewNRGBA(image.Rect(0, 0, size, size))}
	c.fillRect(c.img.Bounds(), bg)
	return c, nil
}

// Image returns the underlying raster.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Fill paints every pixel of r, corners included.
func (c *Canvas) Fill(r Corners, col color.NRGBA) {
	c.fillRect(r.Rect(), col)
}

// Outline paints a border of the given width inside r.
func (c *Canvas) Outline(r Corners, width int, col color.NRGBA) {
	rect := r.Rect()
	if width <= 0 || rect.Empty() {
		return
	}
	if 2*width >= rect.Dx() || 2*width >= rect.Dy() {
		c.fillRect(rect, col)
		return
	}
	c.fillRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width), col)
	c.fillRect(image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y), col)
	c.fillRect(image.Rect(rect.Min.X, rect.Min.Y+width, rect.Min.X+width, rect.Max.Y-width), col)
	c.fillRect(image.Rect(rect.Max.X-width, rect.Min.Y+width, rect.Max.X, rect.Max.Y-width), col)
}

// fillRect stores col's bytes as they are. Going through color.RGBA would
// premultiply and turn transparent white into transparent black.
func (c *Canvas) fillRect(r image.Rectangle, col color.NRGBA) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	px := [4]uint8{col.R, col.G, col.B, col.A}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := c.img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, i = x+1, i+4 {
			copy(c.img.Pix[i:i+4], px[:])
		}
	}
}

// Polyline joins consecutive points with strokes of the given width.
func (c *Canvas) Polyline(pts []image.Point, width int, col color.NRGBA) {
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], width, col)
	}
}

// Line strokes the segment p0-p1.
//
// A wide stroke is the quadrilateral reaching round-half-up((width-1)/2)
// pixels to the left of the direction of travel and round-half-down((width-1)/2)
// pixels to the right, between the two endpoints. A horizontal width-4 line
// through row y covers rows y-1 to y+2.
func (c *Canvas) Line(p0, p1 image.Point, width int, col color.NRGBA) {
	if p0 == p1 {
		c.set(p0.X, p0.Y, col)
		return
	}
	if width <= 1 {
		c.thinLine(p0, p1, col)
		return
	}

	x0, y0 := float64(p0.X), float64(p0.Y)
	x1, y1 := float64(p1.X), float64(p1.Y)
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	half := float64(width-1) / 2
	left := math.Floor(half+0.5) / length
	right := -math.Floor(-half+0.5) / length

	quad := []point{
		{x0 - left*dy, y0 + left*dx},
		{x0 + right*dy, y0 - right*dx},
		{x1 + right*dy, y1 - right*dx},
		{x1 - left*dy, y1 + left*dx},
	}

	if dx == 0 || dy == 0 {
		// Axis-aligned quads have whole-pixel corners.
		minX, minY, maxX, maxY := bounds(quad)
		c.Fill(Corners{
			Min: image.Pt(int(math.Round(minX)), int(math.Round(minY))),
			Max: image.Pt(int(math.Round(maxX)), int(math.Round(maxY))),
		}, col)
		return
	}

	// Pixel (i, j) spans [i, i+1) x [j, j+1), so its centre is (i+0.5, j+0.5).
	for i := range quad {
		quad[i].x += 0.5
		quad[i].y += 0.5
	}
	c.fillPolygon(quad, col)
}

type point struct{ x, y float64 }

// fillPolygon paints the pixels at least half covered by poly. Along a
// straight edge that is every pixel whose centre lies inside.
func (c *Canvas) fillPolygon(poly []point, col color.NRGBA) {
	minX, minY, maxX, maxY := bounds(poly)
	left, top := int(math.Floor(minX)), int(math.Floor(minY))
	w, h := int(math.Ceil(maxX))-left, int(math.Ceil(maxY))-top
	if w <= 0 || h <= 0 {
		return
	}

	ox, oy := float64(left), float64(top)
	r := vector.NewRasterizer(w, h)
	r.MoveTo(float32(poly[0].x-ox), float32(poly[0].y-oy))
	for _, p := range poly[1:] {
		r.LineTo(float32(p.x-ox), float32(p.y-oy))
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, a := range row {
			if a >= halfCoverage {
				c.set(left+x, top+y, col)
			}
		}
	}
}

func bounds(poly []point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	return minX, minY, maxX, maxY
}

// thinLine is Bresenham's algorithm, both endpoints included.
func (c *Canvas) thinLine(p0, p1 image.Point, col color.NRGBA) {
	dx, dy := abs(p1.X-p0.X), -abs(p1.Y-p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	x, y := p0.X, p0.Y
	e := dx + dy
	for {
		c.set(x, y, col)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// set clips to the canvas.
func (c *Canvas) set(x, y int, col color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	c.img.SetNRGBA(x, y, col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
