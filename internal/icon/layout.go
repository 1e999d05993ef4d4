// Package icon renders the TAMAI application icon: a framed white panel
// crossed by three sine waves and a black centre line.
package icon

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/gonum/floats"
)

// OutputFile is where the program writes the rendered icon.
const OutputFile = "Icon.png"

// --- Layout ---

// Layout holds every fixed value the renderer draws with.
// Rectangles are given by inclusive pixel corners, the way they are drawn.
type Layout struct {
	Size int

	Panel      Corners
	PanelColor color.NRGBA

	Waves    []Wave
	WaveFrom int // first sampled x
	WaveTo   int // sampling stops before this x
	Baseline int
	Divisor  float64

	StrokeWidth int

	CenterFrom  image.Point
	CenterTo    image.Point
	CenterColor color.NRGBA

	Frame      Corners
	FrameColor color.NRGBA
}

// Corners is an axis-aligned rectangle given by two inclusive corner pixels.
type Corners struct {
	Min, Max image.Point
}

// Rect converts c to the half-open image.Rectangle covering the same pixels.
func (c Corners) Rect() image.Rectangle {
	return image.Rect(c.Min.X, c.Min.Y, c.Max.X+1, c.Max.Y+1)
}

var (
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black     = color.NRGBA{A: 255}
	lightGray = color.NRGBA{R: 196, G: 196, B: 196, A: 255}

	// Transparent is the colour every pixel starts out as.
	Transparent = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
)

// Default returns the icon's layout.
func Default() Layout {
	panel := Corners{Min: image.Pt(16, 32), Max: image.Pt(239, 224)}
	return Layout{
		Size:       256,
		Panel:      panel,
		PanelColor: white,
		Waves: []Wave{
			{Color: color.NRGBA{R: 255, G: 16, B: 16, A: 255}, Amplitude: 64, Frequency: 1.0},
			{Color: color.NRGBA{R: 16, G: 255, B: 16, A: 255}, Amplitude: 16, Frequency: 1.5},
			{Color: color.NRGBA{R: 16, G: 16, B: 255, A: 255}, Amplitude: 32, Frequency: 2.0},
		},
		WaveFrom:    17,
		WaveTo:      239,
		Baseline:    128,
		Divisor:     196,
		StrokeWidth: 4,
		CenterFrom:  image.Pt(16, 128),
		CenterTo:    image.Pt(238, 128),
		CenterColor: black,
		Frame:       panel,
		FrameColor:  lightGray,
	}
}

// Validate reports whether everything l draws stays on the canvas.
// A stroke reaches StrokeWidth/2 pixels beyond the points it joins.
func (l Layout) Validate() error {
	if l.Size <= 0 || l.Size > maxCanvasSize {
		return fmt.Errorf("layout size %d: %w", l.Size, ErrCanvasSize)
	}
	if l.StrokeWidth < 1 {
		return fmt.Errorf("stroke width %d must be positive", l.StrokeWidth)
	}
	if l.WaveTo <= l.WaveFrom {
		return fmt.Errorf("empty wave range [%d, %d)", l.WaveFrom, l.WaveTo)
	}
	if l.Divisor == 0 {
		return fmt.Errorf("wave divisor must be non-zero")
	}

	bounds := image.Rect(0, 0, l.Size, l.Size)
	for name, c := range map[string]Corners{"panel": l.Panel, "frame": l.Frame} {
		if !c.Rect().In(bounds) {
			return fmt.Errorf("%s %v outside %dx%d canvas", name, c.Rect(), l.Size, l.Size)
		}
	}

	reach := float64(l.StrokeWidth / 2)
	lo, hi := reach, float64(l.Size-1)-reach
	inside := func(v float64) bool { return v >= lo && v <= hi }

	for _, p := range []image.Point{l.CenterFrom, l.CenterTo} {
		if !inside(float64(p.X)) || !inside(float64(p.Y)) {
			return fmt.Errorf("centre line point %v outside canvas", p)
		}
	}
	if !inside(float64(l.WaveFrom)) || !inside(float64(l.WaveTo-1)) {
		return fmt.Errorf("wave range [%d, %d) outside canvas", l.WaveFrom, l.WaveTo)
	}
	for i, w := range l.Waves {
		ys := l.waveYs(w)
		if top, bottom := floats.Min(ys), floats.Max(ys); !inside(top) || !inside(bottom) {
			return fmt.Errorf("wave %d spans y=[%.0f, %.0f], outside canvas", i, top, bottom)
		}
	}
	return nil
}
