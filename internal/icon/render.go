package icon

import (
	"fmt"
	"image"
)

// Render draws the icon described by l. Later layers cover earlier ones:
// panel, waves in order, centre line, frame.
func Render(l Layout) (*image.NRGBA, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	c, err := NewCanvas(l.Size, Transparent)
	if err != nil {
		return nil, err
	}

	c.Fill(l.Panel, l.PanelColor)
	for _, w := range l.Waves {
		c.Polyline(l.Points(w), l.StrokeWidth, w.Color)
	}
	c.Polyline(l.centerPoints(), l.StrokeWidth, l.CenterColor)
	c.Outline(l.Frame, l.StrokeWidth, l.FrameColor)

	return c.Image(), nil
}
