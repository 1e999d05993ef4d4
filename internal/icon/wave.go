package icon

import (
	"image"
	"image/color"
	"math"
)

// Wave describes one sine stroke.
type Wave struct {
	Color     color.NRGBA
	Amplitude float64 // pixels
	Frequency float64 // full periods per Divisor pixels
}

// Sample returns the row the wave passes through at column x.
// The value is truncated toward zero, not rounded.
func (l Layout) Sample(w Wave, x int) int {
	phase := 2 * math.Pi * w.Frequency * float64(x) / l.Divisor
	return int(float64(l.Baseline) + w.Amplitude*math.Sin(phase))
}

// Points returns the polyline traced by w across the wave range,
// one point per column from WaveFrom up to but not including WaveTo.
func (l Layout) Points(w Wave) []image.Point {
	if l.WaveTo <= l.WaveFrom {
		return nil
	}
	pts := make([]image.Point, 0, l.WaveTo-l.WaveFrom)
	for x := l.WaveFrom; x < l.WaveTo; x++ {
		pts = append(pts, image.Pt(x, l.Sample(w, x)))
	}
	return pts
}

func (l Layout) waveYs(w Wave) []float64 {
	pts := l.Points(w)
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = float64(p.Y)
	}
	return ys
}

// centerPoints returns one point per column from CenterFrom to CenterTo.
// The line is horizontal, so only the x range is walked.
func (l Layout) centerPoints() []image.Point {
	from, to := l.CenterFrom.X, l.CenterTo.X
	if to < from {
		from, to = to, from
	}
	pts := make([]image.Point, 0, to-from+1)
	for x := from; x <= to; x++ {
		pts = append(pts, image.Pt(x, l.CenterFrom.Y))
	}
	return pts
}
