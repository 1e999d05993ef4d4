package icon

import (
	"image"
	"math"
	"testing"
)

func TestSample(t *testing.T) {
	l := Default()
	tests := []struct {
		wave int
		x    int
		want int
	}{
		{0, 17, 161},
		{0, 18, 162},
		{0, 66, 182},
		{0, 100, 123},
		{0, 238, 190},
		{1, 17, 139},
		{1, 66, 127},
		{1, 100, 112},
		{1, 238, 113},
		{2, 17, 156},
		{2, 66, 99},
		{2, 100, 132},
		{2, 238, 141},
	}
	for _, tt := range tests {
		if got := l.Sample(l.Waves[tt.wave], tt.x); got != tt.want {
			t.Errorf("wave %d at x=%d: got %d, want %d", tt.wave, tt.x, got, tt.want)
		}
	}
}

func TestSampleMatchesFormula(t *testing.T) {
	l := Default()
	w := l.Waves[0]
	want := 128 + int(64*math.Sin(2*math.Pi*1.0*17/196))
	if got := l.Sample(w, 17); got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestPoints(t *testing.T) {
	l := Default()
	for i, w := range l.Waves {
		pts := l.Points(w)
		if len(pts) != 222 {
			t.Fatalf("wave %d: got %d points, want 222", i, len(pts))
		}
		if pts[0].X != 17 || pts[len(pts)-1].X != 238 {
			t.Errorf("wave %d: x range [%d, %d], want [17, 238]", i, pts[0].X, pts[len(pts)-1].X)
		}
		for j, p := range pts {
			if p.X != 17+j {
				t.Fatalf("wave %d: point %d has x=%d, want %d", i, j, p.X, 17+j)
			}
			if p.Y != l.Sample(w, p.X) {
				t.Fatalf("wave %d: point %v off the wave", i, p)
			}
		}
	}
}

func TestPointsSingleColumn(t *testing.T) {
	l := Default()
	l.WaveFrom, l.WaveTo = 40, 41
	pts := l.Points(l.Waves[0])
	if len(pts) != 1 || pts[0] != image.Pt(40, l.Sample(l.Waves[0], 40)) {
		t.Fatalf("got %v", pts)
	}
}

func TestPointsEmptyRange(t *testing.T) {
	l := Default()
	l.WaveFrom, l.WaveTo = 50, 50
	if pts := l.Points(l.Waves[0]); len(pts) != 0 {
		t.Fatalf("got %v, want no points", pts)
	}
}

func TestWaveYsMatchPoints(t *testing.T) {
	l := Default()
	w := l.Waves[1]
	ys := l.waveYs(w)
	for i, p := range l.Points(w) {
		if ys[i] != float64(p.Y) {
			t.Fatalf("column %d: y %v, want %d", p.X, ys[i], p.Y)
		}
	}
}

func TestCenterPoints(t *testing.T) {
	pts := Default().centerPoints()
	if len(pts) != 223 {
		t.Fatalf("got %d points, want 223", len(pts))
	}
	if pts[0] != image.Pt(16, 128) || pts[222] != image.Pt(238, 128) {
		t.Errorf("got ends %v and %v", pts[0], pts[222])
	}
}
