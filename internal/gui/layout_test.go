package gui

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestComputeLayoutKeepsPanelsInsideWindow(t *testing.T) {
	for _, size := range [][2]int32{{1366, 768}, {640, 480}, {200, 100}} {
		layout := computeLayout(size[0], size[1])
		w := float32(max(size[0], 640))
		h := float32(max(size[1], 480))
		for name, r := range map[string]rl.Rectangle{
			"header": layout.Header, "journey": layout.Journey, "stats": layout.Stats,
			"journal": layout.Journal, "map": layout.Map, "actions": layout.Actions, "input": layout.Input,
		} {
			if r.Width <= 0 || r.Height <= 0 {
				t.Fatalf("%dx%d: expected %s to have area, got %+v", size[0], size[1], name, r)
			}
			if r.X < 0 || r.Y < 0 || r.X+r.Width > w || r.Y+r.Height > h {
				t.Fatalf("%dx%d: expected %s inside window, got %+v", size[0], size[1], name, r)
			}
		}
		if layout.Map.X <= layout.Stats.X+layout.Stats.Width {
			t.Fatalf("expected map right of stats")
		}
	}
}

func TestJourneyMarkerXClamps(t *testing.T) {
	bar := rl.NewRectangle(10, 0, 200, 10)
	cases := []struct {
		percent float64
		want    float32
	}{
		{0, 10},
		{50, 110},
		{100, 210},
		{-5, 10},
		{140, 210},
	}
	for _, tc := range cases {
		if got := journeyMarkerX(bar, tc.percent); got != tc.want {
			t.Fatalf("percent %v: expected %v, got %v", tc.percent, tc.want, got)
		}
	}
}

func TestStatBarWidthGrowsScaleWhenBoosted(t *testing.T) {
	if got := statBarWidth(5, 10, 100); got != 50 {
		t.Fatalf("expected half bar, got %v", got)
	}
	if got := statBarWidth(12, 10, 100); got != 100 {
		t.Fatalf("expected boosted stat to fill the bar, got %v", got)
	}
	if got := statBarWidth(0, 10, 100); got != 0 {
		t.Fatalf("expected empty bar at zero, got %v", got)
	}
	if got := statBarWidth(-3, 10, 100); got != 0 {
		t.Fatalf("expected empty bar below zero, got %v", got)
	}
}

func TestActionSlotRectsFormGrid(t *testing.T) {
	rects := actionSlotRects(rl.NewRectangle(0, 0, 408, 208))
	if rects[0].Width != 192 || rects[0].Height != 92 {
		t.Fatalf("expected 192x92 slots, got %vx%v", rects[0].Width, rects[0].Height)
	}
	if rects[1].X <= rects[0].X || rects[1].Y != rects[0].Y {
		t.Fatalf("expected slot 2 right of slot 1, got %+v %+v", rects[0], rects[1])
	}
	if rects[2].X != rects[0].X || rects[2].Y <= rects[0].Y {
		t.Fatalf("expected slot 3 below slot 1, got %+v %+v", rects[0], rects[2])
	}
	if rects[3].X+rects[3].Width != 400 || rects[3].Y+rects[3].Height != 200 {
		t.Fatalf("expected slot 4 to end at the inner corner, got %+v", rects[3])
	}
}

func TestMapProjectionCentresAndFlipsY(t *testing.T) {
	proj, ok := computeMapProjection(rl.NewRectangle(0, 0, 300, 200), 100, 50, 400)
	if !ok {
		t.Fatalf("expected valid projection")
	}
	if math.Abs(proj.Scale-0.5) > 1e-9 {
		t.Fatalf("expected scale 0.5, got %v", proj.Scale)
	}
	centre := proj.Project(100, 50)
	if centre.X != 150 || centre.Y != 100 {
		t.Fatalf("expected centre at 150,100 got %v,%v", centre.X, centre.Y)
	}
	north := proj.Project(100, 90)
	if north.Y != 80 {
		t.Fatalf("expected north to draw above centre at y=80, got %v", north.Y)
	}
	east := proj.Project(140, 50)
	if east.X != 170 {
		t.Fatalf("expected east at x=170, got %v", east.X)
	}
	if _, ok := computeMapProjection(rl.NewRectangle(0, 0, 0, 10), 0, 0, 100); ok {
		t.Fatalf("expected degenerate area to be rejected")
	}
}
