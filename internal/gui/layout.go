package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type screenLayout struct {
	Header  rl.Rectangle
	Stats   rl.Rectangle
	Journey rl.Rectangle
	Map     rl.Rectangle
	Actions rl.Rectangle
	Journal rl.Rectangle
	Input   rl.Rectangle
}

// computeLayout splits the window into a left column of stats and journal and
// a right column with the map above the action slots.
func computeLayout(width, height int32) screenLayout {
	const pad = 12
	w := float32(max(width, 640))
	h := float32(max(height, 480))

	headerH := float32(48)
	journeyH := float32(84)
	inputH := float32(40)
	leftW := float32(math.Floor(float64(w-3*pad) * 0.42))
	rightW := w - 3*pad - leftW
	bodyY := pad + headerH + pad + journeyH + pad
	bodyH := h - bodyY - pad - inputH - pad
	statsH := float32(180)
	actionsH := float32(120)

	return screenLayout{
		Header:  rl.NewRectangle(pad, pad, w-2*pad, headerH),
		Journey: rl.NewRectangle(pad, pad+headerH+pad, w-2*pad, journeyH),
		Stats:   rl.NewRectangle(pad, bodyY, leftW, statsH),
		Journal: rl.NewRectangle(pad, bodyY+statsH+pad, leftW, bodyH-statsH-pad),
		Map:     rl.NewRectangle(2*pad+leftW, bodyY, rightW, bodyH-actionsH-pad),
		Actions: rl.NewRectangle(2*pad+leftW, bodyY+bodyH-actionsH, rightW, actionsH),
		Input:   rl.NewRectangle(pad, h-pad-inputH, w-2*pad, inputH),
	}
}

// journeyMarkerX places a progress percentage (0-100) along a bar.
func journeyMarkerX(bar rl.Rectangle, percent float64) float32 {
	p := math.Max(0, math.Min(100, percent))
	return bar.X + bar.Width*float32(p/100)
}

// statBarWidth scales a stat against full, growing the scale when a stat has
// been boosted above it.
func statBarWidth(value, full int, width float32) float32 {
	if value <= 0 || width <= 0 {
		return 0
	}
	full = max(full, value, 1)
	return width * float32(value) / float32(full)
}

// actionSlotRects lays the four action slots out in a 2x2 grid.
func actionSlotRects(area rl.Rectangle) [4]rl.Rectangle {
	const gap = 8
	inner := rl.NewRectangle(area.X+gap, area.Y+gap, area.Width-2*gap, area.Height-2*gap)
	cellW := (inner.Width - gap) / 2
	cellH := (inner.Height - gap) / 2
	var rects [4]rl.Rectangle
	for i := range rects {
		col := float32(i % 2)
		row := float32(i / 2)
		rects[i] = rl.NewRectangle(inner.X+col*(cellW+gap), inner.Y+row*(cellH+gap), cellW, cellH)
	}
	return rects
}

// mapProjection maps world metres onto a square drawing area centred on a
// world point. World y grows north, screen y grows down.
type mapProjection struct {
	CenterX, CenterY float64
	Scale            float64
	Origin           rl.Vector2
	DrawRect         rl.Rectangle
}

func computeMapProjection(area rl.Rectangle, centerX, centerY, span float64) (mapProjection, bool) {
	if area.Width <= 1 || area.Height <= 1 || span <= 0 {
		return mapProjection{}, false
	}
	side := float32(math.Min(float64(area.Width), float64(area.Height)))
	originX := area.X + (area.Width-side)/2
	originY := area.Y + (area.Height-side)/2
	return mapProjection{
		CenterX:  centerX,
		CenterY:  centerY,
		Scale:    float64(side) / span,
		Origin:   rl.Vector2{X: originX + side/2, Y: originY + side/2},
		DrawRect: rl.NewRectangle(originX, originY, side, side),
	}, true
}

func (p mapProjection) Project(x, y float64) rl.Vector2 {
	return rl.Vector2{
		X: p.Origin.X + float32((x-p.CenterX)*p.Scale),
		Y: p.Origin.Y - float32((y-p.CenterY)*p.Scale),
	}
}

func (p mapProjection) Visible(v rl.Vector2) bool {
	return rl.CheckCollisionPointRec(v, p.DrawRect)
}
