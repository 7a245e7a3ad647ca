package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/ranger/internal/game"
)

func (ui *journeyUI) draw(snap game.Snapshot) {
	layout := computeLayout(ui.width, ui.height)
	ui.drawHeader(layout.Header, snap)
	ui.drawJourney(layout.Journey, snap)
	ui.drawStats(layout.Stats, snap)
	ui.drawJournal(layout.Journal, snap)
	ui.drawMap(layout.Map, snap)
	ui.drawActions(layout.Actions, snap)
	ui.drawInput(layout.Input)
}

func (ui *journeyUI) drawHeader(rect rl.Rectangle, snap game.Snapshot) {
	drawPanel(rect, "")
	x := int32(rect.X) + 14
	y := int32(rect.Y) + 9
	rl.DrawText("RANGER", x, y, fontTitle, colorAccent)
	info := fmt.Sprintf("%s   x%g   epoch %d", snap.State, snap.TimeMultiplier, snap.EpochSeed)
	w := rl.MeasureText(info, fontBody)
	rl.DrawText(info, int32(rect.X+rect.Width)-w-14, y+6, fontBody, colorDim)
}

func (ui *journeyUI) drawJourney(rect rl.Rectangle, snap game.Snapshot) {
	title := "Journey"
	switch {
	case snap.DestinationID != "":
		title = "Journey to " + snap.DestinationID
	case snap.DestinationDistance > 0:
		title = "Journey home"
	}
	drawPanel(rect, title)

	label := fmt.Sprintf("%.1f / %.1fm  (%.1f%%)", snap.Distance, snap.DestinationDistance, snap.ProgressPercent)
	lw := rl.MeasureText(label, fontSmall)
	rl.DrawText(label, int32(rect.X+rect.Width)-lw-14, int32(rect.Y)+10, fontSmall, colorDim)

	bar := rl.NewRectangle(rect.X+14, rect.Y+44, rect.Width-28, 18)
	rl.DrawRectangleRec(bar, rl.NewColor(8, 16, 12, 255))
	fill := bar
	fill.Width = journeyMarkerX(bar, snap.ProgressPercent) - bar.X
	rl.DrawRectangleRec(fill, rl.Fade(colorBorder, 0.6))
	for _, orb := range snap.Orbs {
		ox := journeyMarkerX(bar, orb.Percent)
		rl.DrawCircle(int32(ox), int32(bar.Y+bar.Height/2), 6, orbColor(orb.Effect, orb.Triggered))
	}
	rl.DrawRectangleLinesEx(bar, 1, colorBorder)
	rx := journeyMarkerX(bar, snap.ProgressPercent)
	rl.DrawTriangle(
		rl.Vector2{X: rx, Y: bar.Y - 2},
		rl.Vector2{X: rx - 6, Y: bar.Y - 12},
		rl.Vector2{X: rx + 6, Y: bar.Y - 12},
		colorText,
	)
}

func (ui *journeyUI) drawStats(rect rl.Rectangle, snap game.Snapshot) {
	drawPanel(rect, "Ranger")
	x := int32(rect.X) + 14
	y := int32(rect.Y) + 40
	barW := rect.Width - 150
	stats := []struct {
		name  string
		value int
	}{
		{"Energy", snap.Energy},
		{"Spirit", snap.Spirit},
		{"Health", snap.Health},
	}
	for _, s := range stats {
		rl.DrawText(fmt.Sprintf("%s %d", s.name, s.value), x, y, fontSmall, colorText)
		bar := rl.NewRectangle(float32(x)+110, float32(y)+2, barW, 12)
		rl.DrawRectangleRec(bar, rl.NewColor(8, 16, 12, 255))
		fill := bar
		fill.Width = statBarWidth(s.value, statFullValue, barW)
		rl.DrawRectangleRec(fill, statColor(s.value))
		y += 24
	}
	y += 6
	rl.DrawText(fmt.Sprintf("Speed %.2f m/s", snap.Speed), x, y, fontSmall, colorDim)
	y += 20
	rl.DrawText(fmt.Sprintf("Range %.1fm   best %.0fm   visited %d", snap.Range, snap.BestRange, snap.Visited), x, y, fontSmall, colorDim)
}

func (ui *journeyUI) drawJournal(rect rl.Rectangle, snap game.Snapshot) {
	drawPanel(rect, "Journal")
	entries := snap.Journal
	if len(entries) > journalLines {
		entries = entries[len(entries)-journalLines:]
	}
	y := int32(rect.Y) + 38
	for _, entry := range entries {
		if float32(y+fontSmall) > rect.Y+rect.Height-8 {
			break
		}
		rl.DrawText(entry.Text, int32(rect.X)+14, y, fontSmall, colorText)
		y += fontSmall + 6
	}
}

func (ui *journeyUI) drawMap(rect rl.Rectangle, snap game.Snapshot) {
	drawPanel(rect, "Map")
	area := rl.NewRectangle(rect.X+10, rect.Y+36, rect.Width-20, rect.Height-46)
	proj, ok := computeMapProjection(area, snap.X, snap.Y, mapSpan)
	if !ok {
		return
	}
	rl.DrawRectangleRec(proj.DrawRect, rl.NewColor(8, 16, 12, 255))

	for _, loc := range ui.sim.Nearby() {
		p := proj.Project(loc.X, loc.Y)
		if !proj.Visible(p) {
			continue
		}
		clr := colorDim
		if loc.ID == snap.DestinationID {
			clr = colorWarn
		}
		rl.DrawCircleV(p, 4, clr)
	}

	home := proj.Project(0, 0)
	if proj.Visible(home) {
		rl.DrawRectangle(int32(home.X)-5, int32(home.Y)-5, 10, 10, colorHome)
	}
	ranger := proj.Origin
	rl.DrawCircleV(ranger, 6, colorAccent)
	rl.DrawRectangleLinesEx(proj.DrawRect, 1, rl.Fade(colorBorder, 0.5))
}

func (ui *journeyUI) drawActions(rect rl.Rectangle, snap game.Snapshot) {
	drawPanel(rect, "")
	for i, slot := range actionSlotRects(rect) {
		action := snap.Actions[i]
		if action.Empty() {
			rl.DrawRectangleRoundedLinesEx(slot, 0.2, 6, 1, rl.Fade(colorBorder, 0.25))
			continue
		}
		border := colorBorder
		if action.Default {
			border = colorWarn
		}
		rl.DrawRectangleRounded(slot, 0.2, 6, rl.Fade(colorBorder, 0.12))
		rl.DrawRectangleRoundedLinesEx(slot, 0.2, 6, 2, border)
		label := fmt.Sprintf("%d  %s", i+1, action.Label)
		rl.DrawText(label, int32(slot.X)+10, int32(slot.Y+slot.Height/2)-fontBody/2, fontBody, colorText)
	}
	if snap.Event != nil && snap.Event.Timed {
		countdown := fmt.Sprintf("%s! %.1fs", snap.Event.Type, snap.Event.CountdownSeconds)
		w := rl.MeasureText(countdown, fontHeader)
		rl.DrawText(countdown, int32(rect.X+rect.Width/2)-w/2, int32(rect.Y)-fontHeader-4, fontHeader, colorDanger)
	}
}

func (ui *journeyUI) drawInput(rect rl.Rectangle) {
	drawPanel(rect, "")
	y := int32(rect.Y+rect.Height/2) - fontBody/2
	if ui.input != "" {
		rl.DrawText("> "+ui.input+"_", int32(rect.X)+14, y, fontBody, colorText)
		return
	}
	hint := ui.message
	clr := colorWarn
	if hint == "" {
		hint = "1-4 act   space go/stop   type a command and press enter   esc quit"
		clr = colorDim
	}
	rl.DrawText(hint, int32(rect.X)+14, y, fontBody, clr)
}
