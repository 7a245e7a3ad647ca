package gui

import rl "github.com/gen2brain/raylib-go/raylib"

var (
	colorBG     = rl.NewColor(8, 12, 18, 255)
	colorPanel  = rl.NewColor(14, 24, 35, 255)
	colorBorder = rl.NewColor(25, 200, 120, 255)
	colorText   = rl.NewColor(175, 245, 195, 255)
	colorDim    = rl.NewColor(108, 165, 124, 255)
	colorAccent = rl.NewColor(60, 255, 145, 255)
	colorWarn   = rl.NewColor(255, 198, 96, 255)
	colorDanger = rl.NewColor(242, 84, 84, 230)
	colorHome   = rl.NewColor(76, 116, 156, 255)
)

const (
	fontTitle  int32 = 30
	fontHeader int32 = 21
	fontBody   int32 = 19
	fontSmall  int32 = 16
)

// statColor shades a stat by how close it is to running out.
func statColor(value int) rl.Color {
	switch {
	case value <= 2:
		return colorDanger
	case value <= 5:
		return colorWarn
	default:
		return colorAccent
	}
}

func orbColor(effect string, triggered bool) rl.Color {
	var clr rl.Color
	switch effect {
	case "energy drain", "spirit drain", "wound":
		clr = colorDanger
	case "mystery", "card":
		clr = colorWarn
	default:
		clr = colorAccent
	}
	if triggered {
		return rl.Fade(clr, 0.35)
	}
	return clr
}

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, colorBorder)
	if title != "" {
		rl.DrawText(title, int32(rect.X)+12, int32(rect.Y)+8, fontHeader, colorAccent)
	}
}
