package gui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/ranger/internal/game"
	"github.com/appengine-ltd/ranger/internal/parser"
)

const (
	mapSpan       = 700.0
	journalLines  = 14
	inputMaxLen   = 48
	statFullValue = 10
)

// Publisher receives a snapshot every frame.
type Publisher interface {
	Publish(game.Snapshot)
}

type AppConfig struct {
	Version   string
	Publisher Publisher
	Logger    *log.Logger
}

type App struct {
	cfg AppConfig
	sim *game.Simulation
}

func NewApp(sim *game.Simulation, cfg AppConfig) *App {
	return &App{cfg: cfg, sim: sim}
}

func (a *App) Run() error {
	ui := newJourneyUI(a.sim, a.cfg)
	return ui.Run()
}

type journeyUI struct {
	cfg    AppConfig
	sim    *game.Simulation
	parser *parser.Parser
	logger *log.Logger

	width  int32
	height int32
	quit   bool

	input    string
	message  string
	lastTick time.Time
}

func newJourneyUI(sim *game.Simulation, cfg AppConfig) *journeyUI {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &journeyUI{
		cfg:      cfg,
		sim:      sim,
		parser:   parser.New(),
		logger:   logger,
		width:    1366,
		height:   768,
		lastTick: time.Now(),
	}
}

func (ui *journeyUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	title := "ranger"
	if ui.cfg.Version != "" {
		title += " " + ui.cfg.Version
	}
	rl.InitWindow(ui.width, ui.height, title)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		if err := ui.update(delta); err != nil {
			return err
		}

		snap := ui.sim.Snapshot()
		if ui.cfg.Publisher != nil {
			ui.cfg.Publisher.Publish(snap)
		}

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw(snap)
		rl.EndDrawing()
	}
	return nil
}

func (ui *journeyUI) update(delta time.Duration) error {
	if err := ui.sim.Tick(delta); err != nil {
		return fmt.Errorf("tick: %w", err)
	}

	layout := computeLayout(ui.width, ui.height)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		for i, rect := range actionSlotRects(layout.Actions) {
			if rl.CheckCollisionPointRec(mouse, rect) {
				ui.performSlot(i)
			}
		}
	}

	if ui.input == "" {
		if slot, ok := pressedSlot(); ok {
			drainChars()
			ui.performSlot(slot)
			return nil
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			drainChars()
			ui.toggleTravel()
			return nil
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			ui.quit = true
			return nil
		}
	}

	captureTextInput(&ui.input, inputMaxLen)
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.input = ""
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		line := strings.TrimSpace(ui.input)
		ui.input = ""
		if line != "" {
			ui.submit(line)
		}
	}
	return nil
}

func (ui *journeyUI) submit(line string) {
	slots := ui.sim.Actions()
	intent := ui.parser.Parse(parser.ParseContext{Offered: parser.OfferedVerbs(slots)}, line)
	if intent.Clarify != nil {
		ui.message = intent.Clarify.Prompt
		if len(intent.Clarify.Options) > 0 {
			verbs := make([]string, 0, len(intent.Clarify.Options))
			for _, opt := range intent.Clarify.Options {
				verbs = append(verbs, opt.Verb)
			}
			ui.message += " " + strings.Join(verbs, " or ") + "?"
		}
		return
	}
	switch intent.Verb {
	case "quit":
		ui.quit = true
		return
	case "help":
		ui.message = "1-4 pick a slot, space continues or stops, esc quits. Or type a command."
		return
	case "status":
		ui.message = ""
		return
	case parser.SlotVerb:
		ui.performSlot(intent.Slot - 1)
		return
	}
	kind, ok := parser.ActionForVerb(intent.Verb, slots)
	if !ok {
		ui.message = fmt.Sprintf("Nothing to do for %q.", intent.Verb)
		return
	}
	ui.perform(kind)
}

func (ui *journeyUI) toggleTravel() {
	if ui.sim.State() == game.StateRunning {
		ui.perform(game.ActionStop)
		return
	}
	ui.perform(game.ActionContinue)
}

func (ui *journeyUI) performSlot(i int) {
	if i < 0 || i >= len(game.ActionSlots{}) {
		return
	}
	action := ui.sim.Actions()[i]
	if action.Empty() {
		return
	}
	ui.perform(action.Kind)
}

func (ui *journeyUI) perform(kind game.ActionKind) {
	ui.message = ""
	err := ui.sim.Perform(kind)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrNoEligibleDestination):
		ui.message = "Nowhere left to explore here. Head home, or try again once the world shifts."
	case errors.Is(err, game.ErrUnknownAction):
		ui.message = fmt.Sprintf("You can't %s right now.", strings.ReplaceAll(string(kind), "_", " "))
	default:
		ui.logger.Printf("perform %s: %v", kind, err)
		ui.message = err.Error()
	}
}

func pressedSlot() (int, bool) {
	keys := [4]int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour}
	for i, key := range keys {
		if rl.IsKeyPressed(key) || rl.IsKeyPressed(rl.KeyKp1+int32(i)) {
			return i, true
		}
	}
	return 0, false
}

func drainChars() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
	}
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch == ' ' && *target == "" {
			continue
		}
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}
