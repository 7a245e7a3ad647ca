package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/appengine-ltd/ranger/internal/game"
	"github.com/appengine-ltd/ranger/internal/parser"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	var (
		root    string
		dateArg string
	)
	flag.StringVar(&root, "out", filepath.Join("docs", "reference"), "output directory")
	flag.StringVar(&dateArg, "date", "", "world date for the atlas as 2006-01-02T15 (default: now)")
	flag.Parse()

	date := time.Now()
	if dateArg != "" {
		parsed, err := time.ParseInLocation("2006-01-02T15", dateArg, time.Local)
		if err != nil {
			fatal(fmt.Errorf("parse -date: %w", err))
		}
		date = parsed
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateOrbsDoc(),
		generateCommandsDoc(parser.New()),
		generateAtlasDoc(game.NewWorld(date), 0, 0),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateOrbsDoc() docFile {
	table := game.JourneyOrbTable()

	var b strings.Builder
	b.WriteString("# Journey Orbs\n\n")
	b.WriteString("Source: `internal/game/orbs.go` (`JourneyOrbTable`).\n\n")
	b.WriteString("A journey of `d` metres carries `ceil(d * 0.06)` orbs. Each orb's position and effect come from the destination's seed.\n\n")
	b.WriteString("| Roll | Chance | Effect | Energy | Spirit | Health |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	prev := 0.0
	for _, row := range table {
		e := row.Effect
		b.WriteString(fmt.Sprintf("| %.2f-%.2f | %.0f%% | %s | %s | %s | %s |\n",
			prev, row.Below, (row.Below-prev)*100, escape(e.String()),
			signed(e.Energy), signed(e.Spirit), signed(e.Health)))
		prev = row.Below
	}
	return docFile{Name: "orbs.md", Title: "Journey Orbs", Content: b.String()}
}

func generateCommandsDoc(p *parser.Parser) docFile {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	b.WriteString("Source: `internal/parser/registry.go` (`DefaultRegistry`).\n\n")
	b.WriteString("Typos and unique prefixes are accepted. Numbers 1-4 pick an action slot.\n\n")
	b.WriteString("| Command | Aliases | Description |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, cmd := range p.Commands() {
		b.WriteString("| ")
		b.WriteString(escape(cmd.Canonical))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(cmd.Aliases, ", ")))
		b.WriteString(" | ")
		b.WriteString(escape(cmd.Help))
		b.WriteString(" |\n")
	}
	return docFile{Name: "commands.md", Title: "Commands", Content: b.String()}
}

func generateAtlasDoc(world game.World, centerX, centerY float64) docFile {
	locs := world.GenerateLocations(centerX, centerY)

	var b strings.Builder
	b.WriteString("# Atlas\n\n")
	b.WriteString(fmt.Sprintf("World of %s (epoch seed **%d**), around (%.0f, %.0f).\n\n",
		world.Date.Format("2006-01-02 15:04"), world.EpochSeed, centerX, centerY))
	b.WriteString("| ID | X | Y | Distance | Event | Decision (s) | Orbs |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, loc := range locs {
		decision := ""
		if len(loc.Event.DNA) > 0 {
			decision = fmt.Sprintf("%.1f", loc.Event.DNA[0]*game.DefaultSimConfig().DecisionMaxSeconds)
		}
		dist := loc.DistanceFrom(centerX, centerY)
		b.WriteString(fmt.Sprintf("| %s | %.3f | %.3f | %.1f | %s | %s | %d |\n",
			escape(loc.ID), loc.X, loc.Y, dist, escape(string(loc.Event.Type)), decision,
			len(game.GenerateJourneyOrbs(centerX, centerY, loc))))
	}
	return docFile{Name: "atlas.md", Title: "Atlas", Content: b.String()}
}

func signed(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%+g", v)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
