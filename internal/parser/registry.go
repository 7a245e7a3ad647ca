package parser

import (
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const offeredBoost = 0.06

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	order    []string
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if _, ok := r.commands[c.Canonical]; !ok {
		r.order = append(r.order, c.Canonical)
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, commandPhrase{
		canonical: c.Canonical,
		alias:     c.Canonical,
		tokens:    tokenise(c.Canonical),
	})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    tokenise(n),
		})
	}
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

type commandCandidate struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
	Source    string
}

func (r *Registry) matchCommand(tokens []string, offered []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	in := strings.Join(tokens, " ")
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if len(phrase.tokens) == 0 {
			continue
		}
		consumed := min(len(tokens), len(phrase.tokens))
		prefix := strings.Join(tokens[:consumed], " ")

		var cand commandCandidate
		switch {
		case consumed == len(phrase.tokens) && prefix == phrase.alias:
			cand = commandCandidate{Consumed: consumed, Score: 1.0, Source: "exact"}
			if phrase.alias != phrase.canonical {
				cand.Score = 0.97
				cand.Source = "alias"
			}
		case len(phrase.tokens) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(phrase.alias, tokens[0]):
			cand = commandCandidate{Consumed: 1, Score: 0.9, Source: "prefix"}
		default:
			// Fuzzy: only when there was no exact/prefix hit for this phrase.
			cut := consumed
			compare := prefix
			if len(phrase.tokens) > 1 && len(tokens) >= len(phrase.tokens) {
				cut = len(phrase.tokens)
				compare = strings.Join(tokens[:cut], " ")
			}
			if cut == 0 || len(compare) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(compare, phrase.alias)
			if dist > levenshteinLimit(len(phrase.alias)) {
				continue
			}
			cand = commandCandidate{Consumed: cut, Score: 0.72 - (0.08 * float64(dist)), Source: "lev"}
			if strings.Contains(in, phrase.alias) {
				cand.Score += 0.04
			}
		}
		cand.Canonical = phrase.canonical
		cand.Alias = phrase.alias
		if slices.Contains(offered, phrase.canonical) {
			cand.Score += offeredBoost
		}
		cands = append(cands, cand)
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			if cands[i].Consumed == cands[j].Consumed {
				return cands[i].Canonical < cands[j].Canonical
			}
			return cands[i].Consumed > cands[j].Consumed
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) == 0 {
		return commandCandidate{}, nil
	}
	best := cands[0]
	alts := make([]commandCandidate, 0, 4)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "continue", Aliases: []string{"go", "onward", "resume", "keep going", "sneak", "sneak past", "walk"}, Help: "continue the journey, or sneak past a hostile"},
		{Canonical: "stop", Aliases: []string{"halt", "wait", "pause"}, Help: "stop where you stand"},
		{Canonical: "home", Aliases: []string{"return home", "go home", "flee", "flee home", "flee to home", "retreat", "run"}, Help: "head home (flee during an encounter)"},
		{Canonical: "approach", Aliases: []string{"approach peacefully", "greet", "talk", "befriend"}, Help: "approach the encounter peacefully"},
		{Canonical: "fight", Aliases: []string{"attack", "battle", "strike"}, Help: "fight the encounter"},
		{Canonical: "status", Aliases: []string{"stats", "look", "where am i"}, Help: "show stats and progress"},
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}, Help: "list commands"},
		{Canonical: "quit", Aliases: []string{"q", "exit", "bye"}, Help: "end the session"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
