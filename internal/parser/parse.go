package parser

import (
	"fmt"
	"strings"
)

const SlotVerb = "slot"

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Commands() []CommandDef {
	return p.registry.Commands()
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command, or a slot number 1-4."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	if slot := parseSlot(tokens); slot > 0 {
		intent.Verb = SlotVerb
		intent.Slot = slot
		intent.Confidence = 1
		return intent
	}

	cmdMatch, alternates := p.registry.matchCommand(tokens, ctx.Offered)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: fmt.Sprintf("I couldn't map that to a command. Try %s.", strings.Join(p.verbs(), ", ")),
		}
		return intent
	}

	if len(alternates) > 0 && alternates[0].Consumed == cmdMatch.Consumed &&
		(cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		options := []Intent{
			{Raw: raw, Normalised: cmdMatch.Canonical, Verb: cmdMatch.Canonical, Confidence: clampScore(cmdMatch.Score)},
		}
		for _, alt := range alternates {
			if cmdMatch.Score-alt.Score >= 0.05 {
				break
			}
			options = append(options, Intent{Raw: raw, Normalised: alt.Canonical, Verb: alt.Canonical, Confidence: clampScore(alt.Score)})
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: options,
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Confidence = clampScore(cmdMatch.Score)
	if extra := len(tokens) - cmdMatch.Consumed; extra > 0 {
		// Trailing words carry no arguments; trust the match a little less.
		intent.Confidence = clampScore(intent.Confidence - 0.04*float64(extra))
	}
	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that. Please rephrase or pick a clearer command."}
	}
	return intent
}

func (p *Parser) verbs() []string {
	cmds := p.registry.Commands()
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.Canonical)
	}
	return out
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
