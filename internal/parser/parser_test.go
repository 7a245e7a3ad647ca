package parser

import "testing"

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  CONTINUE  ", want: "continue"},
		{in: "sneak-past!!", want: "sneak past"},
		{in: "go   HOME", want: "go home"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestExactCommand(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "fight")
	if intent.Verb != "fight" || intent.Confidence != 1 {
		t.Fatalf("expected fight with full confidence, got %q %.2f", intent.Verb, intent.Confidence)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestAliasesMapToCanonical(t *testing.T) {
	p := New()
	tests := map[string]string{
		"flee":                "home",
		"go home":             "home",
		"sneak past":          "continue",
		"approach peacefully": "approach",
		"attack":              "fight",
		"q":                   "quit",
		"stats":               "status",
	}
	for in, want := range tests {
		intent := p.Parse(ParseContext{}, in)
		if intent.Verb != want {
			t.Fatalf("Parse(%q) verb=%q want=%q", in, intent.Verb, want)
		}
		if intent.Clarify != nil {
			t.Fatalf("Parse(%q) did not expect clarify: %+v", in, intent.Clarify)
		}
	}
}

func TestLongerAliasWinsOverPrefixAlias(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "go home")
	if intent.Verb != "home" {
		t.Fatalf("expected home, got %q", intent.Verb)
	}
}

func TestTypoContinueMapsToContinue(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "contnue")
	if intent.Verb != "continue" {
		t.Fatalf("expected continue verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestTypoFightMapsToFight(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "figt")
	if intent.Verb != "fight" {
		t.Fatalf("expected fight verb, got %q", intent.Verb)
	}
}

func TestAmbiguousPrefixReturnsClarify(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "st")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for ambiguous prefix, got verb %q", intent.Verb)
	}
	if len(intent.Clarify.Options) < 2 {
		t.Fatalf("expected at least 2 clarify options, got %d", len(intent.Clarify.Options))
	}
}

func TestOfferedVerbBreaksTie(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{Offered: []string{"stop"}}, "st")
	if intent.Verb != "stop" || intent.Clarify != nil {
		t.Fatalf("expected offered stop to win, got %q clarify=%+v", intent.Verb, intent.Clarify)
	}
}

func TestSlotNumbers(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, " 4 ")
	if intent.Verb != SlotVerb || intent.Slot != 4 {
		t.Fatalf("expected slot 4, got %q %d", intent.Verb, intent.Slot)
	}
	if got := p.Parse(ParseContext{}, "5"); got.Verb == SlotVerb {
		t.Fatalf("expected slot 5 to be rejected")
	}
}

func TestGibberishAsksForClarification(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "xyzzy plugh")
	if intent.Verb != "" || intent.Clarify == nil {
		t.Fatalf("expected clarify for unknown input, got %q", intent.Verb)
	}
	empty := p.Parse(ParseContext{}, "   ")
	if empty.Clarify == nil {
		t.Fatalf("expected clarify for empty input")
	}
}

func TestRegisterCommandExtendsRegistry(t *testing.T) {
	p := New()
	p.RegisterCommand(CommandDef{Canonical: "camp", Aliases: []string{"make camp"}})
	intent := p.Parse(ParseContext{}, "make camp")
	if intent.Verb != "camp" {
		t.Fatalf("expected camp, got %q", intent.Verb)
	}
	cmds := p.Commands()
	if cmds[len(cmds)-1].Canonical != "camp" {
		t.Fatalf("expected camp registered last, got %q", cmds[len(cmds)-1].Canonical)
	}
}
