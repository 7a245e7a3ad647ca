package parser

import (
	"slices"
	"testing"

	"github.com/appengine-ltd/ranger/internal/game"
)

func TestOfferedVerbsFollowSlots(t *testing.T) {
	slots := game.ActionSlots{
		{Kind: game.ActionFlee},
		{Kind: game.ActionApproachPeacefully},
		{Kind: game.ActionFight},
		{Kind: game.ActionContinue, Default: true},
	}
	got := OfferedVerbs(slots)
	want := []string{"home", "approach", "fight", "continue"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := OfferedVerbs(game.ActionSlots{0: {Kind: game.ActionStop}}); !slices.Equal(got, []string{"stop"}) {
		t.Fatalf("expected [stop] while running, got %v", got)
	}
}

func TestActionForVerbPrefersFleeWhenOffered(t *testing.T) {
	encounter := game.ActionSlots{0: {Kind: game.ActionFlee}, 3: {Kind: game.ActionContinue}}
	if kind, ok := ActionForVerb("home", encounter); !ok || kind != game.ActionFlee {
		t.Fatalf("expected flee during an encounter, got %q %v", kind, ok)
	}
	stopped := game.ActionSlots{0: {Kind: game.ActionReturnHome}, 3: {Kind: game.ActionContinue}}
	if kind, ok := ActionForVerb("home", stopped); !ok || kind != game.ActionReturnHome {
		t.Fatalf("expected return_home while stopped, got %q %v", kind, ok)
	}
	if _, ok := ActionForVerb("status", stopped); ok {
		t.Fatalf("expected status to map to no action")
	}
}

func TestEveryActionHasAVerb(t *testing.T) {
	kinds := []game.ActionKind{
		game.ActionFlee, game.ActionApproachPeacefully, game.ActionFight,
		game.ActionContinue, game.ActionStop, game.ActionReturnHome,
	}
	p := New()
	for _, kind := range kinds {
		verb := VerbForAction(kind)
		if verb == "" {
			t.Fatalf("expected a verb for %s", kind)
		}
		intent := p.Parse(ParseContext{}, verb)
		if intent.Verb != verb {
			t.Fatalf("expected %q to parse to itself, got %q", verb, intent.Verb)
		}
	}
}
