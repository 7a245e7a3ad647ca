package parser

import "github.com/appengine-ltd/ranger/internal/game"

// OfferedVerbs lists the command verbs that map onto the offered slots.
func OfferedVerbs(slots game.ActionSlots) []string {
	var verbs []string
	for _, a := range slots {
		if a.Empty() {
			continue
		}
		if verb := VerbForAction(a.Kind); verb != "" {
			verbs = append(verbs, verb)
		}
	}
	return verbs
}

// VerbForAction is the command verb that performs kind.
func VerbForAction(kind game.ActionKind) string {
	switch kind {
	case game.ActionContinue:
		return "continue"
	case game.ActionStop:
		return "stop"
	case game.ActionFlee, game.ActionReturnHome:
		return "home"
	case game.ActionApproachPeacefully:
		return "approach"
	case game.ActionFight:
		return "fight"
	}
	return ""
}

// ActionForVerb maps a parsed verb onto an action kind. "home" means flee when
// an encounter offers it.
func ActionForVerb(verb string, slots game.ActionSlots) (game.ActionKind, bool) {
	switch verb {
	case "continue":
		return game.ActionContinue, true
	case "stop":
		return game.ActionStop, true
	case "home":
		if _, ok := slots.Find(game.ActionFlee); ok {
			return game.ActionFlee, true
		}
		return game.ActionReturnHome, true
	case "approach":
		return game.ActionApproachPeacefully, true
	case "fight":
		return game.ActionFight, true
	}
	return "", false
}
