package game

type ActionKind string

const (
	ActionFlee               ActionKind = "flee"
	ActionApproachPeacefully ActionKind = "approach_peacefully"
	ActionFight              ActionKind = "fight"
	ActionContinue           ActionKind = "continue"
	ActionStop               ActionKind = "stop"
	ActionReturnHome         ActionKind = "return_home"
)

// Action is one of the four slots offered to the player. An empty Kind is a
// placeholder slot.
type Action struct {
	Kind    ActionKind `json:"kind,omitempty"`
	Label   string     `json:"label,omitempty"`
	Default bool       `json:"default,omitempty"`
}

func (a Action) Empty() bool { return a.Kind == "" }

type ActionSlots [4]Action

// Find returns the slot offering kind.
func (slots ActionSlots) Find(kind ActionKind) (Action, bool) {
	for _, a := range slots {
		if !a.Empty() && a.Kind == kind {
			return a, true
		}
	}
	return Action{}, false
}

// DefaultAction is the slot flagged default, else the last slot.
func (slots ActionSlots) DefaultAction() (Action, bool) {
	for _, a := range slots {
		if a.Default {
			return a, true
		}
	}
	last := slots[len(slots)-1]
	return last, !last.Empty()
}

func actionsFor(state State, event *Event) ActionSlots {
	switch state {
	case StateEventPending:
		if event.Type == EventHome {
			return ActionSlots{3: {Kind: ActionContinue, Label: "Continue Journey"}}
		}
		fleeText, abortText := "Return Home", "Continue Journey"
		if event.Type == EventHostile {
			fleeText, abortText = "Flee to Home", "Sneak Past"
		}
		return ActionSlots{
			{Kind: ActionFlee, Label: fleeText},
			{Kind: ActionApproachPeacefully, Label: "Approach Peacefully"},
			{Kind: ActionFight, Label: "Fight!"},
			{Kind: ActionContinue, Label: abortText, Default: true},
		}
	case StateRunning:
		return ActionSlots{0: {Kind: ActionStop, Label: "Stop"}}
	default:
		return ActionSlots{
			0: {Kind: ActionReturnHome, Label: "Return Home"},
			3: {Kind: ActionContinue, Label: "Continue Journey"},
		}
	}
}
