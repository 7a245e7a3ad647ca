package game

import "testing"

func TestDefaultActionSelection(t *testing.T) {
	tests := []struct {
		name   string
		slots  ActionSlots
		want   ActionKind
		wantOK bool
	}{
		{
			name: "flagged slot",
			slots: ActionSlots{
				{Kind: ActionFlee},
				{Kind: ActionFight, Default: true},
				3: {Kind: ActionContinue},
			},
			want:   ActionFight,
			wantOK: true,
		},
		{
			name: "first flagged slot wins",
			slots: ActionSlots{
				{Kind: ActionFlee},
				{Kind: ActionApproachPeacefully, Default: true},
				{Kind: ActionFight, Default: true},
				{Kind: ActionContinue, Default: true},
			},
			want:   ActionApproachPeacefully,
			wantOK: true,
		},
		{
			name: "no flag falls back to last slot",
			slots: ActionSlots{
				0: {Kind: ActionReturnHome},
				3: {Kind: ActionContinue},
			},
			want:   ActionContinue,
			wantOK: true,
		},
		{
			name:   "no flag and empty last slot",
			slots:  ActionSlots{0: {Kind: ActionStop}},
			wantOK: false,
		},
	}
	for _, tc := range tests {
		got, ok := tc.slots.DefaultAction()
		if ok != tc.wantOK || got.Kind != tc.want {
			t.Fatalf("%s: expected %q ok=%v, got %q ok=%v", tc.name, tc.want, tc.wantOK, got.Kind, ok)
		}
	}
}

func TestCountdownOnNonHostileEventContinues(t *testing.T) {
	sim := newTestSimulation(t)
	travelToArrival(t, sim)
	sim.event.Type = "shrine"
	action, ok := sim.Actions().DefaultAction()
	if !ok || action.Kind != ActionContinue || action.Label != "Continue Journey" {
		t.Fatalf("expected Continue Journey as the default, got %+v ok=%v", action, ok)
	}
	if err := sim.Advance(sim.event.DecisionCountdown); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if sim.State() != StateRunning || sim.TimeMultiplier() != 5 {
		t.Fatalf("expected running at 5x after the countdown, got %s at %vx", sim.State(), sim.TimeMultiplier())
	}
}
