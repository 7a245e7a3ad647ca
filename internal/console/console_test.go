package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/ranger/internal/game"
)

type recordingPublisher struct {
	snaps []game.Snapshot
}

func (p *recordingPublisher) Publish(s game.Snapshot) { p.snaps = append(p.snaps, s) }

func newTestHost(t *testing.T, in string) (*Host, *game.Simulation, *bytes.Buffer, *recordingPublisher) {
	t.Helper()
	sim, err := game.NewSimulation(game.Options{
		Config: game.DefaultSimConfig(),
		Clock:  game.NewFakeClock(time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	out := &bytes.Buffer{}
	pub := &recordingPublisher{}
	host := New(sim, Config{
		In:           strings.NewReader(in),
		Out:          out,
		TickInterval: time.Millisecond,
		Publisher:    pub,
	})
	return host, sim, out, pub
}

func arrive(t *testing.T, host *Host, sim *game.Simulation) {
	t.Helper()
	host.Handle("continue")
	require.Equal(t, game.StateRunning, sim.State())
	require.NoError(t, host.Step(time.Hour))
	require.Equal(t, game.StateEventPending, sim.State())
}

func TestHandleContinueStartsJourney(t *testing.T) {
	host, sim, out, _ := newTestHost(t, "")

	quit := host.Handle("continue")

	assert.False(t, quit)
	assert.Equal(t, game.StateRunning, sim.State())
	assert.Contains(t, out.String(), "heading to 204570-204639")
}

func TestHandleTypoStillMatches(t *testing.T) {
	host, sim, _, _ := newTestHost(t, "")

	host.Handle("contnue")

	assert.Equal(t, game.StateRunning, sim.State())
}

func TestArrivalAnnouncesEncounter(t *testing.T) {
	host, sim, out, _ := newTestHost(t, "")

	arrive(t, host, sim)

	assert.Contains(t, out.String(), "arrived at 204570-204639")
	assert.Contains(t, out.String(), "Encounter: hostile!")
	assert.Contains(t, out.String(), "4) Sneak Past*")
}

func TestSlotNumberPicksOfferedAction(t *testing.T) {
	host, sim, _, _ := newTestHost(t, "")
	arrive(t, host, sim)

	host.Handle("2")

	assert.Equal(t, game.StateRunning, sim.State())
	assert.Equal(t, 5.0, sim.TimeMultiplier())
}

func TestHomeFleesDuringEncounter(t *testing.T) {
	host, sim, out, _ := newTestHost(t, "")
	arrive(t, host, sim)

	host.Handle("flee")

	assert.Equal(t, game.StateRunning, sim.State())
	assert.Equal(t, 10.0, sim.TimeMultiplier())
	assert.Contains(t, out.String(), "returning home")
}

func TestHomeReturnsWhenStopped(t *testing.T) {
	host, sim, _, _ := newTestHost(t, "")

	host.Handle("go home")

	assert.Equal(t, game.StateRunning, sim.State())
	assert.Equal(t, 10.0, sim.TimeMultiplier())
}

func TestUnofferedActionIsRefused(t *testing.T) {
	host, sim, out, _ := newTestHost(t, "")

	host.Handle("fight")

	assert.Equal(t, game.StateStopped, sim.State())
	assert.Contains(t, out.String(), "You can't fight right now.")
}

func TestEmptySlotIsReported(t *testing.T) {
	host, sim, out, _ := newTestHost(t, "")

	host.Handle("2")

	assert.Equal(t, game.StateStopped, sim.State())
	assert.Contains(t, out.String(), "Slot 2 is empty.")
}

func TestUnknownInputAsksForClarification(t *testing.T) {
	host, sim, out, _ := newTestHost(t, "")

	host.Handle("xyzzy plugh")

	assert.Equal(t, game.StateStopped, sim.State())
	assert.Contains(t, out.String(), "I couldn't map that to a command.")
}

func TestStatusAndHelp(t *testing.T) {
	host, _, out, _ := newTestHost(t, "")

	assert.False(t, host.Handle("status"))
	assert.False(t, host.Handle("help"))

	text := out.String()
	assert.Contains(t, text, "[stopped] energy 10  spirit 10  health 10")
	assert.Contains(t, text, "1) Return Home")
	assert.Contains(t, text, "4) Continue Journey")
	assert.Contains(t, text, "continue")
	assert.Contains(t, text, "pick an action slot")
}

func TestQuit(t *testing.T) {
	host, _, out, _ := newTestHost(t, "")

	assert.True(t, host.Handle("quit"))
	assert.Contains(t, out.String(), "Farewell")
}

func TestStepPublishesSnapshots(t *testing.T) {
	host, _, _, pub := newTestHost(t, "")
	host.Handle("continue")

	require.NoError(t, host.Step(100*time.Millisecond))

	require.NotEmpty(t, pub.snaps)
	last := pub.snaps[len(pub.snaps)-1]
	assert.Equal(t, game.StateRunning, last.State)
	assert.InDelta(t, 0.5, last.Distance, 1e-9)
}

func TestStepRejectsNegativeDelta(t *testing.T) {
	host, _, _, _ := newTestHost(t, "")

	assert.ErrorIs(t, host.Step(-time.Second), game.ErrInvalidTimeDelta)
}

func TestRunStopsOnQuit(t *testing.T) {
	host, _, out, _ := newTestHost(t, "status\nquit\n")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, host.Run(ctx))

	assert.Contains(t, out.String(), "energy 10")
	assert.Contains(t, out.String(), "Farewell")
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	host, _, _, _ := newTestHost(t, "")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, host.Run(ctx))
}

func TestRunStopsOnCancel(t *testing.T) {
	sim, err := game.NewSimulation(game.Options{Config: game.DefaultSimConfig()})
	require.NoError(t, err)
	host := New(sim, Config{TickInterval: time.Millisecond})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.NoError(t, host.Run(ctx))
}
