package game

import (
	"testing"
	"time"

	"github.com/coder/quartz"
)

func TestProjectUsesPreActionState(t *testing.T) {
	t.Parallel()
	g := mustStartHand(t, threeHandedSetup())
	proj := NewLogProjector()

	// player-1 faces the big blind: the logged call amount is the
	// difference at decision time, not the zero left after applying.
	entry := proj.Project(g, Call{})
	if entry == nil {
		t.Fatal("expected an entry for a live turn")
	}
	if entry.PlayerID != "player-1" || entry.PlayerName != "Alice" {
		t.Errorf("actor = %s (%s)", entry.PlayerName, entry.PlayerID)
	}
	if entry.Action != ActionCall || entry.Amount != 100 {
		t.Errorf("entry = %s %d, want CALL 100", entry.Action, entry.Amount)
	}
	if entry.Round != Preflop {
		t.Errorf("round = %q, want PREFLOP", entry.Round)
	}
}

func TestProjectAmounts(t *testing.T) {
	t.Parallel()
	g := mustStartHand(t, threeHandedSetup())
	proj := NewLogProjector()

	cases := []struct {
		action Action
		want   int
	}{
		{Check{}, 0},
		{Fold{}, 0},
		{Bet{Amount: 250}, 250},
		{Raise{To: 400}, 400},
	}
	for _, tc := range cases {
		entry := proj.Project(g, tc.action)
		if entry == nil || entry.Amount != tc.want {
			t.Errorf("Project(%T) amount = %v, want %d", tc.action, entry, tc.want)
		}
	}
}

func TestProjectWithoutActor(t *testing.T) {
	t.Parallel()
	g := mustStartHand(t, threeHandedSetup())
	g.Table.CurrentPlayerID = ""

	if entry := NewLogProjector().Project(g, Check{}); entry != nil {
		t.Errorf("expected no entry without a current player, got %+v", entry)
	}
}

func TestProjectTimestampsFromClock(t *testing.T) {
	t.Parallel()
	clock := quartz.NewMock(t)
	proj := NewLogProjectorWithClock(clock)
	g := mustStartHand(t, threeHandedSetup())

	first := proj.Project(g, Check{})
	clock.Advance(5 * time.Second)
	second := proj.Project(g, Check{})

	if !first.CreatedAt.Equal(clock.Now().Add(-5 * time.Second)) {
		t.Errorf("first timestamp = %v", first.CreatedAt)
	}
	if !second.CreatedAt.After(first.CreatedAt) {
		t.Errorf("timestamps not ordered: %v then %v", first.CreatedAt, second.CreatedAt)
	}
	if first.ID == second.ID {
		t.Error("ids must be unique")
	}
	if first.ID >= second.ID {
		t.Errorf("ids not generation-ordered: %q then %q", first.ID, second.ID)
	}
}

func TestPrependLogNewestFirst(t *testing.T) {
	t.Parallel()
	logs := PrependLog(nil, &ActionLogEntry{ID: "a"})
	logs = PrependLog(logs, &ActionLogEntry{ID: "b"})
	logs = PrependLog(logs, nil)

	if len(logs) != 2 || logs[0].ID != "b" || logs[1].ID != "a" {
		t.Errorf("logs = %+v, want newest first", logs)
	}
}
