package game

import (
	"strings"
	"testing"
)

func availability(actions []ActionAvailability, kind ActionKind) (ActionAvailability, bool) {
	for _, a := range actions {
		if a.Action == kind {
			return a, true
		}
	}
	return ActionAvailability{}, false
}

func TestToCall(t *testing.T) {
	t.Parallel()
	g := Game{Table: Table{CurrentBet: 100}}

	if got := ToCall(g, Player{BetThisRound: 40}); got != 60 {
		t.Errorf("ToCall = %d, want 60", got)
	}
	if got := ToCall(g, Player{BetThisRound: 100}); got != 0 {
		t.Errorf("ToCall = %d, want 0", got)
	}
	// A bet above the table maximum never yields a negative call.
	if got := ToCall(g, Player{BetThisRound: 150}); got != 0 {
		t.Errorf("ToCall = %d, want 0", got)
	}
}

func TestAvailableActionsShortStackFacingBet(t *testing.T) {
	t.Parallel()
	p := Player{ID: "p1", Name: "Alice", Stack: 50, Status: StatusActive}
	g := Game{
		Players: []Player{p},
		Table:   Table{CurrentBet: 100, CurrentPlayerID: "p1"},
	}

	actions := AvailableActions(g, p)

	call, _ := availability(actions, ActionCall)
	if call.Enabled || !strings.Contains(call.Reason, "side pots unsupported") {
		t.Errorf("CALL = %+v, want disabled with side-pot reason", call)
	}
	raise, _ := availability(actions, ActionRaise)
	if raise.Enabled || !strings.Contains(raise.Reason, "side pots unsupported") {
		t.Errorf("RAISE = %+v, want disabled with side-pot reason", raise)
	}
	check, _ := availability(actions, ActionCheck)
	if check.Enabled {
		t.Errorf("CHECK enabled while facing a bet of 100")
	}
	fold, _ := availability(actions, ActionFold)
	if !fold.Enabled {
		t.Error("FOLD must always be available to an active player")
	}
}

func TestAvailableActionsUnopenedRound(t *testing.T) {
	t.Parallel()
	p := Player{ID: "p1", Stack: 500, Status: StatusActive}
	g := Game{Players: []Player{p}, Table: Table{}}

	actions := AvailableActions(g, p)

	if a, _ := availability(actions, ActionCheck); !a.Enabled {
		t.Error("CHECK should be legal with nothing to call")
	}
	if a, _ := availability(actions, ActionBet); !a.Enabled {
		t.Error("BET should be legal with no open bet and chips behind")
	}
	if a, _ := availability(actions, ActionCall); a.Enabled {
		t.Error("CALL should be illegal with nothing to call")
	}
	if a, _ := availability(actions, ActionRaise); a.Enabled {
		t.Error("RAISE should be illegal with no open bet")
	}
}

func TestAvailableActionsEmptyStackCannotBet(t *testing.T) {
	t.Parallel()
	p := Player{ID: "p1", Stack: 0, Status: StatusActive}
	g := Game{Players: []Player{p}, Table: Table{}}

	if a, _ := availability(AvailableActions(g, p), ActionBet); a.Enabled {
		t.Error("BET should be illegal with an empty stack")
	}
}

func TestAvailableActionsFoldedPlayer(t *testing.T) {
	t.Parallel()
	p := Player{ID: "p1", Stack: 500, Status: StatusFolded}
	if actions := AvailableActions(Game{Players: []Player{p}}, p); len(actions) != 0 {
		t.Errorf("folded player has %d actions, want none", len(actions))
	}
}

func TestRaiseRequiresReachingAboveCurrentBet(t *testing.T) {
	t.Parallel()
	// Exactly enough to call but nothing more: bet+stack == currentBet.
	p := Player{ID: "p1", Stack: 60, BetThisRound: 40, Status: StatusActive}
	g := Game{Players: []Player{p}, Table: Table{CurrentBet: 100}}

	raise, _ := availability(AvailableActions(g, p), ActionRaise)
	if raise.Enabled {
		t.Error("RAISE enabled although the player cannot exceed the current bet")
	}
	call, _ := availability(AvailableActions(g, p), ActionCall)
	if !call.Enabled {
		t.Error("CALL should be legal with exactly the call amount behind")
	}
}

func TestCurrentPlayer(t *testing.T) {
	t.Parallel()
	g := Game{
		Players: []Player{{ID: "p1"}, {ID: "p2"}},
		Table:   Table{CurrentPlayerID: "p2"},
	}

	p, ok := CurrentPlayer(g)
	if !ok || p.ID != "p2" {
		t.Errorf("CurrentPlayer = %+v ok=%v", p, ok)
	}

	g.Table.CurrentPlayerID = ""
	if _, ok := CurrentPlayer(g); ok {
		t.Error("expected no current player during settlement")
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	g := NewGame(threeHandedSetup())
	s := Summarize(g)

	if s.Name != "Test" || s.Round != Preflop || s.Pot != 0 || s.Players != 3 {
		t.Errorf("summary = %+v", s)
	}
}
