package game

import (
	"errors"
	"testing"
)

func threeHandedSetup() SetupConfig {
	return SetupConfig{
		TableName:   "Test",
		SmallBlind:  50,
		BigBlind:    100,
		ButtonIndex: 0,
		Players: []SeatConfig{
			{Name: "Alice", Stack: 1000},
			{Name: "Bob", Stack: 1000},
			{Name: "Carol", Stack: 1000},
		},
	}
}

func TestNewGameAssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	g := NewGame(threeHandedSetup())

	if len(g.Players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(g.Players))
	}
	for i, want := range []string{"player-1", "player-2", "player-3"} {
		if g.Players[i].ID != want {
			t.Errorf("seat %d id = %q, want %q", i, g.Players[i].ID, want)
		}
		if g.Players[i].Status != StatusActive {
			t.Errorf("seat %d status = %q, want ACTIVE", i, g.Players[i].Status)
		}
	}
	if g.Table.Round != Preflop {
		t.Errorf("round = %q, want PREFLOP", g.Table.Round)
	}
}

func TestNewGameDefaultsTableName(t *testing.T) {
	t.Parallel()
	setup := threeHandedSetup()
	setup.TableName = ""
	g := NewGame(setup)

	if g.TableName != "Pass & Play Table" {
		t.Errorf("table name = %q", g.TableName)
	}
}

func TestStartHandPostsBlinds(t *testing.T) {
	t.Parallel()
	g, err := StartHand(NewGame(threeHandedSetup()))
	if err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	// Button 0: small blind seat 1, big blind seat 2.
	if g.Players[1].Stack != 950 || g.Players[1].BetThisRound != 50 {
		t.Errorf("small blind seat: stack %d bet %d", g.Players[1].Stack, g.Players[1].BetThisRound)
	}
	if g.Players[2].Stack != 900 || g.Players[2].BetThisRound != 100 {
		t.Errorf("big blind seat: stack %d bet %d", g.Players[2].Stack, g.Players[2].BetThisRound)
	}
	if g.Table.Pot != 150 {
		t.Errorf("pot = %d, want 150", g.Table.Pot)
	}
	if g.Table.CurrentBet != 100 {
		t.Errorf("current bet = %d, want 100", g.Table.CurrentBet)
	}
	// First to act preflop is three seats after the button.
	if g.Table.CurrentPlayerID != "player-1" {
		t.Errorf("current player = %q, want player-1", g.Table.CurrentPlayerID)
	}
}

func TestStartHandRequiresTwoPlayers(t *testing.T) {
	t.Parallel()
	g := NewGame(SetupConfig{
		SmallBlind: 50, BigBlind: 100,
		Players: []SeatConfig{{Name: "Alone", Stack: 500}},
	})

	if _, err := StartHand(g); !errors.Is(err, ErrNeedTwoPlayers) {
		t.Errorf("err = %v, want ErrNeedTwoPlayers", err)
	}
}

func TestStartHandRejectsShortBlindStack(t *testing.T) {
	t.Parallel()
	g := NewGame(SetupConfig{
		SmallBlind:  50,
		BigBlind:    100,
		ButtonIndex: 0,
		Players: []SeatConfig{
			{Name: "Alice", Stack: 80},
			{Name: "Bob", Stack: 120},
		},
	})

	// Heads-up with button 0: Bob posts the small blind, the big blind
	// wraps back to Alice who cannot cover 100.
	_, err := StartHand(g)
	if !errors.Is(err, ErrBlindExceedsStack) {
		t.Fatalf("err = %v, want ErrBlindExceedsStack", err)
	}
}

func TestStartHandLeavesInputUntouchedOnError(t *testing.T) {
	t.Parallel()
	g := NewGame(SetupConfig{
		SmallBlind:  50,
		BigBlind:    100,
		ButtonIndex: 0,
		Players: []SeatConfig{
			{Name: "Alice", Stack: 80},
			{Name: "Bob", Stack: 120},
		},
	})

	before := g.TotalChips()
	out, err := StartHand(g)
	if err == nil {
		t.Fatal("expected blind posting to fail")
	}
	if out.TotalChips() != before || out.Table.Pot != 0 {
		t.Errorf("failed transition moved chips: pot %d", out.Table.Pot)
	}
}

func TestStartRoundResetsBetsAndSeat(t *testing.T) {
	t.Parallel()
	g, err := StartHand(NewGame(threeHandedSetup()))
	if err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	flop := StartRound(g, Flop)
	for _, p := range flop.Players {
		if p.BetThisRound != 0 {
			t.Errorf("player %s bet = %d after reset", p.ID, p.BetThisRound)
		}
	}
	if flop.Table.CurrentBet != 0 {
		t.Errorf("current bet = %d, want 0", flop.Table.CurrentBet)
	}
	if flop.Table.LastAggressorID != "" {
		t.Errorf("aggressor = %q, want empty", flop.Table.LastAggressorID)
	}
	// Postflop action starts one seat after the button.
	if flop.Table.CurrentPlayerID != "player-2" {
		t.Errorf("current player = %q, want player-2", flop.Table.CurrentPlayerID)
	}
	// The pot carries over; only per-round trackers reset.
	if flop.Table.Pot != 150 {
		t.Errorf("pot = %d, want 150", flop.Table.Pot)
	}
}

func TestStartRoundSkipsFoldedSeats(t *testing.T) {
	t.Parallel()
	g, err := StartHand(NewGame(threeHandedSetup()))
	if err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	g.Players[1].Status = StatusFolded

	flop := StartRound(g, Flop)
	if flop.Table.CurrentPlayerID != "player-3" {
		t.Errorf("current player = %q, want player-3", flop.Table.CurrentPlayerID)
	}
}
