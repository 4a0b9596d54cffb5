package game

import "fmt"

// Action is a closed set of player intents. The concrete types carry any
// amounts; dispatch in Apply is exhaustive so a new kind cannot be
// silently ignored.
type Action interface {
	Kind() ActionKind
}

// Check passes without committing chips. Legal only when nothing is owed.
type Check struct{}

// Call matches the outstanding bet in full.
type Call struct{}

// Bet opens the betting for the round with Amount chips.
type Bet struct {
	Amount int `json:"amount"`
}

// Raise increases the player's total commitment this round to To chips
// ("raise to", not "raise by").
type Raise struct {
	To int `json:"raiseTo"`
}

// Fold surrenders the hand. No chips move.
type Fold struct{}

func (Check) Kind() ActionKind { return ActionCheck }
func (Call) Kind() ActionKind  { return ActionCall }
func (Bet) Kind() ActionKind   { return ActionBet }
func (Raise) Kind() ActionKind { return ActionRaise }
func (Fold) Kind() ActionKind  { return ActionFold }

// Event is the closed set of inputs accepted by Apply.
type Event interface {
	isEvent()
}

// PlayerAction wraps an action by the seat that holds the turn.
type PlayerAction struct {
	Action Action
}

// SetTableName renames the table.
type SetTableName struct {
	Name string
}

// AdvanceStage forces the round to a specific value. Administrative and
// corrective only; normal play advances rounds through the closure test.
type AdvanceStage struct {
	Round Round
}

// UpdatePot overwrites the pot. Administrative and corrective only.
type UpdatePot struct {
	Pot int
}

// ResolveShowdown settles the hand: the named winner takes the whole pot
// and the next hand starts immediately. Legal only at SHOWDOWN.
type ResolveShowdown struct {
	WinnerID string
}

func (PlayerAction) isEvent()    {}
func (SetTableName) isEvent()    {}
func (AdvanceStage) isEvent()    {}
func (UpdatePot) isEvent()       {}
func (ResolveShowdown) isEvent() {}

// Apply is the state-transition function: one event in, a new Game out.
// The input snapshot is never mutated; on error it remains current.
func Apply(g Game, ev Event) (Game, error) {
	switch e := ev.(type) {
	case PlayerAction:
		return applyPlayerAction(g, e.Action)

	case SetTableName:
		out := g.clone()
		out.TableName = e.Name
		return checked(g, out)

	case AdvanceStage:
		if !e.Round.valid() {
			return g, fmt.Errorf("unknown round %q", e.Round)
		}
		out := g.clone()
		out.Table.Round = e.Round
		return checked(g, out)

	case UpdatePot:
		out := g.clone()
		out.Table.Pot = e.Pot
		return checked(g, out)

	case ResolveShowdown:
		if g.Table.Round != Showdown {
			return g, fmt.Errorf("cannot resolve showdown during %s", g.Table.Round)
		}
		return settle(g, e.WinnerID)

	default:
		return g, fmt.Errorf("unknown event %T", ev)
	}
}

func (r Round) valid() bool {
	for _, round := range roundOrder {
		if r == round {
			return true
		}
	}
	return false
}

// applyPlayerAction validates and applies one action by the current
// player, then advances the turn, the round, or the hand as required.
func applyPlayerAction(g Game, action Action) (Game, error) {
	idx := g.playerIndex(g.Table.CurrentPlayerID)
	if g.Table.CurrentPlayerID == "" || idx < 0 {
		return g, ErrNoCurrentPlayer
	}
	actor := g.Players[idx]
	if !actor.IsActive() {
		return g, ErrPlayerFolded
	}

	// toCall is derived fresh from the snapshot; cached values from the
	// display layer are never trusted here.
	callAmount := ToCall(g, actor)
	out := g.clone()

	switch a := action.(type) {
	case Check:
		if callAmount != 0 {
			return g, fmt.Errorf("cannot check, must call %d", callAmount)
		}

	case Call:
		if callAmount == 0 {
			return g, fmt.Errorf("nothing to call")
		}
		if actor.Stack < callAmount {
			return g, fmt.Errorf("call of %d with stack %d: %w", callAmount, actor.Stack, ErrSidePotUnsupported)
		}
		out.Players[idx].Stack -= callAmount
		out.Players[idx].BetThisRound += callAmount
		out.Table.Pot += callAmount

	case Bet:
		if g.Table.CurrentBet != 0 {
			return g, fmt.Errorf("a bet is already open at %d", g.Table.CurrentBet)
		}
		if a.Amount <= 0 {
			return g, fmt.Errorf("bet must be positive, got %d", a.Amount)
		}
		if a.Amount > actor.Stack {
			return g, fmt.Errorf("bet of %d with stack %d: %w", a.Amount, actor.Stack, ErrSidePotUnsupported)
		}
		out.Players[idx].Stack -= a.Amount
		out.Players[idx].BetThisRound += a.Amount
		out.Table.Pot += a.Amount
		out.Table.CurrentBet = out.Players[idx].BetThisRound
		out.Table.LastAggressorID = actor.ID

	case Raise:
		if g.Table.CurrentBet == 0 {
			return g, fmt.Errorf("no bet to raise")
		}
		if a.To <= g.Table.CurrentBet {
			return g, fmt.Errorf("raise to %d must exceed current bet %d", a.To, g.Table.CurrentBet)
		}
		delta := a.To - actor.BetThisRound
		if delta <= 0 {
			return g, fmt.Errorf("raise to %d adds nothing over %d already committed", a.To, actor.BetThisRound)
		}
		if delta > actor.Stack {
			return g, fmt.Errorf("raise to %d needs %d more with stack %d: %w", a.To, delta, actor.Stack, ErrSidePotUnsupported)
		}
		out.Players[idx].Stack -= delta
		out.Players[idx].BetThisRound = a.To
		out.Table.Pot += delta
		out.Table.CurrentBet = a.To
		out.Table.LastAggressorID = actor.ID

	case Fold:
		out.Players[idx].Status = StatusFolded

	default:
		return g, fmt.Errorf("unknown action %T", action)
	}

	// A hand can end by folds at any round, not only at showdown.
	if out.activeCount() <= 1 {
		winnerID := ""
		for _, p := range out.Players {
			if p.IsActive() {
				winnerID = p.ID
				break
			}
		}
		if winnerID == "" {
			return g, fmt.Errorf("no active player remains to win the pot")
		}
		settled, err := settle(out, winnerID)
		if err != nil {
			return g, err
		}
		return settled, nil
	}

	out.Table.CurrentBet = out.maxBet()

	nextIdx, ok := nextActiveIndex(out.Players, (idx+1)%len(out.Players))
	if !ok {
		return g, fmt.Errorf("no active player to receive the turn")
	}

	if roundClosed(out, nextIdx) && out.Table.Round != Showdown {
		out = StartRound(out, out.Table.Round.Next())
	} else {
		out.Table.CurrentPlayerID = out.Players[nextIdx].ID
	}

	return checked(g, out)
}

// checked runs the defensive invariant guard. On failure the unmodified
// input snapshot is returned so no partial transition escapes.
func checked(prev, next Game) (Game, error) {
	if err := guardNonNegative(next); err != nil {
		return prev, err
	}
	return next, nil
}

// roundClosed reports whether betting has closed: every ACTIVE player has
// matched the current bet, and the turn would return to the last
// aggressor — or, when nobody has bet this round, to the round's
// designated start seat.
func roundClosed(g Game, nextIdx int) bool {
	for _, p := range g.Players {
		if p.IsActive() && p.BetThisRound != g.Table.CurrentBet {
			return false
		}
	}

	if g.Table.LastAggressorID != "" {
		return g.Players[nextIdx].ID == g.Table.LastAggressorID
	}

	start := roundStartSeat(g.Table.ButtonIndex, len(g.Players), g.Table.Round)
	startIdx, ok := nextActiveIndex(g.Players, start)
	return ok && nextIdx == startIdx
}

// settle ends the hand: the winner takes the pot, bets and statuses reset,
// busted seats leave the table, the button moves, and the next hand starts
// immediately when at least two players remain. With fewer the table is
// left as-is with no current player; the caller decides what happens next.
func settle(g Game, winnerID string) (Game, error) {
	idx := g.playerIndex(winnerID)
	if idx < 0 {
		return g, fmt.Errorf("%q: %w", winnerID, ErrUnknownWinner)
	}

	out := g.clone()
	out.Players[idx].Stack += out.Table.Pot
	out.Table.Pot = 0

	survivors := make([]Player, 0, len(out.Players))
	for _, p := range out.Players {
		p.BetThisRound = 0
		p.Status = StatusActive
		if p.Stack > 0 {
			survivors = append(survivors, p)
		}
	}
	out.Players = survivors

	out.Table.CurrentBet = 0
	out.Table.CurrentPlayerID = ""
	out.Table.LastAggressorID = ""
	if len(out.Players) > 0 {
		out.Table.ButtonIndex = (out.Table.ButtonIndex + 1) % len(out.Players)
	}

	if len(out.Players) < 2 {
		return out, nil
	}

	// Starting the next hand can still fail (a surviving short stack that
	// cannot cover a blind). The half-settled snapshot must not escape: the
	// caller's pre-settlement state is the one that remains current.
	next, err := StartHand(out)
	if err != nil {
		return g, err
	}
	return next, nil
}

// guardNonNegative fails hard if any chip quantity went negative. The
// legality checks make this unreachable; tripping it means an engine bug.
func guardNonNegative(g Game) error {
	if g.Table.Pot < 0 {
		return fmt.Errorf("pot %d: %w", g.Table.Pot, ErrNegativeChips)
	}
	if g.Table.CurrentBet < 0 {
		return fmt.Errorf("current bet %d: %w", g.Table.CurrentBet, ErrNegativeChips)
	}
	for _, p := range g.Players {
		if p.Stack < 0 {
			return fmt.Errorf("player %s stack %d: %w", p.ID, p.Stack, ErrNegativeChips)
		}
		if p.BetThisRound < 0 {
			return fmt.Errorf("player %s bet %d: %w", p.ID, p.BetThisRound, ErrNegativeChips)
		}
	}
	return nil
}
