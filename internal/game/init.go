package game

import "fmt"

const defaultTableName = "Pass & Play Table"

// NewGame builds a fresh Game from setup input. Players get sequential ids
// in seat order and the table is positioned at the start of a preflop
// round with no blinds posted yet; call StartHand to begin play.
func NewGame(setup SetupConfig) Game {
	players := make([]Player, len(setup.Players))
	for i, seat := range setup.Players {
		players[i] = Player{
			ID:     fmt.Sprintf("player-%d", i+1),
			Name:   seat.Name,
			Stack:  seat.Stack,
			Status: StatusActive,
		}
	}

	name := setup.TableName
	if name == "" {
		name = defaultTableName
	}

	g := Game{
		TableName: name,
		Players:   players,
		Table: Table{
			Round:       Preflop,
			SmallBlind:  setup.SmallBlind,
			BigBlind:    setup.BigBlind,
			ButtonIndex: setup.ButtonIndex,
		},
	}

	return StartRound(g, Preflop)
}

// StartRound resets the table for a new betting round: every bet tracker
// returns to zero, the aggressor is cleared, and the turn moves to the
// first ACTIVE seat at or after the round's start position.
func StartRound(g Game, round Round) Game {
	out := g.clone()
	for i := range out.Players {
		out.Players[i].BetThisRound = 0
	}

	start := roundStartSeat(out.Table.ButtonIndex, len(out.Players), round)
	current := ""
	if i, ok := nextActiveIndex(out.Players, start); ok {
		current = out.Players[i].ID
	}

	out.Table.Round = round
	out.Table.CurrentBet = 0
	out.Table.CurrentPlayerID = current
	out.Table.LastAggressorID = ""
	return out
}

// postBlind moves a forced bet from a seat's stack into the pot. The seat
// must cover the full amount; partial or all-in blinds are unsupported.
func postBlind(g Game, seat, amount int) (Game, error) {
	if amount <= 0 || seat < 0 || seat >= len(g.Players) {
		return g, nil
	}

	p := g.Players[seat]
	if p.Stack < amount {
		return g, fmt.Errorf("%s (%s): %w", p.Name, p.ID, ErrBlindExceedsStack)
	}

	out := g.clone()
	out.Players[seat].Stack -= amount
	out.Players[seat].BetThisRound += amount
	out.Table.Pot += amount
	if bet := out.Players[seat].BetThisRound; bet > out.Table.CurrentBet {
		out.Table.CurrentBet = bet
	}
	return out, nil
}

// StartHand begins a new hand: resets to preflop, posts the small blind
// one seat after the button and the big blind two seats after, and leaves
// the turn on the first seat after the big blind.
func StartHand(g Game) (Game, error) {
	if len(g.Players) < 2 {
		return g, ErrNeedTwoPlayers
	}

	out := StartRound(g, Preflop)
	n := len(out.Players)
	sbSeat := (out.Table.ButtonIndex + 1) % n
	bbSeat := (out.Table.ButtonIndex + 2) % n

	out, err := postBlind(out, sbSeat, out.Table.SmallBlind)
	if err != nil {
		return g, err
	}
	out, err = postBlind(out, bbSeat, out.Table.BigBlind)
	if err != nil {
		return g, err
	}
	return out, nil
}
