package game

// ActionKind names a player action.
type ActionKind string

const (
	ActionFold  ActionKind = "FOLD"
	ActionCheck ActionKind = "CHECK"
	ActionBet   ActionKind = "BET"
	ActionCall  ActionKind = "CALL"
	ActionRaise ActionKind = "RAISE"
)

// ActionAvailability reports whether an action is legal for display
// purposes. Reason is advisory text for a disabled action; the engine
// re-validates independently and never trusts these flags.
type ActionAvailability struct {
	Action  ActionKind `json:"action"`
	Enabled bool       `json:"enabled"`
	Reason  string     `json:"reason,omitempty"`
}

// ToCall returns how much the player must add to match the current bet.
func ToCall(g Game, p Player) int {
	if d := g.Table.CurrentBet - p.BetThisRound; d > 0 {
		return d
	}
	return 0
}

// AvailableActions evaluates all five action kinds for a player. A player
// who is not ACTIVE has no actions.
func AvailableActions(g Game, p Player) []ActionAvailability {
	if !p.IsActive() {
		return nil
	}

	callAmount := ToCall(g, p)
	hasStack := p.Stack > 0
	out := make([]ActionAvailability, 0, 5)

	out = append(out, ActionAvailability{Action: ActionFold, Enabled: true})

	check := ActionAvailability{Action: ActionCheck, Enabled: callAmount == 0}
	if callAmount != 0 {
		check.Reason = "there is an outstanding bet to match"
	}
	out = append(out, check)

	bet := ActionAvailability{
		Action:  ActionBet,
		Enabled: callAmount == 0 && g.Table.CurrentBet == 0 && hasStack,
	}
	switch {
	case callAmount != 0:
		bet.Reason = "match the current bet first"
	case g.Table.CurrentBet > 0:
		bet.Reason = "a bet is already open"
	case !hasStack:
		bet.Reason = "no chips left to bet"
	}
	out = append(out, bet)

	call := ActionAvailability{
		Action:  ActionCall,
		Enabled: callAmount > 0 && p.Stack >= callAmount,
	}
	switch {
	case callAmount == 0:
		call.Reason = "nothing to call"
	case p.Stack < callAmount:
		call.Reason = "insufficient stack (side pots unsupported)"
	}
	out = append(out, call)

	canBeatCurrentBet := p.BetThisRound+p.Stack > g.Table.CurrentBet
	raise := ActionAvailability{
		Action:  ActionRaise,
		Enabled: g.Table.CurrentBet > 0 && canBeatCurrentBet && p.Stack > callAmount,
	}
	switch {
	case g.Table.CurrentBet <= 0:
		raise.Reason = "no bet to raise"
	case !canBeatCurrentBet || p.Stack <= callAmount:
		raise.Reason = "insufficient stack (side pots unsupported)"
	}
	out = append(out, raise)

	return out
}

// CurrentPlayer resolves the seat holding the turn.
func CurrentPlayer(g Game) (Player, bool) {
	return g.PlayerByID(g.Table.CurrentPlayerID)
}

// nextActiveIndex scans forward circularly from start (inclusive) until an
// ACTIVE seat is found, visiting every seat at most once.
func nextActiveIndex(players []Player, start int) (int, bool) {
	n := len(players)
	if n == 0 {
		return -1, false
	}
	for offset := 0; offset < n; offset++ {
		i := (start + offset) % n
		if players[i].IsActive() {
			return i, true
		}
	}
	return -1, false
}

// roundStartSeat returns the raw seat index where action begins for a
// round: three after the button preflop (first to act after the big
// blind), one after the button postflop. The first ACTIVE seat from there
// is the round's designated start seat.
func roundStartSeat(buttonIndex int, numPlayers int, round Round) int {
	if numPlayers == 0 {
		return 0
	}
	if round == Preflop {
		return (buttonIndex + 3) % numPlayers
	}
	return (buttonIndex + 1) % numPlayers
}

// TableSummary is a read-only projection for display surfaces.
type TableSummary struct {
	Name    string `json:"name"`
	Round   Round  `json:"round"`
	Pot     int    `json:"pot"`
	Players int    `json:"players"`
}

// Summarize returns the table summary for g.
func Summarize(g Game) TableSummary {
	return TableSummary{
		Name:    g.TableName,
		Round:   g.Table.Round,
		Pot:     g.Table.Pot,
		Players: len(g.Players),
	}
}
