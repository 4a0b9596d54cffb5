package game

// Status marks whether a player can still act in the current hand.
type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusFolded Status = "FOLDED"
)

// Round is a betting round. Rounds are strictly ordered and one-directional
// within a hand.
type Round string

const (
	Preflop  Round = "PREFLOP"
	Flop     Round = "FLOP"
	Turn     Round = "TURN"
	River    Round = "RIVER"
	Showdown Round = "SHOWDOWN"
)

var roundOrder = []Round{Preflop, Flop, Turn, River, Showdown}

// Next returns the round that follows r. Showdown is terminal and returns
// itself; it is exited only by settlement.
func (r Round) Next() Round {
	for i, round := range roundOrder {
		if round == r && i < len(roundOrder)-1 {
			return roundOrder[i+1]
		}
	}
	return Showdown
}

// Player is one seat at the table. A FOLDED player's BetThisRound is frozen
// until the round resets.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Stack        int    `json:"stack"`
	BetThisRound int    `json:"betThisRound"`
	Status       Status `json:"status"`
}

// IsActive returns true if the player can still act in this hand.
func (p Player) IsActive() bool {
	return p.Status == StatusActive
}

// Table holds the shared state of the hand in progress.
//
// CurrentBet duplicates information derivable from the players (it is the
// maximum BetThisRound this round). It is kept stored for cheap reads but
// recomputed after every mutation that could invalidate it; a stale copy is
// never trusted across a transition boundary.
type Table struct {
	Pot         int    `json:"pot"`
	Round       Round  `json:"round"`
	SmallBlind  int    `json:"sb"`
	BigBlind    int    `json:"bb"`
	ButtonIndex int    `json:"buttonIndex"`
	CurrentBet  int    `json:"currentBet"`
	// CurrentPlayerID is whose turn it is; empty means no one, which only
	// occurs transiently during settlement or when the game cannot continue.
	CurrentPlayerID string `json:"currentPlayerId"`
	// LastAggressorID is the player whose bet or raise opened the current
	// round of matching; empty when everyone has only checked.
	LastAggressorID string `json:"lastAggressorId,omitempty"`
}

// Game is a full snapshot of the table. Seat order is slice order; blind
// and turn arithmetic is modulo len(Players). Game is plain data with no
// cycles so external collaborators can serialize it freely.
type Game struct {
	TableName string   `json:"tableName"`
	Players   []Player `json:"players"`
	Table     Table    `json:"table"`
}

// SeatConfig describes one player in a SetupConfig.
type SeatConfig struct {
	Name  string `json:"name"`
	Stack int    `json:"stack"`
}

// SetupConfig is the inbound construction value assembled by the caller
// (setup UI, config file, test harness). Range validation beyond the
// two-player minimum is the caller's responsibility.
type SetupConfig struct {
	TableName   string       `json:"tableName,omitempty"`
	SmallBlind  int          `json:"smallBlind"`
	BigBlind    int          `json:"bigBlind"`
	ButtonIndex int          `json:"buttonIndex"`
	Players     []SeatConfig `json:"players"`
}

// clone returns a deep copy of g. Transitions build their result on a clone
// so the input snapshot is never touched.
func (g Game) clone() Game {
	players := make([]Player, len(g.Players))
	copy(players, g.Players)
	out := g
	out.Players = players
	return out
}

// playerIndex returns the seat index for an id, or -1.
func (g Game) playerIndex(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// PlayerByID returns the player with the given id.
func (g Game) PlayerByID(id string) (Player, bool) {
	if i := g.playerIndex(id); i >= 0 {
		return g.Players[i], true
	}
	return Player{}, false
}

// TotalChips is the conserved quantity of a hand: chips in stacks plus
// chips in the pot. BetThisRound is a per-round tracker for chips that
// have already moved into the pot, so it is deliberately excluded.
func (g Game) TotalChips() int {
	total := g.Table.Pot
	for _, p := range g.Players {
		total += p.Stack
	}
	return total
}

func (g Game) activeCount() int {
	n := 0
	for _, p := range g.Players {
		if p.IsActive() {
			n++
		}
	}
	return n
}

// maxBet recomputes the highest BetThisRound across all players, folded
// seats included (harmlessly, since their bets are frozen).
func (g Game) maxBet() int {
	max := 0
	for _, p := range g.Players {
		if p.BetThisRound > max {
			max = p.BetThisRound
		}
	}
	return max
}
