package game

import (
	"time"

	"github.com/coder/quartz"

	"github.com/tablefelt/dealerpad/internal/logid"
)

// ActionLogEntry is a display-only record of a player action. It is never
// replayed or consumed by the engine.
type ActionLogEntry struct {
	ID         string     `json:"id"`
	PlayerID   string     `json:"playerId"`
	PlayerName string     `json:"playerName"`
	Action     ActionKind `json:"action"`
	Amount     int        `json:"amount"`
	Round      Round      `json:"round"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// LogProjector derives action log entries from pre-action snapshots. The
// clock is injectable so tests control timestamps.
type LogProjector struct {
	clock quartz.Clock
	ids   *logid.Generator
}

// NewLogProjector returns a projector on the real clock.
func NewLogProjector() *LogProjector {
	return NewLogProjectorWithClock(quartz.NewReal())
}

// NewLogProjectorWithClock returns a projector on the given clock.
func NewLogProjectorWithClock(clock quartz.Clock) *LogProjector {
	return &LogProjector{clock: clock, ids: logid.New()}
}

// Project builds the log entry for an action about to be applied to g.
// It must be called with the state *before* Apply: the call amount is the
// outstanding difference at decision time, which is always zero afterward.
// Returns nil when no seat holds the turn (administrative events never
// log).
func (lp *LogProjector) Project(g Game, action Action) *ActionLogEntry {
	actor, ok := CurrentPlayer(g)
	if !ok {
		return nil
	}

	now := lp.clock.Now()
	return &ActionLogEntry{
		ID:         lp.ids.Next(now),
		PlayerID:   actor.ID,
		PlayerName: actor.Name,
		Action:     action.Kind(),
		Amount:     resolveAmount(g, actor, action),
		Round:      g.Table.Round,
		CreatedAt:  now,
	}
}

func resolveAmount(g Game, actor Player, action Action) int {
	switch a := action.(type) {
	case Call:
		return ToCall(g, actor)
	case Bet:
		return a.Amount
	case Raise:
		return a.To
	default:
		return 0
	}
}

// PrependLog adds a non-nil entry to the front of a newest-first log.
func PrependLog(logs []ActionLogEntry, entry *ActionLogEntry) []ActionLogEntry {
	if entry == nil {
		return logs
	}
	return append([]ActionLogEntry{*entry}, logs...)
}
