package game

// PlayerDiff records the before-values of a player's changed fields. Nil
// fields were untouched by the transition being recorded.
type PlayerDiff struct {
	PlayerID     string  `json:"playerId"`
	Stack        *int    `json:"stack,omitempty"`
	BetThisRound *int    `json:"betThisRound,omitempty"`
	Status       *Status `json:"status,omitempty"`
}

// TableDiff records the before-values of changed table fields.
type TableDiff struct {
	Pot             *int    `json:"pot,omitempty"`
	Round           *Round  `json:"round,omitempty"`
	CurrentBet      *int    `json:"currentBet,omitempty"`
	CurrentPlayerID *string `json:"currentPlayerId,omitempty"`
	LastAggressorID *string `json:"lastAggressorId,omitempty"`
	ButtonIndex     *int    `json:"buttonIndex,omitempty"`
}

// HistoryEntry is a sparse reverse diff between two consecutive snapshots:
// just enough to replay one transition backward. Entries are owned by the
// caller's history stack; the engine never retains them.
//
// Every mutating transition stays within the tracked field set. A new
// mutation path must either keep to these fields or extend the diff shape,
// or undo exactness breaks.
type HistoryEntry struct {
	Players   []PlayerDiff `json:"players,omitempty"`
	Table     *TableDiff   `json:"table,omitempty"`
	TableName *string      `json:"tableName,omitempty"`
}

func ptr[T any](v T) *T { return &v }

// NewHistoryEntry computes the reverse diff from before to after. It
// returns nil when nothing tracked changed; nil entries must not be pushed
// onto a history stack.
func NewHistoryEntry(before, after Game) *HistoryEntry {
	var entry HistoryEntry

	for _, prev := range before.Players {
		cur, ok := after.PlayerByID(prev.ID)
		if !ok {
			continue
		}
		var diff PlayerDiff
		changed := false
		if prev.Stack != cur.Stack {
			diff.Stack = ptr(prev.Stack)
			changed = true
		}
		if prev.BetThisRound != cur.BetThisRound {
			diff.BetThisRound = ptr(prev.BetThisRound)
			changed = true
		}
		if prev.Status != cur.Status {
			diff.Status = ptr(prev.Status)
			changed = true
		}
		if changed {
			diff.PlayerID = prev.ID
			entry.Players = append(entry.Players, diff)
		}
	}

	var table TableDiff
	tableChanged := false
	if before.Table.Pot != after.Table.Pot {
		table.Pot = ptr(before.Table.Pot)
		tableChanged = true
	}
	if before.Table.Round != after.Table.Round {
		table.Round = ptr(before.Table.Round)
		tableChanged = true
	}
	if before.Table.CurrentBet != after.Table.CurrentBet {
		table.CurrentBet = ptr(before.Table.CurrentBet)
		tableChanged = true
	}
	if before.Table.CurrentPlayerID != after.Table.CurrentPlayerID {
		table.CurrentPlayerID = ptr(before.Table.CurrentPlayerID)
		tableChanged = true
	}
	if before.Table.LastAggressorID != after.Table.LastAggressorID {
		table.LastAggressorID = ptr(before.Table.LastAggressorID)
		tableChanged = true
	}
	if before.Table.ButtonIndex != after.Table.ButtonIndex {
		table.ButtonIndex = ptr(before.Table.ButtonIndex)
		tableChanged = true
	}
	if tableChanged {
		entry.Table = &table
	}

	if before.TableName != after.TableName {
		entry.TableName = ptr(before.TableName)
	}

	if len(entry.Players) == 0 && entry.Table == nil && entry.TableName == nil {
		return nil
	}
	return &entry
}

// PushHistory appends a non-nil entry to the stack. Nil entries (no-op
// transitions) are silently skipped.
func PushHistory(history []HistoryEntry, entry *HistoryEntry) []HistoryEntry {
	if entry == nil {
		return history
	}
	return append(history, *entry)
}

// Undo reverses the most recent recorded transition by overlaying the
// entry's before-values onto the current snapshot. Fields an entry did not
// record keep their current value, which is exact because the transition
// being undone did not change them. With an empty history both inputs are
// returned unchanged.
func Undo(g Game, history []HistoryEntry) (Game, []HistoryEntry) {
	if len(history) == 0 {
		return g, history
	}

	entry := history[len(history)-1]
	out := g.clone()

	for _, diff := range entry.Players {
		i := out.playerIndex(diff.PlayerID)
		if i < 0 {
			continue
		}
		if diff.Stack != nil {
			out.Players[i].Stack = *diff.Stack
		}
		if diff.BetThisRound != nil {
			out.Players[i].BetThisRound = *diff.BetThisRound
		}
		if diff.Status != nil {
			out.Players[i].Status = *diff.Status
		}
	}

	if t := entry.Table; t != nil {
		if t.Pot != nil {
			out.Table.Pot = *t.Pot
		}
		if t.Round != nil {
			out.Table.Round = *t.Round
		}
		if t.CurrentBet != nil {
			out.Table.CurrentBet = *t.CurrentBet
		}
		if t.CurrentPlayerID != nil {
			out.Table.CurrentPlayerID = *t.CurrentPlayerID
		}
		if t.LastAggressorID != nil {
			out.Table.LastAggressorID = *t.LastAggressorID
		}
		if t.ButtonIndex != nil {
			out.Table.ButtonIndex = *t.ButtonIndex
		}
	}

	if entry.TableName != nil {
		out.TableName = *entry.TableName
	}

	return out, history[:len(history)-1]
}
