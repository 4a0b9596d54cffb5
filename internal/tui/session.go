package tui

import (
	"fmt"
	"strings"

	"github.com/tablefelt/dealerpad/internal/game"
	"github.com/tablefelt/dealerpad/internal/store"
)

// Session is the single state cell behind the dealer screen: the current
// snapshot plus everything needed to undo and to narrate the hand. All
// transitions flow through Apply or Undo so history, logs, and markers stay
// aligned.
type Session struct {
	Game    game.Game
	History []game.HistoryEntry
	Logs    []game.ActionLogEntry

	// logMarkers runs parallel to History: true when that transition also
	// produced a log line, so Undo retires the right one.
	logMarkers []bool

	projector *game.LogProjector
}

// NewSession starts a session from a freshly dealt game.
func NewSession(g game.Game) *Session {
	return &Session{Game: g, projector: game.NewLogProjector()}
}

// RestoreSession resumes a session from a saved snapshot.
func RestoreSession(snap store.Snapshot) *Session {
	return &Session{
		Game:       snap.Game,
		History:    snap.History,
		Logs:       snap.Logs,
		logMarkers: snap.LogMarkers,
		projector:  game.NewLogProjector(),
	}
}

// Apply runs one event through the engine, recording history and the action
// log. On error nothing changes.
func (s *Session) Apply(ev game.Event) error {
	// Project the log line against the pre-action snapshot so amounts
	// reflect what the decision was, not what was left afterward.
	var logEntry *game.ActionLogEntry
	if pa, ok := ev.(game.PlayerAction); ok {
		logEntry = s.projector.Project(s.Game, pa.Action)
	}

	next, err := game.Apply(s.Game, ev)
	if err != nil {
		return err
	}

	if entry := game.NewHistoryEntry(s.Game, next); entry != nil {
		s.History = game.PushHistory(s.History, entry)
		s.logMarkers = append(s.logMarkers, logEntry != nil)
		s.Logs = game.PrependLog(s.Logs, logEntry)
	}

	s.Game = next
	return nil
}

// Undo reverses the most recent transition. It reports false when there is
// nothing to take back.
func (s *Session) Undo() bool {
	if len(s.History) == 0 {
		return false
	}

	s.Game, s.History = game.Undo(s.Game, s.History)

	// A tampered or truncated save can leave fewer markers than history
	// entries; an undo without a marker keeps the log as-is.
	if last := len(s.logMarkers) - 1; last >= 0 {
		if s.logMarkers[last] && len(s.Logs) > 0 {
			s.Logs = s.Logs[1:]
		}
		s.logMarkers = s.logMarkers[:last]
	}
	return true
}

// Snapshot packages the session for persistence.
func (s *Session) Snapshot() store.Snapshot {
	return store.Snapshot{
		Game:       s.Game,
		History:    s.History,
		Logs:       s.Logs,
		LogMarkers: s.logMarkers,
	}
}

// ResolveWinner finds a player by id or by name, case-insensitively, for
// the winner command.
func (s *Session) ResolveWinner(ref string) (string, error) {
	if _, ok := s.Game.PlayerByID(ref); ok {
		return ref, nil
	}
	for _, p := range s.Game.Players {
		if strings.EqualFold(p.Name, ref) {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("no player called %q at the table", ref)
}
