package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablefelt/dealerpad/internal/game"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	g, err := game.StartHand(game.NewGame(game.SetupConfig{
		TableName:  "Test Table",
		SmallBlind: 50,
		BigBlind:   100,
		Players: []game.SeatConfig{
			{Name: "Alice", Stack: 1000},
			{Name: "Bob", Stack: 1000},
			{Name: "Carol", Stack: 1000},
		},
	}))
	require.NoError(t, err)
	return NewSession(g)
}

func TestSessionApplyRecordsHistoryAndLog(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)

	require.NoError(t, s.Apply(game.PlayerAction{Action: game.Call{}}))

	require.Len(t, s.History, 1)
	require.Len(t, s.Logs, 1)
	assert.Equal(t, game.ActionCall, s.Logs[0].Action)
	assert.Equal(t, 100, s.Logs[0].Amount)
	assert.Equal(t, "Alice", s.Logs[0].PlayerName)
}

func TestSessionApplyErrorChangesNothing(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	before := s.Game

	err := s.Apply(game.PlayerAction{Action: game.Check{}}) // must call the blind
	require.Error(t, err)

	assert.Equal(t, before, s.Game)
	assert.Empty(t, s.History)
	assert.Empty(t, s.Logs)
}

func TestSessionUndoRetiresLogLine(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	before := s.Game

	require.NoError(t, s.Apply(game.PlayerAction{Action: game.Call{}}))
	require.True(t, s.Undo())

	assert.Equal(t, before, s.Game)
	assert.Empty(t, s.History)
	assert.Empty(t, s.Logs, "the call's log line should be retired with it")
}

func TestSessionUndoKeepsLogForAdminEvents(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)

	require.NoError(t, s.Apply(game.PlayerAction{Action: game.Call{}}))
	require.NoError(t, s.Apply(game.SetTableName{Name: "Renamed"}))
	require.Len(t, s.Logs, 1, "admin events produce no log line")

	require.True(t, s.Undo()) // undoes the rename
	assert.Len(t, s.Logs, 1, "the call's log line must survive")
	assert.Equal(t, "Test Table", s.Game.TableName)

	require.True(t, s.Undo()) // undoes the call
	assert.Empty(t, s.Logs)
}

func TestSessionUndoWithMissingMarkers(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	require.NoError(t, s.Apply(game.PlayerAction{Action: game.Call{}}))

	// A save edited by hand can carry history without its marker slice;
	// undo must still work and leave the log alone.
	snap := s.Snapshot()
	snap.LogMarkers = nil
	restored := RestoreSession(snap)

	require.True(t, restored.Undo())
	assert.Empty(t, restored.History)
	assert.Len(t, restored.Logs, 1)
	assert.False(t, restored.Undo())
}

func TestSessionUndoEmpty(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	assert.False(t, s.Undo())
}

func TestSessionSnapshotRoundtrip(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	require.NoError(t, s.Apply(game.PlayerAction{Action: game.Call{}}))
	require.NoError(t, s.Apply(game.PlayerAction{Action: game.Call{}}))

	restored := RestoreSession(s.Snapshot())
	assert.Equal(t, s.Game, restored.Game)
	assert.Equal(t, s.History, restored.History)
	assert.Equal(t, s.Logs, restored.Logs)

	// The restored session can keep undoing where the old one left off.
	require.True(t, restored.Undo())
	require.True(t, restored.Undo())
	assert.False(t, restored.Undo())
}

func TestResolveWinner(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)

	id, err := s.ResolveWinner("player-2")
	require.NoError(t, err)
	assert.Equal(t, "player-2", id)

	id, err = s.ResolveWinner("carol")
	require.NoError(t, err)
	assert.Equal(t, "player-3", id)

	_, err = s.ResolveWinner("mallory")
	assert.Error(t, err)
}
