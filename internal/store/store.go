// Package store persists the table state between sessions. Snapshots are
// versioned JSON payloads written atomically; loading an incompatible or
// unreadable payload reports a status instead of partially merging stale
// data into a live game.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/coder/quartz"

	"github.com/tablefelt/dealerpad/internal/game"
)

// SchemaVersion identifies the snapshot shape. Bump it whenever the
// serialized form changes incompatibly; older saves then load as
// StatusMismatch rather than being reinterpreted.
const SchemaVersion = 2

// Snapshot is everything needed to resume a session.
type Snapshot struct {
	Game    game.Game             `json:"game"`
	History []game.HistoryEntry   `json:"history"`
	Logs    []game.ActionLogEntry `json:"logs"`
	// LogMarkers records, per history entry, whether that transition also
	// produced an action log entry, so undo can retire the right log line.
	LogMarkers []bool `json:"logMarkers"`
}

type payload struct {
	SchemaVersion int       `json:"schemaVersion"`
	SavedAt       time.Time `json:"savedAt"`
	State         Snapshot  `json:"state"`
}

// Status classifies the outcome of a Load.
type Status string

const (
	// StatusOK: a compatible snapshot was loaded.
	StatusOK Status = "ok"
	// StatusEmpty: no save exists.
	StatusEmpty Status = "empty"
	// StatusMismatch: a save exists but was written by a different schema
	// version. It is left on disk untouched for the caller to decide.
	StatusMismatch Status = "mismatch"
	// StatusInvalid: the save could not be parsed and has been cleared.
	StatusInvalid Status = "invalid"
)

// LoadResult carries the loaded snapshot, or the reason there is none.
type LoadResult struct {
	Status        Status
	State         Snapshot
	SavedAt       time.Time
	StoredVersion int
}

// Store reads and writes snapshots at a fixed path.
type Store struct {
	path  string
	clock quartz.Clock
}

// New returns a store on the real clock.
func New(path string) *Store {
	return NewWithClock(path, quartz.NewReal())
}

// NewWithClock returns a store with an injected clock for tests.
func NewWithClock(path string, clock quartz.Clock) *Store {
	return &Store{path: path, clock: clock}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Save writes the snapshot, replacing any previous save. The write is
// atomic: readers observe either the old payload or the new one, never a
// torn file. Returns the recorded save time.
func (s *Store) Save(state Snapshot) (time.Time, error) {
	savedAt := s.clock.Now()
	data, err := json.MarshalIndent(payload{
		SchemaVersion: SchemaVersion,
		SavedAt:       savedAt,
		State:         state,
	}, "", "  ")
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return time.Time{}, fmt.Errorf("failed to write snapshot: %w", err)
	}
	return savedAt, nil
}

// Load reads the current save. Invalid payloads are cleared from disk;
// version mismatches are preserved so nothing is lost without the caller
// opting in (see Clear).
func (s *Store) Load() LoadResult {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadResult{Status: StatusEmpty}
	}
	if err != nil {
		return LoadResult{Status: StatusInvalid}
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		_ = s.Clear()
		return LoadResult{Status: StatusInvalid}
	}
	if p.SchemaVersion == 0 {
		_ = s.Clear()
		return LoadResult{Status: StatusInvalid}
	}
	if p.SchemaVersion != SchemaVersion {
		return LoadResult{
			Status:        StatusMismatch,
			SavedAt:       p.SavedAt,
			StoredVersion: p.SchemaVersion,
		}
	}
	if len(p.State.Game.Players) == 0 && p.State.Game.TableName == "" {
		_ = s.Clear()
		return LoadResult{Status: StatusInvalid}
	}

	return LoadResult{
		Status:        StatusOK,
		State:         p.State,
		SavedAt:       p.SavedAt,
		StoredVersion: p.SchemaVersion,
	}
}

// Clear removes the save file. Missing files are not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
