// Package game implements the betting-round state machine for a chipless
// pass-and-play no-limit hold'em cash game.
//
// The central type is Game, an immutable snapshot of a hand in progress.
// Every transition is a pure function from (Game, event) to a new Game or
// an error; inputs are never mutated in place, so on failure the caller's
// previous snapshot is still the current state.
//
// # Basic Usage
//
//	g := game.NewGame(setup)
//	g, err := game.StartHand(g)
//	// Dispatch player intents...
//	g, err = game.Apply(g, game.PlayerAction{Action: game.Call{}})
//
// # Undo
//
// Callers that want undo record a sparse reverse diff around each
// transition and keep their own stack:
//
//	next, _ := game.Apply(g, ev)
//	history = game.PushHistory(history, game.NewHistoryEntry(g, next))
//	g, history = game.Undo(next, history)
//
// # Scope
//
// Side pots are not supported: actions that would require splitting a
// mismatched all-in are rejected rather than partially applied. Winner
// selection at showdown is an external decision injected via
// ResolveShowdown; the engine never evaluates hands.
//
// The package performs no locking. Callers serialize all dispatches
// against a given Game; applying two transitions concurrently to the same
// snapshot is not supported.
package game
