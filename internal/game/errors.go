package game

import "errors"

// Sentinel errors for the failure taxonomy. All failures are synchronous:
// the transition either completes in full or leaves the caller's snapshot
// untouched.
var (
	// ErrNeedTwoPlayers is a setup error: a hand cannot start short-handed.
	ErrNeedTwoPlayers = errors.New("need at least two players")

	// ErrBlindExceedsStack is a setup error: a blind seat cannot cover the
	// full blind. Partial or all-in blind posting is not supported.
	ErrBlindExceedsStack = errors.New("stack insufficient to post blind")

	// ErrNoCurrentPlayer means a player action arrived while no seat holds
	// the turn.
	ErrNoCurrentPlayer = errors.New("no current player")

	// ErrPlayerFolded means the seat holding the turn is not ACTIVE.
	ErrPlayerFolded = errors.New("folded player cannot act")

	// ErrSidePotUnsupported rejects any action that would need a side pot:
	// calls and raises beyond the player's remaining stack.
	ErrSidePotUnsupported = errors.New("insufficient stack, side pots unsupported")

	// ErrUnknownWinner means a showdown winner id does not resolve against
	// the live player list.
	ErrUnknownWinner = errors.New("winner does not match any player")

	// ErrNegativeChips is the defensive invariant guard. It signals an
	// internal bug, not a recoverable condition: the legality checks should
	// make a negative stack, bet, or pot unreachable.
	ErrNegativeChips = errors.New("negative chip amount computed")
)
