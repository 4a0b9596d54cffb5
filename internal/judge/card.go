package judge

import (
	"fmt"
	"strings"
)

// Suit represents a card suit.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the suit glyph.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the suit name used in hand descriptions.
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// Rank represents a card rank, ace high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank as it appears in hand descriptions.
func (r Rank) String() string {
	switch r {
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the card in entry notation, e.g. "A♠" or "10♥".
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// ParseCard parses a single card token such as "As", "kd", or "10h".
// Ten accepts both "T" and "10"; rank and suit letters are case-insensitive.
func ParseCard(token string) (Card, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(token))
	if len(trimmed) < 2 || len(trimmed) > 3 {
		return Card{}, fmt.Errorf("invalid card notation: %q", token)
	}

	rankSymbol := trimmed[:len(trimmed)-1]
	suitSymbol := trimmed[len(trimmed)-1]

	rank, ok := parseRank(rankSymbol)
	if !ok {
		return Card{}, fmt.Errorf("invalid card notation: %q", token)
	}
	suit, ok := parseSuit(suitSymbol)
	if !ok {
		return Card{}, fmt.Errorf("invalid card notation: %q", token)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func parseRank(s string) (Rank, bool) {
	switch s {
	case "A":
		return Ace, true
	case "K":
		return King, true
	case "Q":
		return Queen, true
	case "J":
		return Jack, true
	case "T", "10":
		return Ten, true
	case "9":
		return Nine, true
	case "8":
		return Eight, true
	case "7":
		return Seven, true
	case "6":
		return Six, true
	case "5":
		return Five, true
	case "4":
		return Four, true
	case "3":
		return Three, true
	case "2":
		return Two, true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'S':
		return Spades, true
	case 'H':
		return Hearts, true
	case 'D':
		return Diamonds, true
	case 'C':
		return Clubs, true
	default:
		return 0, false
	}
}
