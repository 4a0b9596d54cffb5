// Package judge answers "what do I have?" at showdown. It takes free-form
// board and hole card input, validates it, and names the best hand category
// the seven cards make. It names categories only; it does not compare two
// players' hands or pick a winner.
package judge

import (
	"fmt"
	"regexp"
	"strings"
)

// Status classifies a judgement request.
type Status string

const (
	// StatusOK: all seven cards present and valid, a result is available.
	StatusOK Status = "ok"
	// StatusInsufficient: input is valid so far but cards are missing.
	StatusInsufficient Status = "insufficient"
	// StatusInvalid: the input contains malformed, excess, or duplicate cards.
	StatusInvalid Status = "invalid"
)

// Category is a hand ranking category, strongest first.
type Category string

const (
	StraightFlush Category = "Straight Flush"
	FourOfAKind   Category = "Four of a Kind"
	FullHouse     Category = "Full House"
	Flush         Category = "Flush"
	Straight      Category = "Straight"
	ThreeOfAKind  Category = "Three of a Kind"
	TwoPair       Category = "Two Pair"
	OnePair       Category = "One Pair"
	HighCard      Category = "High Card"
)

// Result is the outcome of judging a board/hole input pair.
type Result struct {
	Status   Status
	Guide    string
	Errors   []string
	Category Category
	Detail   string
}

var tokenSplit = regexp.MustCompile(`[,\s]+`)

// Judge evaluates free-form board and hole card input. Tokens are separated
// by spaces or commas ("Ah Kh Qh Jh 10h", "as,kd"). The board takes up to
// five cards and the hole up to two; until all seven are present the result
// guides the user toward what is still missing.
func Judge(boardInput, holeInput string) Result {
	board, errs := tokenize(boardInput)
	hole, holeErrs := tokenize(holeInput)
	errs = append(errs, holeErrs...)

	if len(board) > 5 {
		errs = append(errs, "enter at most 5 board cards")
	}
	if len(hole) > 2 {
		errs = append(errs, "enter at most 2 hole cards")
	}
	if dups := duplicates(append(append([]Card{}, board...), hole...)); len(dups) > 0 {
		errs = append(errs, fmt.Sprintf("duplicate cards: %s", strings.Join(dups, ", ")))
	}

	if len(errs) > 0 {
		return Result{
			Status: StatusInvalid,
			Guide:  "fix the card notation and try again",
			Errors: errs,
		}
	}

	if len(board) < 5 || len(hole) < 2 {
		var missing []string
		if n := 5 - len(board); n > 0 {
			missing = append(missing, fmt.Sprintf("%d more board %s", n, plural(n, "card")))
		}
		if n := 2 - len(hole); n > 0 {
			missing = append(missing, fmt.Sprintf("%d more hole %s", n, plural(n, "card")))
		}
		return Result{
			Status: StatusInsufficient,
			Guide:  "enter " + strings.Join(missing, " and "),
		}
	}

	category, detail := evaluateSeven(append(append([]Card{}, board...), hole...))
	return Result{
		Status:   StatusOK,
		Guide:    "best five-card hand from the seven cards",
		Category: category,
		Detail:   detail,
	}
}

func tokenize(input string) ([]Card, []string) {
	var cards []Card
	var errs []string
	for _, token := range tokenSplit.Split(strings.TrimSpace(input), -1) {
		if token == "" {
			continue
		}
		card, err := ParseCard(token)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		cards = append(cards, card)
	}
	return cards, errs
}

func duplicates(cards []Card) []string {
	seen := make(map[Card]bool, len(cards))
	var dups []string
	for _, c := range cards {
		if seen[c] {
			dups = append(dups, c.String())
		}
		seen[c] = true
	}
	return dups
}

// evaluateSeven names the best category the seven cards make. Detail strings
// describe the made hand, not the kickers.
func evaluateSeven(cards []Card) (Category, string) {
	rankCount := make(map[Rank]int)
	suitCount := make(map[Suit]int)
	for _, c := range cards {
		rankCount[c.Rank]++
		suitCount[c.Suit]++
	}

	var flushSuit Suit
	hasFlush := false
	for _, suit := range []Suit{Spades, Hearts, Diamonds, Clubs} {
		if suitCount[suit] >= 5 {
			flushSuit = suit
			hasFlush = true
			break
		}
	}

	if hasFlush {
		var flushRanks []Rank
		for _, c := range cards {
			if c.Suit == flushSuit {
				flushRanks = append(flushRanks, c.Rank)
			}
		}
		if high, ok := straightHigh(flushRanks); ok {
			return StraightFlush, fmt.Sprintf("%s-high straight flush", high)
		}
	}

	quads := ranksWithCount(rankCount, 4)
	if len(quads) > 0 {
		return FourOfAKind, fmt.Sprintf("four %ss", quads[0])
	}

	trips := ranksWithCount(rankCount, 3)
	pairs := ranksWithCount(rankCount, 2)

	if len(trips) > 0 && (len(pairs) > 0 || len(trips) >= 2) {
		filler := trips[1:]
		if len(pairs) > 0 {
			filler = pairs
		}
		return FullHouse, fmt.Sprintf("%ss full of %ss", trips[0], filler[0])
	}

	if hasFlush {
		return Flush, fmt.Sprintf("a flush in %s", flushSuit.Name())
	}

	allRanks := make([]Rank, 0, len(cards))
	for _, c := range cards {
		allRanks = append(allRanks, c.Rank)
	}
	if high, ok := straightHigh(allRanks); ok {
		return Straight, fmt.Sprintf("%s-high straight", high)
	}

	if len(trips) > 0 {
		return ThreeOfAKind, fmt.Sprintf("three %ss", trips[0])
	}
	if len(pairs) >= 2 {
		return TwoPair, fmt.Sprintf("%ss and %ss", pairs[0], pairs[1])
	}
	if len(pairs) == 1 {
		return OnePair, fmt.Sprintf("a pair of %ss", pairs[0])
	}

	highest := allRanks[0]
	for _, r := range allRanks[1:] {
		if r > highest {
			highest = r
		}
	}
	return HighCard, fmt.Sprintf("%s high", highest)
}

// ranksWithCount returns the ranks appearing exactly count times, highest
// first.
func ranksWithCount(rankCount map[Rank]int, count int) []Rank {
	var out []Rank
	for r := Ace; r >= Two; r-- {
		if rankCount[r] == count {
			out = append(out, r)
		}
	}
	return out
}

// straightHigh finds the highest rank completing a five-card run. The ace
// plays low in the wheel (A-2-3-4-5), so the lowest possible high card is a
// five.
func straightHigh(ranks []Rank) (Rank, bool) {
	present := make(map[int]bool, len(ranks))
	for _, r := range ranks {
		present[int(r)] = true
	}
	if present[int(Ace)] {
		present[1] = true
	}

	for high := int(Ace); high >= int(Five); high-- {
		run := true
		for r := high; r > high-5; r-- {
			if !present[r] {
				run = false
				break
			}
		}
		if run {
			return Rank(high), true
		}
	}
	return 0, false
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
