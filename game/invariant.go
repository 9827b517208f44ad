package game

import (
	"fmt"

	"github.com/minaorangina/eights/deck"
)

// CheckInvariant verifies that the draw pile, discard pile and hands hold
// every card of the deck exactly once. A failure is a programming error.
func CheckInvariant(s State) error {
	seen := make(map[deck.Card]int, deck.Size)

	count := func(cards []deck.Card) {
		for _, c := range cards {
			seen[c]++
		}
	}

	count(s.DrawPile)
	count(s.Pile)
	for _, seat := range s.Seats {
		count(seat.Hand)
	}

	for c, n := range seen {
		if n > 1 {
			return fmt.Errorf("%w: %s appears %d times", ErrInvariantViolation, c, n)
		}
	}

	for _, c := range deck.New() {
		if _, ok := seen[c]; !ok {
			return fmt.Errorf("%w: %s is missing", ErrInvariantViolation, c)
		}
	}

	if len(seen) != deck.Size {
		return fmt.Errorf("%w: found %d distinct cards", ErrInvariantViolation, len(seen))
	}

	return nil
}
