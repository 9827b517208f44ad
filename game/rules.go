package game

import (
	"fmt"

	"github.com/minaorangina/eights/deck"
)

// IsValidSingleStep reports whether next may be played onto prev.
// activeSuit is deck.NullSuit when no Ace has declared a suit.
func IsValidSingleStep(prev, next deck.Card, activeSuit deck.Suit, pendingPenalty int) bool {
	// A penalty can only be countered, never ignored
	if pendingPenalty > 0 {
		if prev.Rank == deck.Two && next.Rank == deck.Two {
			return true
		}
		return prev.IsBlackJack() && next.IsRedJack()
	}

	if activeSuit != deck.NullSuit {
		return next.Suit == activeSuit || next.Rank == deck.Ace
	}

	return prev.Suit == next.Suit ||
		prev.Rank == next.Rank ||
		next.Rank == deck.Ace ||
		prev.Rank == deck.Ace
}

// Connects reports whether next may follow prev inside a combo:
// same rank, the next card in sequence of the same suit, or a Queen
// covered by a card of its own suit.
func Connects(prev, next deck.Card) bool {
	if prev.Rank == next.Rank {
		return true
	}
	if prev.Suit != next.Suit {
		return false
	}
	if prev.Rank == deck.Queen {
		return true
	}

	diff := prev.Rank.Value() - next.Rank.Value()
	return diff == 1 || diff == -1
}

// IsValidCombo reports whether cards, in order, may be played onto top.
// Only the first card is checked against the active suit and pending penalty;
// the rest of the chain follows the plain connection rule.
func IsValidCombo(cards []deck.Card, top deck.Card, activeSuit deck.Suit, pendingPenalty int) bool {
	if len(cards) == 0 {
		return false
	}

	if !IsValidSingleStep(top, cards[0], activeSuit, pendingPenalty) {
		return false
	}

	for i := 0; i < len(cards)-1; i++ {
		if !Connects(cards[i], cards[i+1]) {
			return false
		}
	}

	return true
}

// CoversQueens reports whether every Queen in cards is immediately followed
// by a card of the same suit
func CoversQueens(cards []deck.Card) bool {
	for i, c := range cards {
		if c.Rank != deck.Queen {
			continue
		}
		if i == len(cards)-1 || cards[i+1].Suit != c.Suit {
			return false
		}
	}
	return true
}

// validatePlay checks a play by the active seat against the current state
func validatePlay(s State, cards []deck.Card) error {
	if len(cards) == 0 {
		return fmt.Errorf("%w: no cards played", ErrInvalidCombo)
	}

	hand := deck.Deck(s.Current().Hand)
	played := map[deck.Card]struct{}{}
	for _, c := range cards {
		if !hand.Contains(c) {
			return fmt.Errorf("%w: %s is not in your hand", ErrInvalidCombo, c)
		}
		if _, ok := played[c]; ok {
			return fmt.Errorf("%w: %s played twice", ErrInvalidCombo, c)
		}
		played[c] = struct{}{}
	}

	top, ok := s.TopCard()
	if !ok {
		return fmt.Errorf("%w: the pile is empty", ErrInvalidCombo)
	}

	if !IsValidCombo(cards, top, s.ActiveSuit, s.PendingPenalty) {
		return fmt.Errorf("%w: %s cannot be played on %s", ErrInvalidCombo, describeCards(cards), top)
	}

	if !CoversQueens(cards) {
		return fmt.Errorf("%w: %w", ErrInvalidCombo, ErrQueenUncovered)
	}

	return nil
}

// legalSingleCards returns the indices of the cards in hand that could be
// played on their own
func legalSingleCards(s State, hand []deck.Card) []int {
	top, ok := s.TopCard()
	if !ok {
		return nil
	}

	moves := []int{}
	for i, c := range hand {
		if IsValidSingleStep(top, c, s.ActiveSuit, s.PendingPenalty) {
			moves = append(moves, i)
		}
	}
	return moves
}
