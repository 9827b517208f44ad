package game

import (
	"github.com/minaorangina/eights/deck"
)

// BotMove picks the next intent for the active seat.
//
// While playing, the bot scans its hand in order and plays the first card
// that may go on the pile by itself, or draws when there is none. It never
// plays combos, so a Queen, which must be covered, is never chosen. While
// selecting a suit it declares BotSuit of its hand.
func BotMove(s State) Intent {
	if s.Phase == SelectingSuit {
		return SelectSuit(BotSuit(s.Current().Hand))
	}

	hand := s.Current().Hand
	for _, i := range legalSingleCards(s, hand) {
		if hand[i].Rank == deck.Queen {
			continue
		}
		return PlayCards(hand[i])
	}

	return DrawCard()
}

// BotSuit returns the suit the hand holds most of. Ties go to the suit that
// comes first in deck.Suits; an empty hand gives Hearts.
func BotSuit(hand []deck.Card) deck.Suit {
	counts := map[deck.Suit]int{}
	for _, c := range hand {
		counts[c.Suit]++
	}

	best := deck.Hearts
	for _, suit := range deck.Suits {
		if counts[suit] > counts[best] {
			best = suit
		}
	}
	return best
}

// BotTurn plays the active seat's whole turn. If the bot plays an Ace it
// declares a suit straight away.
func BotTurn(s State) (State, error) {
	next, err := Apply(s, BotMove(s))
	if err != nil {
		return s, err
	}

	if next.Phase == SelectingSuit {
		return Apply(next, BotMove(next))
	}

	return next, nil
}
