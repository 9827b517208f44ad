package deck

import (
	"math/rand"
	"time"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck represents an ordered pile of cards. The head of the deck is index 0.
type Deck []Card

// New creates a full deck of cards, ordered by suit then rank
func New() Deck {
	cards := make(Deck, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// NewRand returns a random source seeded with seed, or with the current time
// when seed is zero
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle returns a shuffled copy of d. The input deck is left untouched.
// A nil source is replaced with a time-seeded one.
func Shuffle(d Deck, r *rand.Rand) Deck {
	if r == nil {
		r = NewRand(0)
	}

	shuffled := make(Deck, len(d))
	copy(shuffled, d)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// Draw takes up to n cards from the head of the deck.
// It returns the drawn cards and what remains; neither aliases d.
func (d Deck) Draw(n int) ([]Card, Deck) {
	if n < 0 {
		n = 0
	}
	if n > len(d) {
		n = len(d)
	}

	drawn := make([]Card, n)
	copy(drawn, d[:n])

	rest := make(Deck, len(d)-n)
	copy(rest, d[n:])

	return drawn, rest
}

// Contains reports whether the deck holds card c
func (d Deck) Contains(c Card) bool {
	for _, card := range d {
		if card == c {
			return true
		}
	}
	return false
}
