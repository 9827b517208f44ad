package game

import (
	"testing"

	"github.com/minaorangina/eights/deck"
)

var cards = deck.MustParseCards

func card(s string) deck.Card {
	c, err := deck.ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// table describes a game mid-flow. Cards not placed anywhere go to the draw
// pile, or under the top card when the draw pile is given explicitly, so
// every fixture holds the full deck.
type table struct {
	top       string
	hands     [NumSeats]string
	draw      *string
	active    int
	direction Direction
	penalty   int
	jacks     int
	suit      deck.Suit
	phase     Phase
}

func drawPile(s string) *string { return &s }

func (tb table) state(t *testing.T) State {
	t.Helper()

	used := map[deck.Card]struct{}{}
	take := func(cs []deck.Card) []deck.Card {
		for _, c := range cs {
			if _, ok := used[c]; ok {
				t.Fatalf("fixture uses %s twice", c)
			}
			used[c] = struct{}{}
		}
		return cs
	}

	s := State{
		Seats:          make([]Seat, NumSeats),
		ActiveSeat:     tb.active,
		Direction:      tb.direction,
		PendingPenalty: tb.penalty,
		JackPenalty:    tb.jacks,
		ActiveSuit:     tb.suit,
		Winner:         NoWinner,
		Phase:          tb.phase,
	}
	if s.Direction == 0 {
		s.Direction = Clockwise
	}

	for i, info := range DefaultSeats() {
		s.Seats[i] = Seat{ID: info.ID, Name: info.Name, IsBot: info.IsBot, Hand: take(cards(tb.hands[i]))}
	}

	top := take(cards(tb.top))
	if tb.draw != nil {
		s.DrawPile = take(cards(*tb.draw))
	}

	leftovers := []deck.Card{}
	for _, c := range deck.New() {
		if _, ok := used[c]; !ok {
			leftovers = append(leftovers, c)
		}
	}

	if tb.draw == nil {
		s.DrawPile = leftovers
		s.Pile = top
	} else {
		s.Pile = append(leftovers, top...)
	}

	if err := CheckInvariant(s); err != nil {
		t.Fatal(err)
	}

	return s
}
