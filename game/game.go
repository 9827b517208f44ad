package game

import (
	"fmt"
	"math/rand"

	"github.com/minaorangina/eights/deck"
)

// SeatInfo describes who sits at a seat before the cards are dealt
type SeatInfo struct {
	ID    string
	Name  string
	IsBot bool
}

// DefaultSeats is one human player against three bots
func DefaultSeats() []SeatInfo {
	return []SeatInfo{
		{ID: "p1", Name: "You"},
		{ID: "p2", Name: "Bot West", IsBot: true},
		{ID: "p3", Name: "Bot North", IsBot: true},
		{ID: "p4", Name: "Bot East", IsBot: true},
	}
}

// StartOptions configures a new game
type StartOptions struct {
	Seats []SeatInfo
	// Rand shuffles the deck. Nil means a time-seeded source.
	Rand *rand.Rand
}

// Start shuffles a fresh deck, deals HandSize cards to each seat and turns
// over one card to start the pile. Seat 0 plays first, clockwise.
func Start(opts StartOptions) (State, error) {
	seats := opts.Seats
	if seats == nil {
		seats = DefaultSeats()
	}
	if len(seats) != NumSeats {
		return State{}, fmt.Errorf("%w: got %d", ErrWrongSeatCount, len(seats))
	}

	s := State{
		DrawPile:  deck.Shuffle(deck.New(), opts.Rand),
		Pile:      []deck.Card{},
		Seats:     make([]Seat, NumSeats),
		Direction: Clockwise,
		Winner:    NoWinner,
		Phase:     Playing,
	}

	for i, info := range seats {
		var hand []deck.Card
		hand, s.DrawPile = s.DrawPile.Draw(HandSize)
		s.Seats[i] = Seat{ID: info.ID, Name: info.Name, Hand: hand, IsBot: info.IsBot}
	}

	s.Pile, s.DrawPile = s.DrawPile.Draw(1)
	s.Message = fmt.Sprintf(startMessage, s.Seats[0].Name)

	return s, nil
}

// StartGame deals a new game with the default table of one human and three bots
func StartGame(r *rand.Rand) (State, error) {
	return Start(StartOptions{Rand: r})
}

// IntentKind identifies what a player wants to do
type IntentKind int

const (
	PlayIntent IntentKind = iota + 1
	DrawIntent
	ChooseSuitIntent
	PassIntent
)

var intentNames = map[IntentKind]string{
	PlayIntent:       "play",
	DrawIntent:       "draw",
	ChooseSuitIntent: "choose suit",
	PassIntent:       "pass",
}

func (k IntentKind) String() string {
	return intentNames[k]
}

// Intent is one action submitted by the seat whose turn it is
type Intent struct {
	Kind  IntentKind
	Cards []deck.Card
	Suit  deck.Suit
}

func PlayCards(cards ...deck.Card) Intent { return Intent{Kind: PlayIntent, Cards: cards} }
func DrawCard() Intent                    { return Intent{Kind: DrawIntent} }
func SelectSuit(suit deck.Suit) Intent    { return Intent{Kind: ChooseSuitIntent, Suit: suit} }
func PassTurn() Intent                    { return Intent{Kind: PassIntent} }

// Apply is the only way a game moves forward. On success it returns the next
// state; on rejection it returns s unchanged alongside the reason.
func Apply(s State, in Intent) (State, error) {
	if s.Phase == GameOver {
		return s, fmt.Errorf("%w: the game is over", ErrIllegalPhase)
	}

	switch in.Kind {
	case PlayIntent:
		if s.Phase != Playing {
			return s, fmt.Errorf("%w: choose a suit first", ErrIllegalPhase)
		}
		if err := validatePlay(s, in.Cards); err != nil {
			return s, err
		}
		return resolvePlay(s, in.Cards), nil

	case DrawIntent:
		if s.Phase != Playing {
			return s, fmt.Errorf("%w: choose a suit first", ErrIllegalPhase)
		}
		return resolveDraw(s), nil

	case ChooseSuitIntent:
		if s.Phase != SelectingSuit {
			return s, fmt.Errorf("%w: no suit to choose", ErrIllegalPhase)
		}
		if _, ok := suitSet[in.Suit]; !ok {
			return s, fmt.Errorf("%w: unknown suit %d", ErrUnknownIntent, int(in.Suit))
		}
		return resolveSuit(s, in.Suit), nil

	case PassIntent:
		if s.Phase != Playing {
			return s, fmt.Errorf("%w: choose a suit first", ErrIllegalPhase)
		}
		if !CanPass(s) {
			return s, ErrIllegalPass
		}
		return resolvePass(s), nil
	}

	return s, fmt.Errorf("%w: %d", ErrUnknownIntent, int(in.Kind))
}

// Play plays cards, in order, from the active seat's hand
func Play(s State, cards ...deck.Card) (State, error) {
	return Apply(s, PlayCards(cards...))
}

// Draw draws for the active seat
func Draw(s State) (State, error) {
	return Apply(s, DrawCard())
}

// ChooseSuit declares the suit after an Ace
func ChooseSuit(s State, suit deck.Suit) (State, error) {
	return Apply(s, SelectSuit(suit))
}

// Pass ends the active seat's turn without playing or drawing
func Pass(s State) (State, error) {
	return Apply(s, PassTurn())
}

// CanPass reports whether the active seat may pass: nothing is owed and
// nothing in their hand can be played
func CanPass(s State) bool {
	if s.Phase != Playing || s.PendingPenalty > 0 {
		return false
	}
	return !HasLegalPlay(s)
}

// HasLegalPlay reports whether the active seat holds any playable combo.
// A Queen only counts when the hand also holds a card to cover it.
func HasLegalPlay(s State) bool {
	hand := s.Current().Hand
	for _, i := range legalSingleCards(s, hand) {
		c := hand[i]
		if c.Rank != deck.Queen {
			return true
		}
		for _, other := range hand {
			if other != c && other.Suit == c.Suit {
				return true
			}
		}
	}
	return false
}

var suitSet = map[deck.Suit]struct{}{
	deck.Hearts:   {},
	deck.Diamonds: {},
	deck.Clubs:    {},
	deck.Spades:   {},
}
