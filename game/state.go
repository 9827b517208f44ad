package game

import (
	"github.com/minaorangina/eights/deck"
)

const (
	NumSeats     = 4
	HandSize     = 7
	NoWinner     = -1
	penaltyTwo   = 2
	penaltyJack  = 7
	startMessage = "Game started! %s to play."
)

// Phase represents where the game is in a turn
type Phase int

const (
	Playing Phase = iota
	SelectingSuit
	GameOver
)

var phaseNames = map[Phase]string{
	Playing:       "playing",
	SelectingSuit: "selecting_suit",
	GameOver:      "game_over",
}

func (p Phase) String() string {
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Direction is the order of play: Clockwise (+1) or Anticlockwise (-1)
type Direction int

const (
	Clockwise     Direction = 1
	Anticlockwise Direction = -1
)

func (d Direction) reverse() Direction {
	if d == Anticlockwise {
		return Clockwise
	}
	return Anticlockwise
}

// Seat is one of the four fixed positions at the table
type Seat struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Hand  []deck.Card `json:"hand"`
	IsBot bool        `json:"isBot"`
}

// Turn records a play, for display
type Turn struct {
	Seat  int         `json:"seat"`
	Cards []deck.Card `json:"cards"`
}

// State is a snapshot of a game. Transitions never modify a State;
// they return a new one.
type State struct {
	DrawPile   deck.Deck   `json:"drawPile"`
	Pile       []deck.Card `json:"pile"`
	Seats      []Seat      `json:"seats"`
	ActiveSeat int         `json:"activeSeat"`
	Direction  Direction   `json:"direction"`
	// PendingPenalty is the number of cards the next actor must draw unless they counter
	PendingPenalty int `json:"pendingPenalty"`
	// JackPenalty is the part of PendingPenalty that came from black Jacks
	JackPenalty int       `json:"jackPenalty"`
	ActiveSuit  deck.Suit `json:"activeSuit"`
	Winner      int       `json:"winner"`
	Phase       Phase     `json:"phase"`
	Message     string    `json:"message"`
	LastTurn    *Turn     `json:"lastTurn,omitempty"`
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	c := s

	c.DrawPile = append(deck.Deck{}, s.DrawPile...)
	c.Pile = append([]deck.Card{}, s.Pile...)

	c.Seats = make([]Seat, len(s.Seats))
	for i, seat := range s.Seats {
		seat.Hand = append([]deck.Card{}, seat.Hand...)
		c.Seats[i] = seat
	}

	if s.LastTurn != nil {
		lt := Turn{Seat: s.LastTurn.Seat, Cards: append([]deck.Card{}, s.LastTurn.Cards...)}
		c.LastTurn = &lt
	}

	return c
}

// TopCard returns the card on top of the discard pile
func (s State) TopCard() (deck.Card, bool) {
	if len(s.Pile) == 0 {
		return deck.Card{}, false
	}
	return s.Pile[len(s.Pile)-1], true
}

// Current returns the seat whose turn it is
func (s State) Current() Seat {
	return s.Seats[s.ActiveSeat]
}

// HasWinner reports whether the game has been won
func (s State) HasWinner() bool {
	return s.Winner != NoWinner
}

// NextSeat returns the seat steps places away from the active seat
// in the current direction, wrapping either way
func (s State) NextSeat(steps int) int {
	n := len(s.Seats)
	if n == 0 {
		return 0
	}
	return ((s.ActiveSeat+steps*int(s.Direction))%n + n) % n
}

// SeatByID returns the index of the seat with the given id
func (s State) SeatByID(id string) (int, bool) {
	for i, seat := range s.Seats {
		if seat.ID == id {
			return i, true
		}
	}
	return 0, false
}
