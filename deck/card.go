package deck

import (
	"fmt"
	"strings"
)

// Rank represents a rank in a deck of cards.
// Its value doubles as the card's position in a sequence (Ace low).
type Rank int

const (
	NullRank Rank = iota
	Ace
	Two
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
)

var rankNames = map[Rank]string{
	Ace:   "Ace",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

var rankCodes = map[Rank]string{
	Ace:   "A",
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

// Ranks lists every rank from Ace to King
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Value returns the rank's position in a sequence, from 1 (Ace) to 13 (King)
func (r Rank) Value() int {
	return int(r)
}

func (r Rank) String() string {
	return rankNames[r]
}

// Code returns the short form of the rank, e.g. "A", "10", "Q"
func (r Rank) Code() string {
	return rankCodes[r]
}

func (r Rank) MarshalText() ([]byte, error) {
	code, ok := rankCodes[r]
	if !ok {
		return nil, fmt.Errorf("unknown rank %d", int(r))
	}
	return []byte(code), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	rank, err := parseRank(string(text))
	if err != nil {
		return err
	}
	*r = rank
	return nil
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	NullSuit Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

var suitNames = map[Suit]string{
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Clubs:    "clubs",
	Spades:   "spades",
}

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
}

// Suits lists every suit in a fixed order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	return suitNames[s]
}

// Symbol returns the suit's glyph, e.g. ♠
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// IsRed reports whether the suit is hearts or diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// IsBlack reports whether the suit is clubs or spades
func (s Suit) IsBlack() bool {
	return s == Clubs || s == Spades
}

func (s Suit) MarshalText() ([]byte, error) {
	if s == NullSuit {
		return []byte{}, nil
	}
	name, ok := suitNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown suit %d", int(s))
	}
	return []byte(name), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = NullSuit
		return nil
	}
	suit, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = suit
	return nil
}

// ParseSuit accepts a suit name, its initial or its symbol
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hearts", "heart", "h", "♥":
		return Hearts, nil
	case "diamonds", "diamond", "d", "♦":
		return Diamonds, nil
	case "clubs", "club", "c", "♣":
		return Clubs, nil
	case "spades", "spade", "s", "♠":
		return Spades, nil
	}
	return NullSuit, fmt.Errorf("unknown suit %q", s)
}

// Card represents a playing card. Cards are values: two cards are the same
// card when rank and suit match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	suit := c.Suit.String()
	if suit == "" {
		return c.Rank.String()
	}
	return fmt.Sprintf("%s of %s", c.Rank, strings.ToUpper(suit[:1])+suit[1:])
}

// Short returns the compact form of the card, e.g. "Q♠"
func (c Card) Short() string {
	return c.Rank.Code() + c.Suit.Symbol()
}

// IsBlackJack reports whether the card is the Jack of Spades or Clubs
func (c Card) IsBlackJack() bool {
	return c.Rank == Jack && c.Suit.IsBlack()
}

// IsRedJack reports whether the card is the Jack of Hearts or Diamonds
func (c Card) IsRedJack() bool {
	return c.Rank == Jack && c.Suit.IsRed()
}
