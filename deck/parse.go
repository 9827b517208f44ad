package deck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "1", "ACE":
		return Ace, nil
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "T":
		return Ten, nil
	case "J", "JACK":
		return Jack, nil
	case "Q", "QUEEN":
		return Queen, nil
	case "K", "KING":
		return King, nil
	}
	return NullRank, fmt.Errorf("unknown rank %q", s)
}

// ParseCard reads the short form of a card: a rank code followed by a suit
// initial or symbol, e.g. "10h", "QS" or "A♠"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	last, size := utf8.DecodeLastRuneInString(s)
	if last == utf8.RuneError || size >= len(s) {
		return Card{}, fmt.Errorf("could not read card %q", s)
	}

	suit, err := ParseSuit(string(last))
	if err != nil {
		return Card{}, fmt.Errorf("could not read card %q: %w", s, err)
	}

	rank, err := parseRank(s[:len(s)-size])
	if err != nil {
		return Card{}, fmt.Errorf("could not read card %q: %w", s, err)
	}

	return NewCard(rank, suit), nil
}

// MustParseCards parses a space separated list of cards and panics on failure.
// Intended for tests and fixtures.
func MustParseCards(s string) []Card {
	cards := []Card{}
	for _, f := range strings.Fields(s) {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}
