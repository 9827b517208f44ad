package game

import (
	"fmt"
	"strings"

	"github.com/minaorangina/eights/deck"
)

func cardSliceToSet(s []deck.Card) map[deck.Card]struct{} {
	set := map[deck.Card]struct{}{}
	for _, key := range s {
		set[key] = struct{}{}
	}
	return set
}

// removeCards returns hand without the given cards, keeping the order of
// what remains
func removeCards(hand, toRemove []deck.Card) []deck.Card {
	remove := cardSliceToSet(toRemove)
	kept := []deck.Card{}
	for _, c := range hand {
		if _, ok := remove[c]; !ok {
			kept = append(kept, c)
		}
	}
	return kept
}

func describeCards(cards []deck.Card) string {
	short := make([]string, 0, len(cards))
	for _, c := range cards {
		short = append(short, c.Short())
	}
	return strings.Join(short, " ")
}

func pluralise(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
