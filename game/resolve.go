package game

import (
	"fmt"

	"github.com/minaorangina/eights/deck"
)

// effects are the special-card consequences of a combo, computed before
// anything is applied
type effects struct {
	skips        int
	reverse      bool
	twoPenalty   int
	jackPenalty  int
	cancelsJacks bool
	selectSuit   bool
}

func comboEffects(s State, cards []deck.Card) effects {
	var e effects
	kings := 0

	for _, c := range cards {
		switch c.Rank {
		case deck.King:
			kings++
		case deck.Eight:
			e.skips++
		case deck.Two:
			e.twoPenalty += penaltyTwo
		}
	}
	e.reverse = kings%2 == 1

	// only the run of black Jacks the combo finishes on carries a penalty
	for i := len(cards) - 1; i >= 0 && cards[i].IsBlackJack(); i-- {
		e.jackPenalty += penaltyJack
	}

	// a red Jack opening onto a black Jack counters that Jack's penalty
	if top, ok := s.TopCard(); ok && s.JackPenalty > 0 {
		e.cancelsJacks = top.IsBlackJack() && cards[0].IsRedJack()
	}

	e.selectSuit = cards[len(cards)-1].Rank == deck.Ace

	return e
}

// resolvePlay applies an already validated play by the active seat to a copy of s
func resolvePlay(s State, cards []deck.Card) State {
	next := s.Clone()
	e := comboEffects(s, cards)
	actor := next.ActiveSeat
	seat := &next.Seats[actor]

	seat.Hand = removeCards(seat.Hand, cards)
	next.Pile = append(next.Pile, cards...)
	next.LastTurn = &Turn{Seat: actor, Cards: append([]deck.Card{}, cards...)}

	if len(seat.Hand) == 0 {
		next.Winner = actor
		next.Phase = GameOver
		next.Message = fmt.Sprintf("%s played %s and won the game!", seat.Name, describeCards(cards))
		return next
	}

	if e.cancelsJacks {
		next.PendingPenalty -= next.JackPenalty
		next.JackPenalty = 0
	}
	next.PendingPenalty += e.twoPenalty + e.jackPenalty
	next.JackPenalty += e.jackPenalty

	if e.reverse {
		next.Direction = next.Direction.reverse()
	}

	next.ActiveSuit = deck.NullSuit
	next.Message = fmt.Sprintf("%s played %s.", seat.Name, describeCards(cards))

	if e.selectSuit {
		next.Phase = SelectingSuit
		next.Message += " Waiting for a suit to be chosen."
		return next
	}

	next.ActiveSeat = next.NextSeat(1 + e.skips)

	return next
}

// resolveDraw draws the owed penalty, or one card, for the active seat.
// The discard pile is never reshuffled into the draw pile, so the seat
// receives fewer cards (possibly none) when the draw pile runs short.
func resolveDraw(s State) State {
	next := s.Clone()
	seat := &next.Seats[next.ActiveSeat]

	owed := next.PendingPenalty
	if owed < 1 {
		owed = 1
	}

	drawn, rest := next.DrawPile.Draw(owed)
	next.DrawPile = rest
	seat.Hand = append(seat.Hand, drawn...)

	next.PendingPenalty = 0
	next.JackPenalty = 0
	next.Message = fmt.Sprintf("%s drew %s.", seat.Name, pluralise(len(drawn), "card"))
	next.ActiveSeat = next.NextSeat(1)

	return next
}

func resolveSuit(s State, suit deck.Suit) State {
	next := s.Clone()
	next.ActiveSuit = suit
	next.Phase = Playing
	next.Message = fmt.Sprintf("%s changed the suit to %s.", next.Current().Name, suit)
	next.ActiveSeat = next.NextSeat(1)

	return next
}

func resolvePass(s State) State {
	next := s.Clone()
	next.Message = fmt.Sprintf("%s passed.", next.Current().Name)
	next.ActiveSeat = next.NextSeat(1)

	return next
}
