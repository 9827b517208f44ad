package game

import (
	"fmt"

	"github.com/minaorangina/eights/deck"
	"github.com/minaorangina/eights/protocol"
)

func seatPlayer(s State, idx int) *protocol.Player {
	seat := s.Seats[idx]
	return &protocol.Player{
		PlayerID: seat.ID,
		Name:     seat.Name,
		Seat:     idx,
		IsBot:    seat.IsBot,
	}
}

func buildBaseMessage(s State, idx int) protocol.OutboundMessage {
	msg := protocol.OutboundMessage{
		PlayerID:       s.Seats[idx].ID,
		Message:        s.Message,
		Seat:           idx,
		Hand:           append([]deck.Card{}, s.Seats[idx].Hand...),
		Pile:           append([]deck.Card{}, s.Pile...),
		DrawCount:      len(s.DrawPile),
		CurrentTurn:    seatPlayer(s, s.ActiveSeat),
		Direction:      int(s.Direction),
		PendingPenalty: s.PendingPenalty,
		Phase:          s.Phase.String(),
		Opponents:      buildOpponents(s, idx),
	}

	if s.ActiveSuit != deck.NullSuit {
		suit := s.ActiveSuit
		msg.ActiveSuit = &suit
	}

	if s.LastTurn != nil {
		msg.LastTurn = &protocol.LastTurn{
			Player: *seatPlayer(s, s.LastTurn.Seat),
			Cards:  append([]deck.Card{}, s.LastTurn.Cards...),
		}
	}

	return msg
}

// buildOpponents lists every other seat with the size of their hand only
func buildOpponents(s State, idx int) []protocol.Opponent {
	opponents := []protocol.Opponent{}

	for i := range s.Seats {
		if i == idx {
			continue
		}
		opponents = append(opponents, protocol.Opponent{
			Player:    *seatPlayer(s, i),
			CardCount: len(s.Seats[i].Hand),
		})
	}

	return opponents
}

// BuildSeatMessage builds what seat idx is allowed to see of s
func BuildSeatMessage(s State, idx int) protocol.OutboundMessage {
	msg := buildBaseMessage(s, idx)
	isActive := idx == s.ActiveSeat

	switch s.Phase {
	case GameOver:
		msg.Command = protocol.GameOver
		msg.CurrentTurn = nil
		if s.HasWinner() {
			msg.Winner = seatPlayer(s, s.Winner)
		}

	case SelectingSuit:
		msg.Command = protocol.SelectSuit
		msg.ShouldRespond = isActive
		if isActive {
			msg.Message = "Choose a suit."
		}

	default:
		msg.Command = protocol.Turn
		msg.ShouldRespond = isActive
		if isActive {
			msg.Message = yourTurnMessage(s)
		}
	}

	return msg
}

// BuildMessages builds one message per seat
func BuildMessages(s State) []protocol.OutboundMessage {
	msgs := make([]protocol.OutboundMessage, 0, len(s.Seats))
	for i := range s.Seats {
		msgs = append(msgs, BuildSeatMessage(s, i))
	}
	return msgs
}

// BuildErrorMessage tells seat idx why their intent was rejected
func BuildErrorMessage(s State, idx int, err error) protocol.OutboundMessage {
	msg := buildBaseMessage(s, idx)
	msg.Command = protocol.Error
	msg.Error = err.Error()
	msg.ShouldRespond = idx == s.ActiveSeat && s.Phase != GameOver
	return msg
}

func yourTurnMessage(s State) string {
	text := "It's your turn!"
	if s.Message != "" {
		text = s.Message + " " + text
	}
	if s.PendingPenalty > 0 {
		text += fmt.Sprintf(" Counter it or draw %d.", s.PendingPenalty)
	}
	if s.ActiveSuit != deck.NullSuit {
		text += fmt.Sprintf(" The suit is %s.", s.ActiveSuit)
	}
	return text
}
