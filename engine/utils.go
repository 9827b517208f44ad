package engine

import (
	"fmt"

	"github.com/minaorangina/eights/game"
	"github.com/minaorangina/eights/players"
	"github.com/minaorangina/eights/protocol"
)

// seatsFor seats the players in joining order and fills the rest of the
// table with bots
func seatsFor(ps players.Players) []game.SeatInfo {
	seats := game.DefaultSeats()
	for i, p := range ps {
		if i >= len(seats) {
			break
		}
		seats[i] = game.SeatInfo{ID: p.ID(), Name: p.Name()}
	}
	return seats
}

func seatsOf(s game.State) []game.SeatInfo {
	seats := make([]game.SeatInfo, 0, len(s.Seats))
	for _, seat := range s.Seats {
		seats = append(seats, game.SeatInfo{ID: seat.ID, Name: seat.Name, IsBot: seat.IsBot})
	}
	return seats
}

func intentFromMessage(msg protocol.InboundMessage) (game.Intent, error) {
	switch msg.Command {
	case protocol.Play:
		return game.PlayCards(msg.Cards...), nil
	case protocol.Draw:
		return game.DrawCard(), nil
	case protocol.ChooseSuit:
		return game.SelectSuit(msg.Suit), nil
	case protocol.Pass:
		return game.PassTurn(), nil
	}
	return game.Intent{}, fmt.Errorf("%w: %s", game.ErrUnknownIntent, msg.Command)
}

func buildNewJoinerMessage(joiner, recipient players.Player) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		PlayerID: recipient.ID(),
		Command:  protocol.NewJoiner,
		Message:  fmt.Sprintf("%s has joined the game!", joiner.Name()),
		Joiner: &protocol.Player{
			PlayerID: joiner.ID(),
			Name:     joiner.Name(),
		},
	}
}

// buildErrorMessage is for players who have no seat view yet
func buildErrorMessage(recipient players.Player, err error) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		PlayerID: recipient.ID(),
		Command:  protocol.Error,
		Error:    err.Error(),
	}
}
