package cli

import (
	"fmt"
	"strings"

	"github.com/minaorangina/eights/deck"
	"github.com/minaorangina/eights/protocol"
	"github.com/pterm/pterm"
)

func cardText(c deck.Card) string {
	if c.Suit.IsRed() {
		return pterm.LightRed(c.Short())
	}
	return c.Short()
}

func cardsText(cards []deck.Card) string {
	texts := make([]string, 0, len(cards))
	for _, c := range cards {
		texts = append(texts, cardText(c))
	}
	return strings.Join(texts, " ")
}

func directionText(direction int) string {
	if direction < 0 {
		return "anticlockwise ↺"
	}
	return "clockwise ↻"
}

func opponentsPanel(msg protocol.OutboundMessage) pterm.Panel {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)

	lines := []string{}
	for _, o := range msg.Opponents {
		name := o.Name
		if msg.CurrentTurn != nil && msg.CurrentTurn.PlayerID == o.PlayerID {
			name = pterm.LightCyan(name + " ◀")
		}
		lines = append(lines, fmt.Sprintf("%s: %d cards", name, o.CardCount))
	}

	return pterm.Panel{Data: box.WithTitle("|PLAYERS|").WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))}
}

func tablePanel(msg protocol.OutboundMessage) pterm.Panel {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)

	top := "-"
	if len(msg.Pile) > 0 {
		top = cardText(msg.Pile[len(msg.Pile)-1])
	}

	text := pterm.Sprintfln("Top card: %s", top)
	text += pterm.Sprintfln("Draw pile: %d", msg.DrawCount)
	text += pterm.Sprintfln("Direction: %s", directionText(msg.Direction))
	if msg.ActiveSuit != nil {
		text += pterm.Sprintfln("Suit: %s %s", msg.ActiveSuit.Symbol(), *msg.ActiveSuit)
	}
	if msg.PendingPenalty > 0 {
		text += pterm.LightYellow(fmt.Sprintf("Penalty: draw %d", msg.PendingPenalty))
	}

	return pterm.Panel{Data: box.WithTitle("|TABLE|").WithTitleTopCenter().Sprint(strings.TrimRight(text, "\n"))}
}

func handPanel(msg protocol.OutboundMessage) pterm.Panel {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4)

	hand := cardsText(msg.Hand)
	if hand == "" {
		hand = "(empty)"
	}

	return pterm.Panel{Data: box.WithTitle(pterm.LightGreen("|YOUR HAND|")).WithTitleTopLeft().Sprint(hand)}
}

func lastTurnText(lt *protocol.LastTurn) string {
	if lt == nil {
		return ""
	}
	return fmt.Sprintf("%s played %s", lt.Player.Name, cardsText(lt.Cards))
}

// Render draws what one player can see of the table
func Render(msg protocol.OutboundMessage) string {
	switch msg.Command {
	case protocol.NewJoiner:
		return pterm.Info.Sprint(msg.Message)
	case protocol.Error:
		if len(msg.Hand) == 0 {
			return pterm.Error.Sprint(msg.Error)
		}
	}

	board, err := pterm.DefaultPanel.WithPanels(pterm.Panels{
		{opponentsPanel(msg), tablePanel(msg)},
		{handPanel(msg)},
	}).Srender()
	if err != nil {
		board = cardsText(msg.Hand)
	}

	lines := []string{board}
	if last := lastTurnText(msg.LastTurn); last != "" {
		lines = append(lines, last)
	}

	switch msg.Command {
	case protocol.Error:
		lines = append(lines, pterm.Error.Sprint(msg.Error))
	case protocol.GameOver:
		if msg.Winner != nil && msg.Winner.PlayerID == msg.PlayerID {
			lines = append(lines, pterm.Success.Sprint("You won!"))
		} else if msg.Winner != nil {
			lines = append(lines, pterm.Info.Sprintf("%s won.", msg.Winner.Name))
		}
	default:
		if msg.Message != "" {
			lines = append(lines, msg.Message)
		}
	}

	return strings.Join(lines, "\n")
}
