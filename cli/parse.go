package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minaorangina/eights/deck"
	"github.com/minaorangina/eights/protocol"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoCards        = errors.New("say which cards to play")
	ErrNoSuit         = errors.New("say which suit")
	ErrHelp           = errors.New("help requested")
	ErrQuit           = errors.New("quit")
)

const helpText = `Commands:
  play 7h 8h   play cards in order (p for short)
  draw         draw from the pile (d)
  pass         pass when nothing can be played
  suit hearts  choose a suit after an Ace (s h)
  help         show this again
  quit         leave the game`

// ParseCommand reads a line typed by the player into an intent
func ParseCommand(line string) (protocol.InboundMessage, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return protocol.InboundMessage{}, ErrUnknownCommand
	}

	verb, args := fields[0], fields[1:]

	switch verb {
	case "play", "p":
		if len(args) == 0 {
			return protocol.InboundMessage{}, ErrNoCards
		}
		cards := make([]deck.Card, 0, len(args))
		for _, arg := range args {
			card, err := deck.ParseCard(arg)
			if err != nil {
				return protocol.InboundMessage{}, err
			}
			cards = append(cards, card)
		}
		return protocol.InboundMessage{Command: protocol.Play, Cards: cards}, nil

	case "draw", "d":
		return protocol.InboundMessage{Command: protocol.Draw}, nil

	case "pass":
		return protocol.InboundMessage{Command: protocol.Pass}, nil

	case "suit", "s":
		if len(args) != 1 {
			return protocol.InboundMessage{}, ErrNoSuit
		}
		suit, err := deck.ParseSuit(args[0])
		if err != nil {
			return protocol.InboundMessage{}, err
		}
		return protocol.InboundMessage{Command: protocol.ChooseSuit, Suit: suit}, nil

	case "help", "h", "?":
		return protocol.InboundMessage{}, ErrHelp

	case "quit", "q", "exit":
		return protocol.InboundMessage{}, ErrQuit
	}

	return protocol.InboundMessage{}, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
}
