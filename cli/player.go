package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/eights/deck"
	"github.com/minaorangina/eights/players"
	"github.com/minaorangina/eights/protocol"
	"github.com/pterm/pterm"
)

var ErrInboxFull = errors.New("terminal is not keeping up")

// Prompter asks the person at the terminal for a line of input
type Prompter interface {
	Prompt(text string) (string, error)
}

// TerminalPrompter prompts with pterm's interactive text input
type TerminalPrompter struct{}

func (TerminalPrompter) Prompt(text string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(text).Show()
}

// ReaderPrompter reads lines from r, for scripts and tests
type ReaderPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewReaderPrompter(r io.Reader, out io.Writer) *ReaderPrompter {
	return &ReaderPrompter{reader: bufio.NewReader(r), out: out}
}

func (p *ReaderPrompter) Prompt(text string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", text)
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Player is a person playing at the terminal
type Player struct {
	id       string
	name     string
	out      io.Writer
	prompter Prompter
	inbox    chan protocol.OutboundMessage
}

func NewPlayer(id, name string, out io.Writer, prompter Prompter) *Player {
	return &Player{
		id:       id,
		name:     name,
		out:      out,
		prompter: prompter,
		inbox:    make(chan protocol.OutboundMessage, 256),
	}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

// Send queues msg for Play. It never blocks the game.
func (p *Player) Send(msg protocol.OutboundMessage) error {
	select {
	case p.inbox <- msg:
		return nil
	default:
		return ErrInboxFull
	}
}

// Play shows each message as it arrives and answers for the player
// whenever the game waits on them. When a game ends the player may deal
// again; Play returns once they decline.
func (p *Player) Play(ctx context.Context, r players.Receiver) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg := <-p.inbox:
			fmt.Fprintln(p.out, Render(msg))

			if msg.Command == protocol.GameOver {
				again, err := p.playAgain()
				if err != nil || !again {
					return err
				}
				r.Receive(protocol.InboundMessage{PlayerID: p.id, Command: protocol.Start})
				continue
			}
			if !msg.ShouldRespond {
				continue
			}

			in, err := p.ask(msg)
			if err != nil {
				return err
			}
			in.PlayerID = p.id
			r.Receive(in)
		}
	}
}

func (p *Player) playAgain() (bool, error) {
	line, err := p.prompter.Prompt("Play again? (y/n)")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *Player) ask(msg protocol.OutboundMessage) (protocol.InboundMessage, error) {
	text := "Your move (help for commands)"
	if msg.Command == protocol.SelectSuit {
		text = "Choose a suit"
	}

	for {
		line, err := p.prompter.Prompt(text)
		if err != nil {
			return protocol.InboundMessage{}, err
		}

		if msg.Command == protocol.SelectSuit {
			if _, err := deck.ParseSuit(line); err == nil {
				line = "suit " + line
			}
		}

		in, err := ParseCommand(line)
		switch {
		case errors.Is(err, ErrQuit):
			return protocol.InboundMessage{}, ErrQuit
		case errors.Is(err, ErrHelp):
			fmt.Fprintln(p.out, helpText)
		case err != nil:
			fmt.Fprintln(p.out, pterm.Error.Sprint(err))
		default:
			return in, nil
		}
	}
}
