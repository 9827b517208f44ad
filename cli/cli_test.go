package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/minaorangina/eights/deck"
	utils "github.com/minaorangina/eights/internal"
	"github.com/minaorangina/eights/players"
	"github.com/minaorangina/eights/protocol"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliTestTimeout = 2 * time.Second

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func TestParseCommand(t *testing.T) {
	tt := []struct {
		line string
		want protocol.InboundMessage
	}{
		{"play 7h 8h", protocol.InboundMessage{Command: protocol.Play, Cards: deck.MustParseCards("7h 8h")}},
		{"P 10S", protocol.InboundMessage{Command: protocol.Play, Cards: deck.MustParseCards("10s")}},
		{"play q♠ 3♠", protocol.InboundMessage{Command: protocol.Play, Cards: deck.MustParseCards("Qs 3s")}},
		{"draw", protocol.InboundMessage{Command: protocol.Draw}},
		{" d ", protocol.InboundMessage{Command: protocol.Draw}},
		{"pass", protocol.InboundMessage{Command: protocol.Pass}},
		{"suit hearts", protocol.InboundMessage{Command: protocol.ChooseSuit, Suit: deck.Hearts}},
		{"s c", protocol.InboundMessage{Command: protocol.ChooseSuit, Suit: deck.Clubs}},
	}

	for _, tc := range tt {
		t.Run(tc.line, func(t *testing.T) {
			got, err := ParseCommand(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	errorCases := []struct {
		line string
		want error
	}{
		{"", ErrUnknownCommand},
		{"dance", ErrUnknownCommand},
		{"play", ErrNoCards},
		{"suit", ErrNoSuit},
		{"help", ErrHelp},
		{"quit", ErrQuit},
	}

	for _, tc := range errorCases {
		t.Run("error "+tc.line, func(t *testing.T) {
			_, err := ParseCommand(tc.line)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	t.Run("bad cards", func(t *testing.T) {
		_, err := ParseCommand("play 7x")
		utils.AssertErrored(t, err)
	})
}

func seatView() protocol.OutboundMessage {
	clubs := deck.Clubs
	return protocol.OutboundMessage{
		PlayerID:       "p1",
		Command:        protocol.Turn,
		Message:        "Bot East played 2♣. It's your turn! Counter it or draw 2.",
		Hand:           deck.MustParseCards("7h 2d Qs"),
		Pile:           deck.MustParseCards("5c 2c"),
		DrawCount:      23,
		ShouldRespond:  true,
		CurrentTurn:    &protocol.Player{PlayerID: "p1", Name: "You"},
		Direction:      -1,
		PendingPenalty: 2,
		ActiveSuit:     &clubs,
		Phase:          "playing",
		Opponents: []protocol.Opponent{
			{Player: protocol.Player{PlayerID: "p2", Name: "Bot West", Seat: 1, IsBot: true}, CardCount: 7},
			{Player: protocol.Player{PlayerID: "p3", Name: "Bot North", Seat: 2, IsBot: true}, CardCount: 4},
		},
		LastTurn: &protocol.LastTurn{
			Player: protocol.Player{PlayerID: "p4", Name: "Bot East", Seat: 3, IsBot: true},
			Cards:  deck.MustParseCards("2c"),
		},
	}
}

func TestRender(t *testing.T) {
	t.Run("shows the table from one seat", func(t *testing.T) {
		out := Render(seatView())

		for _, want := range []string{
			"7♥ 2♦ Q♠",
			"Top card: 2♣",
			"Draw pile: 23",
			"anticlockwise",
			"Suit: ♣ clubs",
			"Penalty: draw 2",
			"Bot West: 7 cards",
			"Bot North: 4 cards",
			"Bot East played 2♣",
			"Counter it or draw 2.",
		} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("shows errors", func(t *testing.T) {
		msg := seatView()
		msg.Command = protocol.Error
		msg.Error = "invalid combo"

		assert.Contains(t, Render(msg), "invalid combo")
		assert.Contains(t, Render(protocol.OutboundMessage{Command: protocol.Error, Error: "game is full"}), "game is full")
	})

	t.Run("announces the winner", func(t *testing.T) {
		msg := seatView()
		msg.Command = protocol.GameOver
		msg.Winner = &protocol.Player{PlayerID: "p3", Name: "Bot North"}
		assert.Contains(t, Render(msg), "Bot North won.")

		msg.Winner = &protocol.Player{PlayerID: "p1", Name: "You"}
		assert.Contains(t, Render(msg), "You won!")
	})

	t.Run("shows joiners", func(t *testing.T) {
		msg := protocol.OutboundMessage{Command: protocol.NewJoiner, Message: "Ada has joined the game!"}
		assert.Contains(t, Render(msg), "Ada has joined the game!")
	})
}

type spyReceiver struct {
	received chan protocol.InboundMessage
}

func newSpyReceiver() *spyReceiver {
	return &spyReceiver{received: make(chan protocol.InboundMessage, 8)}
}

func (r *spyReceiver) Receive(msg protocol.InboundMessage) {
	r.received <- msg
}

func (r *spyReceiver) RemovePlayer(p players.Player) {}

func playScript(t *testing.T, script string, msgs ...protocol.OutboundMessage) (*spyReceiver, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	p := NewPlayer("p1", "You", out, NewReaderPrompter(strings.NewReader(script), out))
	for _, msg := range msgs {
		require.NoError(t, p.Send(msg))
	}

	r := newSpyReceiver()
	ctx, cancel := context.WithTimeout(context.Background(), cliTestTimeout)
	defer cancel()

	err := p.Play(ctx, r)
	return r, out.String(), err
}

func TestPlayer(t *testing.T) {
	gameOver := protocol.OutboundMessage{PlayerID: "p1", Command: protocol.GameOver, Winner: &protocol.Player{PlayerID: "p2", Name: "Bot West"}}

	t.Run("answers when the game waits on it", func(t *testing.T) {
		r, _, err := playScript(t, "play 2d\nn\n", seatView(), gameOver)
		require.NoError(t, err)

		msg := <-r.received
		utils.AssertEqual(t, msg.PlayerID, "p1")
		utils.AssertEqual(t, msg.Command, protocol.Play)
		utils.AssertDeepEqual(t, msg.Cards, deck.MustParseCards("2d"))
	})

	t.Run("asks again after help or a typo", func(t *testing.T) {
		r, out, err := playScript(t, "help\ndance\ndraw\nn\n", seatView(), gameOver)
		require.NoError(t, err)

		msg := <-r.received
		utils.AssertEqual(t, msg.Command, protocol.Draw)
		assert.Contains(t, out, "Commands:")
		assert.Contains(t, out, "unknown command")
	})

	t.Run("chooses a suit by name alone", func(t *testing.T) {
		msg := seatView()
		msg.Command = protocol.SelectSuit

		r, _, err := playScript(t, "spades\nno\n", msg, gameOver)
		require.NoError(t, err)

		got := <-r.received
		utils.AssertEqual(t, got.Command, protocol.ChooseSuit)
		utils.AssertEqual(t, got.Suit, deck.Spades)
	})

	t.Run("only answers when asked", func(t *testing.T) {
		msg := seatView()
		msg.ShouldRespond = false

		r, _, err := playScript(t, "n\n", msg, gameOver)
		require.NoError(t, err)
		utils.AssertEqual(t, len(r.received), 0)
	})

	t.Run("deals again when the player wants another game", func(t *testing.T) {
		r, out, err := playScript(t, "y\nn\n", gameOver, gameOver)
		require.NoError(t, err)

		utils.AssertEqual(t, len(r.received), 1)
		msg := <-r.received
		utils.AssertEqual(t, msg.Command, protocol.Start)
		utils.AssertEqual(t, msg.PlayerID, "p1")
		utils.AssertEqual(t, strings.Count(out, "Play again?"), 2)
	})

	t.Run("stops when the player quits", func(t *testing.T) {
		_, _, err := playScript(t, "quit\n", seatView())
		utils.AssertTrue(t, errors.Is(err, ErrQuit))
	})

	t.Run("stops when input runs out", func(t *testing.T) {
		_, _, err := playScript(t, "", seatView())
		utils.AssertTrue(t, errors.Is(err, io.EOF))
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		_, _, err := playScript(t, "")
		utils.AssertTrue(t, errors.Is(err, context.DeadlineExceeded))
	})
}
