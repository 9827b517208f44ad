package players

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"sync"

	"github.com/minaorangina/eights/protocol"
)

// TestPlayer records everything sent to it and echoes it to out as JSON lines
type TestPlayer struct {
	id       string
	name     string
	out      io.Writer
	mu       sync.Mutex
	received []protocol.OutboundMessage
	inbox    chan protocol.OutboundMessage
}

func NewTestPlayer(id, name string, out io.Writer) *TestPlayer {
	return &TestPlayer{
		id:    id,
		name:  name,
		out:   out,
		inbox: make(chan protocol.OutboundMessage, 256),
	}
}

func (tp *TestPlayer) ID() string {
	return tp.id
}

func (tp *TestPlayer) Name() string {
	return tp.name
}

func (tp *TestPlayer) Send(msg protocol.OutboundMessage) error {
	tp.mu.Lock()
	tp.received = append(tp.received, msg)
	tp.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	fmt.Fprintf(tp.out, "%s\n", data)

	select {
	case tp.inbox <- msg:
	default:
	}
	return nil
}

// Inbox delivers sent messages in order, for tests that wait on them
func (tp *TestPlayer) Inbox() <-chan protocol.OutboundMessage {
	return tp.inbox
}

// Received returns a copy of every message sent so far
func (tp *TestPlayer) Received() []protocol.OutboundMessage {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	return append([]protocol.OutboundMessage{}, tp.received...)
}

func APlayer(id, name string) *TestPlayer {
	return NewTestPlayer(id, name, ioutil.Discard)
}

func SomePlayers() Players {
	player1 := APlayer(NewID(), "Harry")
	player2 := APlayer(NewID(), "Sally")
	players := NewPlayers(player1, player2)
	return players
}

// TestBuffer is a bytes.Buffer that is safe to write from one goroutine
// while another reads it
type TestBuffer struct {
	buf bytes.Buffer
	m   sync.Mutex
}

func NewTestBuffer() *TestBuffer {
	return &TestBuffer{}
}

func (tb *TestBuffer) Read(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Read(p)
}

func (tb *TestBuffer) Write(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Write(p)
}

func (tb *TestBuffer) String() string {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.String()
}
