package players

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/eights/protocol"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 2048

	sendBufferSize = 16
)

// WSPlayer is a Player connected over a websocket
type WSPlayer struct {
	id       string
	name     string
	conn     *websocket.Conn
	sendCh   chan []byte
	receiver Receiver
	log      logrus.FieldLogger

	done      chan struct{}
	closeOnce sync.Once
}

// NewWSPlayer constructs a WSPlayer and starts pumping messages to and from ws.
// Intents read from ws are forwarded to r.
func NewWSPlayer(id, name string, ws *websocket.Conn, r Receiver, log logrus.FieldLogger) *WSPlayer {
	if log == nil {
		log = logrus.StandardLogger()
	}

	player := &WSPlayer{
		id:       id,
		name:     name,
		conn:     ws,
		sendCh:   make(chan []byte, sendBufferSize),
		receiver: r,
		log:      log.WithField("player_id", id),
		done:     make(chan struct{}),
	}

	go player.writePump()
	go player.readPump()

	return player
}

func (p *WSPlayer) ID() string {
	return p.id
}

func (p *WSPlayer) Name() string {
	return p.name
}

// Send queues msg for the write pump
func (p *WSPlayer) Send(msg protocol.OutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case <-p.done:
		return ErrConnClosed
	default:
	}

	select {
	case p.sendCh <- data:
		return nil
	case <-p.done:
		return ErrConnClosed
	case <-time.After(writeWait):
		return ErrSendTimeout
	}
}

func (p *WSPlayer) close() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.conn.Close()
	})
}

// readPump forwards intents from the connection until it fails.
// The player ID always comes from the connection, never the payload.
func (p *WSPlayer) readPump() {
	defer func() {
		p.close()
		if p.receiver != nil {
			p.receiver.RemovePlayer(p)
		}
	}()

	p.conn.SetReadLimit(maxMessageSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		return p.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				p.log.WithError(err).Warn("websocket closed unexpectedly")
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			p.log.WithError(err).Debug("discarding unreadable message")
			if err := p.Send(protocol.OutboundMessage{
				PlayerID: p.id,
				Command:  protocol.Error,
				Error:    "could not read message: " + err.Error(),
			}); err != nil {
				p.log.WithError(err).Debug("could not reply to unreadable message")
			}
			continue
		}

		msg.PlayerID = p.id
		if p.receiver != nil {
			p.receiver.Receive(msg)
		}
	}
}

func (p *WSPlayer) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		p.close()
	}()

	for {
		select {
		case msg := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))

			w, err := p.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(msg)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-p.done:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			p.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
