package players

import (
	"errors"

	"github.com/minaorangina/eights/protocol"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrConnClosed  = errors.New("connection closed")
	ErrSendTimeout = errors.New("timed out sending to player")
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a connected person in the game.
// Bots are not Players: they have a seat but no connection.
type Player interface {
	ID() string
	Name() string
	Send(msg protocol.OutboundMessage) error
}

// Receiver is whatever a Player forwards its intents to
type Receiver interface {
	Receive(msg protocol.InboundMessage)
	RemovePlayer(p Player)
}

// Players represents all players in the game
type Players []Player

// NewPlayers returns a set of Players
func NewPlayers(p ...Player) Players {
	return Players(p)
}

// AddPlayer adds a player to a set of Players.
// A player that is already present is replaced, which is how a reconnect lands.
func AddPlayer(ps Players, p Player) Players {
	for i, existing := range ps {
		if existing.ID() == p.ID() {
			updated := append(Players{}, ps...)
			updated[i] = p
			return updated
		}
	}
	return append(append(Players{}, ps...), p)
}

// RemovePlayer removes p, if present. Only the same connection is removed,
// so a stale disconnect cannot evict a player that has since reconnected.
func RemovePlayer(ps Players, p Player) Players {
	updated := Players{}
	for _, existing := range ps {
		if existing != p {
			updated = append(updated, existing)
		}
	}
	return updated
}

// Find finds a player by id
func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if got := p.ID(); got == id {
			return p, true
		}
	}
	return nil, false
}

// Info lists who is in the game, in joining order
func (ps Players) Info() []protocol.PlayerInfo {
	info := []protocol.PlayerInfo{}
	for _, p := range ps {
		info = append(info, protocol.PlayerInfo{PlayerID: p.ID(), Name: p.Name()})
	}
	return info
}
