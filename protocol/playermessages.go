package protocol

import (
	"github.com/minaorangina/eights/deck"
)

type Player struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
	Seat     int    `json:"seat"`
	IsBot    bool   `json:"isBot"`
}

// PlayerInfo is what is known about a player before they connect
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// InboundMessage is a message from Player to GameEngine
type InboundMessage struct {
	PlayerID string      `json:"playerID"`
	Command  Cmd         `json:"command"`
	Cards    []deck.Card `json:"cards,omitempty"`
	Suit     deck.Suit   `json:"suit,omitempty"`
}

// OutboundMessage is a message from GameEngine to Player.
// Hand only ever holds the recipient's own cards.
type OutboundMessage struct {
	PlayerID       string      `json:"playerID"`
	Command        Cmd         `json:"command"`
	Message        string      `json:"message"`
	Seat           int         `json:"seat"`
	Hand           []deck.Card `json:"hand"`
	Pile           []deck.Card `json:"pile"`
	DrawCount      int         `json:"drawCount"`
	ShouldRespond  bool        `json:"shouldRespond"`
	Joiner         *Player     `json:"joiner,omitempty"`
	CurrentTurn    *Player     `json:"currentTurn,omitempty"`
	Direction      int         `json:"direction"`
	PendingPenalty int         `json:"pendingPenalty"`
	ActiveSuit     *deck.Suit  `json:"activeSuit,omitempty"`
	Phase          string      `json:"phase"`
	Opponents      []Opponent  `json:"opponents,omitempty"`
	Winner         *Player     `json:"winner,omitempty"`
	LastTurn       *LastTurn   `json:"lastTurn,omitempty"`
	Error          string      `json:"error,omitempty"`
}

// Opponent is a representation of an opponent player.
// Only the size of an opponent's hand is shared.
type Opponent struct {
	Player
	CardCount int `json:"cardCount"`
}

// LastTurn describes the most recent play
type LastTurn struct {
	Player Player      `json:"player"`
	Cards  []deck.Card `json:"cards"`
}
