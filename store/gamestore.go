package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/eights/engine"
	"github.com/minaorangina/eights/game"
	"github.com/minaorangina/eights/players"
	"github.com/minaorangina/eights/protocol"
)

var (
	ErrUnknownGameID   = errors.New("unknown game ID")
	ErrUnknownPlayerID = errors.New("unknown player ID")
	ErrDuplicateGameID = errors.New("game ID already in use")
)

type GameStore interface {
	FindGame(gameID string) engine.GameEngine
	FindActiveGame(gameID string) engine.GameEngine
	FindInactiveGame(gameID string) engine.GameEngine
	FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo
	FindPendingPlayers(gameID string) []protocol.PlayerInfo
	AddInactiveGame(engine engine.GameEngine) error
	AddPendingPlayer(gameID, playerID, name string) error
	AddPlayerToGame(gameID string, player players.Player) error
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu             sync.RWMutex
	Games          map[string]engine.GameEngine
	PendingPlayers map[string][]protocol.PlayerInfo
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games:          map[string]engine.GameEngine{},
		PendingPlayers: map[string][]protocol.PlayerInfo{},
	}
}

func (s *InMemoryGameStore) FindGame(ID string) engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.Games[ID]
	if !ok {
		return nil
	}

	return game
}

func (s *InMemoryGameStore) FindActiveGame(ID string) engine.GameEngine {
	game := s.FindGame(ID)
	if game == nil || game.PlayState() == engine.Idle {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) FindInactiveGame(ID string) engine.GameEngine {
	game := s.FindGame(ID)
	if game == nil || game.PlayState() != engine.Idle {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, info := range s.PendingPlayers[gameID] {
		if info.PlayerID == playerID {
			found := info
			return &found
		}
	}

	return nil
}

// FindPendingPlayers lists everyone who has asked to join gameID
func (s *InMemoryGameStore) FindPendingPlayers(gameID string) []protocol.PlayerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]protocol.PlayerInfo{}, s.PendingPlayers[gameID]...)
}

func (s *InMemoryGameStore) AddInactiveGame(game engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[game.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateGameID, game.ID())
	}

	s.Games[game.ID()] = game
	return nil
}

// AddPendingPlayer adds the information from which to construct a Player in the future.
// If the target Game does not exist, or has started, it will fail.
func (s *InMemoryGameStore) AddPendingPlayer(gameID, playerID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ge, ok := s.Games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}

	// a pending player who slips in as the game starts is still refused a
	// seat by the engine in AddPlayerToGame
	if ge.PlayState() != engine.Idle {
		return engine.ErrGameAlreadyStarted
	}

	if len(s.PendingPlayers[gameID]) >= game.NumSeats {
		return engine.ErrGameFull
	}

	s.PendingPlayers[gameID] = append(s.PendingPlayers[gameID], protocol.PlayerInfo{PlayerID: playerID, Name: name})

	return nil
}

// AddPlayerToGame connects a pending player to their game
func (s *InMemoryGameStore) AddPlayerToGame(gameID string, player players.Player) error {
	game := s.FindGame(gameID)
	if game == nil {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}

	if s.FindPendingPlayer(gameID, player.ID()) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownPlayerID, player.ID())
	}

	return game.AddPlayer(player)
}
