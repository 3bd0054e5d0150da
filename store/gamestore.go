// Package store keeps track of the rooms a server is hosting.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nightable/gamenight/engine"
	"github.com/nightable/gamenight/protocol"
)

var (
	ErrUnknownGameID      = errors.New("unknown game ID")
	ErrGameAlreadyStarted = errors.New("game has already started")
)

func errUnknownInactiveGameID(gameID string) error {
	return fmt.Errorf("pending game with id %q does not exist", gameID)
}

// GameStore finds and stores game rooms and their pending players.
type GameStore interface {
	FindGame(gameID string) engine.GameEngine
	FindActiveGame(gameID string) engine.GameEngine
	FindInactiveGame(gameID string) engine.GameEngine
	FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo
	PendingPlayers(gameID string) []protocol.PlayerInfo
	AddInactiveGame(game engine.GameEngine) error
	AddPendingPlayer(gameID, playerID, name string) error
	AddPlayerToGame(gameID string, player engine.Player) error
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu             sync.RWMutex
	games          map[string]engine.GameEngine
	pendingPlayers map[string][]protocol.PlayerInfo
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games:          map[string]engine.GameEngine{},
		pendingPlayers: map[string][]protocol.PlayerInfo{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[gameID]
}

func (s *InMemoryGameStore) FindActiveGame(gameID string) engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[gameID]
	if !ok || game.PlayState() == engine.Idle {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) FindInactiveGame(gameID string) engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[gameID]
	if !ok || game.PlayState() != engine.Idle {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, info := range s.pendingPlayers[gameID] {
		if info.PlayerID == playerID {
			pending := s.pendingPlayers[gameID][i]
			return &pending
		}
	}
	return nil
}

func (s *InMemoryGameStore) AddInactiveGame(game engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID()]; exists {
		return fmt.Errorf("game with id %s already exists", game.ID())
	}

	s.games[game.ID()] = game
	return nil
}

// AddPendingPlayer adds the information from which to construct a
// Player once they connect. If the target game does not exist or has
// started, it will fail.
func (s *InMemoryGameStore) AddPendingPlayer(gameID, playerID, name string) error {
	game := s.FindGame(gameID)
	if game == nil {
		return errUnknownInactiveGameID(gameID)
	}
	if game.PlayState() != engine.Idle {
		return ErrGameAlreadyStarted
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingPlayers[gameID] = append(s.pendingPlayers[gameID], protocol.PlayerInfo{
		PlayerID: playerID,
		Name:     name,
	})

	return nil
}

func (s *InMemoryGameStore) AddPlayerToGame(gameID string, player engine.Player) error {
	game := s.FindInactiveGame(gameID)
	if game == nil {
		return errUnknownInactiveGameID(gameID)
	}

	return game.AddPlayer(player)
}

// PendingPlayers lists everyone who has joined but not yet connected.
func (s *InMemoryGameStore) PendingPlayers(gameID string) []protocol.PlayerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]protocol.PlayerInfo(nil), s.pendingPlayers[gameID]...)
}
