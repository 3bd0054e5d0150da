package engine

import (
	"sync"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"

	"github.com/nightable/gamenight/protocol"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a player in the real world
type Player interface {
	ID() string
	Name() string
	Send(msg protocol.OutboundMessage) error
}

// WSPlayer is a player on the other end of a websocket connection.
type WSPlayer struct {
	id   string
	name string

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWSPlayer constructs a new websocket player
func NewWSPlayer(id, name string, conn *websocket.Conn) *WSPlayer {
	return &WSPlayer{id: id, name: name, conn: conn}
}

func (p *WSPlayer) ID() string {
	return p.id
}

func (p *WSPlayer) Name() string {
	return p.name
}

// Send writes a message to the player's connection. Writes are
// serialised; gorilla connections allow only one concurrent writer.
func (p *WSPlayer) Send(msg protocol.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteJSON(msg)
}
