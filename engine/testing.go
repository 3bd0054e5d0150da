package engine

import (
	"sync"

	"github.com/nightable/gamenight/protocol"
)

// TestPlayer records everything sent to it. Test use only.
type TestPlayer struct {
	id   string
	name string

	mu       sync.Mutex
	messages []protocol.OutboundMessage
}

// NewTestPlayer constructs a TestPlayer
func NewTestPlayer(id, name string) *TestPlayer {
	return &TestPlayer{id: id, name: name}
}

func (p *TestPlayer) ID() string {
	return p.id
}

func (p *TestPlayer) Name() string {
	return p.name
}

func (p *TestPlayer) Send(msg protocol.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

// Messages returns a copy of everything sent to the player so far.
func (p *TestPlayer) Messages() []protocol.OutboundMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]protocol.OutboundMessage(nil), p.messages...)
}
