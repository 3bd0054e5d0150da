// Package engine hosts one game room: it owns the roster of connected
// players, feeds their messages into the active rules reducer and
// publishes per-player snapshots after every action.
package engine

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/nightable/gamenight/chameleon"
	"github.com/nightable/gamenight/protocol"
	"github.com/nightable/gamenight/takesix"
)

// PlayState represents the lifecycle of a room.
// Idle -> no game play (pre game and post game)
// InProgress -> game in progress
type PlayState int

const (
	Idle PlayState = iota
	InProgress
)

func (ps PlayState) String() string {
	switch ps {
	case Idle:
		return "idle"
	case InProgress:
		return "inProgress"
	}
	return ""
}

// Kind selects which rules engine a room runs.
type Kind int

const (
	KindTakeSix Kind = iota
	KindChameleon
)

var kindNames = map[string]Kind{
	"takesix":   KindTakeSix,
	"chameleon": KindChameleon,
}

// KindFromName maps a wire name to a game kind.
func KindFromName(name string) (Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return ""
}

var (
	ErrNilPlayer          = errors.New("player is nil")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrNotCreator         = errors.New("only the game creator can do this")
)

// GameEngine runs a single room.
type GameEngine interface {
	ID() string
	CreatorID() string
	Kind() Kind
	PlayState() PlayState
	Players() []Player
	AddPlayer(Player) error
	Receive(protocol.InboundMessage)
	Listen()
}

// Opts configures a new room.
type Opts struct {
	GameID    string
	CreatorID string
	Kind      Kind
	Rand      *rand.Rand
}

type gameEngine struct {
	id        string
	creatorID string
	kind      Kind
	rng       *rand.Rand

	mu        sync.RWMutex
	playState PlayState
	players   []Player

	inboundCh chan protocol.InboundMessage

	takesix   *takesix.Game
	chameleon *chameleon.Game
}

// New constructs a room for the given game kind.
func New(opts Opts) (*gameEngine, error) {
	if opts.GameID == "" {
		return nil, errors.New("game ID is required")
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &gameEngine{
		id:        opts.GameID,
		creatorID: opts.CreatorID,
		kind:      opts.Kind,
		rng:       opts.Rand,
		inboundCh: make(chan protocol.InboundMessage),
	}, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) CreatorID() string {
	return ge.creatorID
}

func (ge *gameEngine) Kind() Kind {
	return ge.kind
}

func (ge *gameEngine) PlayState() PlayState {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	return ge.playState
}

func (ge *gameEngine) Players() []Player {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	return append([]Player(nil), ge.players...)
}

// AddPlayer registers a player with the room. Joining is closed once
// the game has started.
func (ge *gameEngine) AddPlayer(p Player) error {
	if p == nil {
		return ErrNilPlayer
	}

	ge.mu.Lock()
	if ge.playState != Idle {
		ge.mu.Unlock()
		return ErrGameAlreadyStarted
	}
	ge.players = append(ge.players, p)
	players := append([]Player(nil), ge.players...)
	ge.mu.Unlock()

	joiner := protocol.Player{PlayerID: p.ID(), Name: p.Name()}
	for _, other := range players {
		if other.ID() == p.ID() {
			continue
		}
		ge.send(other, protocol.OutboundMessage{
			PlayerID: other.ID(),
			Command:  protocol.NewJoiner,
			Joiner:   joiner,
		})
	}

	return nil
}

// Receive hands a player message to the engine loop.
func (ge *gameEngine) Receive(msg protocol.InboundMessage) {
	ge.inboundCh <- msg
}

// Listen runs the room's event loop. Messages are applied one at a
// time, so the reducers never see concurrent actions.
func (ge *gameEngine) Listen() {
	for msg := range ge.inboundCh {
		ge.handleMessage(msg)
	}
}

func (ge *gameEngine) handleMessage(msg protocol.InboundMessage) {
	switch msg.Command {
	case protocol.Start:
		if err := ge.start(msg.PlayerID); err != nil {
			ge.sendError(msg.PlayerID, err)
		}
		return
	case protocol.Reset:
		ge.reset()
		return
	}

	switch ge.kind {
	case KindTakeSix:
		ge.applyTakeSix(msg)
	case KindChameleon:
		ge.applyChameleon(msg)
	}
}

func (ge *gameEngine) start(playerID string) error {
	if playerID != ge.creatorID {
		return ErrNotCreator
	}

	ge.mu.Lock()
	if ge.playState != Idle {
		ge.mu.Unlock()
		return ErrGameAlreadyStarted
	}
	roster := ge.rosterLocked()
	ge.mu.Unlock()

	switch ge.kind {
	case KindTakeSix:
		game, err := takesix.NewGame(roster, ge.rng)
		if err != nil {
			return err
		}
		ge.takesix = &game

	case KindChameleon:
		game, err := chameleon.NewGame(roster, ge.rng)
		if err != nil {
			return err
		}
		game = chameleon.Reduce(game, chameleon.Start{})
		ge.chameleon = &game
	}

	ge.mu.Lock()
	ge.playState = InProgress
	ge.mu.Unlock()

	ge.broadcast(protocol.HasStarted)
	return nil
}

func (ge *gameEngine) reset() {
	switch ge.kind {
	case KindTakeSix:
		if ge.takesix != nil {
			next := takesix.Reduce(*ge.takesix, takesix.Reset{})
			ge.takesix = &next
		}
	case KindChameleon:
		if ge.chameleon != nil {
			next := chameleon.Reduce(*ge.chameleon, chameleon.Reset{})
			ge.chameleon = &next
		}
	}

	ge.mu.Lock()
	ge.playState = Idle
	ge.mu.Unlock()

	ge.broadcast(protocol.GameState)
}

func (ge *gameEngine) applyTakeSix(msg protocol.InboundMessage) {
	if ge.takesix == nil {
		return
	}

	var action takesix.Action
	switch msg.Command {
	case protocol.SelectCard:
		action = takesix.SelectCard{PlayerID: msg.PlayerID, Number: msg.Number}
	case protocol.NextPhase:
		action = takesix.NextPhase{}
	case protocol.ChooseLine:
		action = takesix.ChooseLine{LineID: msg.LineID}
	default:
		return
	}

	next := takesix.Reduce(*ge.takesix, action)
	ge.takesix = &next
	ge.broadcast(protocol.GameState)
}

func (ge *gameEngine) applyChameleon(msg protocol.InboundMessage) {
	if ge.chameleon == nil {
		return
	}

	var action chameleon.Action
	switch msg.Command {
	case protocol.RevealNext:
		action = chameleon.RevealNext{}
	case protocol.BeginVote:
		action = chameleon.BeginVote{}
	case protocol.SelectElimination:
		action = chameleon.SelectElimination{PlayerID: msg.TargetID}
	case protocol.ConfirmElimination:
		action = chameleon.ConfirmElimination{}
	case protocol.SubmitGuess:
		action = chameleon.SubmitGuess{Text: msg.Text}
	case protocol.Proceed:
		action = chameleon.ProceedAfterResults{}
	default:
		return
	}

	next := chameleon.Reduce(*ge.chameleon, action)
	ge.chameleon = &next
	ge.broadcast(protocol.GameState)
}

// broadcast sends each player their own view of the current state.
func (ge *gameEngine) broadcast(cmd protocol.Cmd) {
	for _, p := range ge.Players() {
		msg := protocol.OutboundMessage{PlayerID: p.ID(), Command: cmd}

		switch ge.kind {
		case KindTakeSix:
			if ge.takesix != nil {
				msg.State = ge.takesix.ViewFor(p.ID())
			}
		case KindChameleon:
			if ge.chameleon != nil {
				msg.State = ge.chameleon.ViewFor(p.ID())
			}
		}

		ge.send(p, msg)
	}
}

func (ge *gameEngine) send(p Player, msg protocol.OutboundMessage) {
	if err := p.Send(msg); err != nil {
		log.Printf("engine %s: send to %s failed: %s", ge.id, p.ID(), err)
	}
}

func (ge *gameEngine) sendError(playerID string, err error) {
	for _, p := range ge.Players() {
		if p.ID() != playerID {
			continue
		}
		ge.send(p, protocol.OutboundMessage{
			PlayerID: playerID,
			Command:  protocol.Error,
			Error:    err.Error(),
		})
	}
}

// rosterLocked snapshots the connected players as roster entries.
// Callers must hold mu.
func (ge *gameEngine) rosterLocked() []protocol.Player {
	roster := make([]protocol.Player, 0, len(ge.players))
	for _, p := range ge.players {
		roster = append(roster, protocol.Player{PlayerID: p.ID(), Name: p.Name()})
	}
	return roster
}
