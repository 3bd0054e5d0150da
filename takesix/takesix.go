// Package takesix implements the rules engine for Stampede, the
// 104-card game in which the sixth card on a line collects it.
//
// The engine is a pure reducer: every external input is an Action, and
// Reduce applies it to an immutable Game snapshot, returning the next
// snapshot. Invalid actions leave the state unchanged rather than
// erroring; the action set is closed and locally trusted.
package takesix

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/nightable/gamenight/deck"
	"github.com/nightable/gamenight/protocol"
)

const (
	minPlayers = 2
	maxPlayers = 10
	handSize   = 10
	numLines   = 4
	maxLineLen = 5
	maxTurns   = 10
	bustScore  = 66
)

var (
	ErrTooFewPlayers  = errors.New("minimum of 2 players required")
	ErrTooManyPlayers = errors.New("maximum of 10 players allowed")
)

// Line is one of the four ascending card rows on the board.
type Line struct {
	ID    int         `json:"id"`
	Cards []deck.Card `json:"cards"`
}

// LastCard returns the highest (last) card on the line. Lines always
// hold at least one card.
func (l Line) LastCard() deck.Card {
	return l.Cards[len(l.Cards)-1]
}

// Player is a roster player together with their in-game card state.
type Player struct {
	protocol.Player
	Hand         []deck.Card `json:"hand"`
	SelectedCard *deck.Card  `json:"selectedCard"`
	Score        int         `json:"score"`
	Collected    []deck.Card `json:"collected"`
}

// PlayedCard is a card committed by a player for the current turn. It
// only exists within one turn's reveal-to-placement window.
type PlayedCard struct {
	PlayerID string    `json:"playerID"`
	Card     deck.Card `json:"card"`
	Placed   bool      `json:"placed"`
}

// Game is a full snapshot of a Stampede game. Consumers must treat it
// as read-only and route all changes through Reduce.
type Game struct {
	Players  []Player     `json:"players"`
	Lines    []Line       `json:"lines"`
	Deck     deck.Deck    `json:"-"`
	Phase    Phase        `json:"phase"`
	Turn     int          `json:"turn"`
	MaxTurns int          `json:"maxTurns"`
	Played   []PlayedCard `json:"playedCards,omitempty"`

	// PendingChoosers queues every player whose card fit no line this
	// turn, in ascending order of the card they played. The head of
	// the queue is the player currently choosing.
	PendingChoosers   []string `json:"pendingChoosers,omitempty"`
	SelectingLine     bool     `json:"selectingLine"`
	SelectingPlayerID string   `json:"selectingPlayerID,omitempty"`

	GameEnded bool    `json:"gameEnded"`
	Winner    *Player `json:"winner,omitempty"`
}

// NewGame shuffles a fresh deck, deals ten cards to each player and
// seeds the four lines. Pass a rand.Rand for a reproducible game; nil
// falls back to a time-seeded source.
func NewGame(info []protocol.Player, r *rand.Rand) (Game, error) {
	if len(info) < minPlayers {
		return Game{}, ErrTooFewPlayers
	}
	if len(info) > maxPlayers {
		return Game{}, ErrTooManyPlayers
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := deck.New()
	d.Shuffle(r)

	players := make([]Player, 0, len(info))
	for _, pi := range info {
		hand := d.Deal(handSize)
		sort.Slice(hand, func(i, j int) bool {
			return hand[i].Number < hand[j].Number
		})
		players = append(players, Player{
			Player:    pi,
			Hand:      hand,
			Collected: []deck.Card{},
		})
	}

	lines := make([]Line, numLines)
	for i := range lines {
		lines[i] = Line{ID: i, Cards: d.Deal(1)}
	}

	return Game{
		Players:  players,
		Lines:    lines,
		Deck:     d,
		Phase:    PhaseSelection,
		Turn:     1,
		MaxTurns: maxTurns,
	}, nil
}

// Action is a single discrete input to the game.
type Action interface {
	isAction()
}

// SelectCard commits one card, by number, from a player's hand.
type SelectCard struct {
	PlayerID string
	Number   int
}

// NextPhase advances reveal to placement, and placement to the next
// turn (or to line choice / game end). Driven by the presentation
// layer once its sequencing is done.
type NextPhase struct{}

// ChooseLine resolves a pending line choice for the selecting player.
type ChooseLine struct {
	LineID int
}

// Reset abandons the game and returns to the pristine setup state.
type Reset struct{}

func (SelectCard) isAction() {}
func (NextPhase) isAction()  {}
func (ChooseLine) isAction() {}
func (Reset) isAction()      {}

// Reduce applies an action to a game snapshot and returns the next
// snapshot. The input is never mutated.
func Reduce(g Game, action Action) Game {
	switch a := action.(type) {
	case SelectCard:
		return selectCard(g.clone(), a)
	case NextPhase:
		return nextPhase(g.clone())
	case ChooseLine:
		return chooseLine(g.clone(), a)
	case Reset:
		return Game{Phase: PhaseSetup, MaxTurns: maxTurns}
	}
	return g
}

func selectCard(g Game, a SelectCard) Game {
	if g.Phase != PhaseSelection {
		return g
	}

	p := g.playerByID(a.PlayerID)
	if p == nil || p.SelectedCard != nil {
		return g
	}

	idx := -1
	for i, c := range p.Hand {
		if c.Number == a.Number {
			idx = i
			break
		}
	}
	if idx == -1 {
		return g
	}

	card := p.Hand[idx]
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	p.SelectedCard = &card

	if g.allSelected() {
		g.Phase = PhaseReveal
	}
	return g
}

func nextPhase(g Game) Game {
	switch g.Phase {
	case PhaseReveal:
		g.Played = []PlayedCard{}
		for _, p := range g.Players {
			if p.SelectedCard != nil {
				g.Played = append(g.Played, PlayedCard{
					PlayerID: p.PlayerID,
					Card:     *p.SelectedCard,
				})
			}
		}
		g.Phase = PhasePlacement
		return g

	case PhasePlacement:
		return resolvePlacement(g)
	}

	return g
}

func resolvePlacement(g Game) Game {
	lines, results := ProcessPlayedCards(g.Played, g.Lines)
	g.Lines = lines

	pending := []string{}
	for _, res := range results {
		if res.NeedsChoice {
			pending = append(pending, res.PlayerID)
			continue
		}
		g.finalizePlayer(res.PlayerID, res.Collected)
	}

	if len(pending) > 0 {
		g.PendingChoosers = pending
		g.SelectingPlayerID = pending[0]
		g.SelectingLine = true
		g.Phase = PhaseLineChoice
		return g
	}

	return endTurn(g)
}

func chooseLine(g Game, a ChooseLine) Game {
	if g.Phase != PhaseLineChoice || g.SelectingPlayerID == "" {
		return g
	}
	if a.LineID < 0 || a.LineID >= len(g.Lines) {
		return g
	}

	p := g.playerByID(g.SelectingPlayerID)
	if p == nil || p.SelectedCard == nil {
		return g
	}

	// The chooser inherits the whole line; their card restarts it.
	collected := g.Lines[a.LineID].Cards
	g.Lines[a.LineID] = Line{ID: a.LineID, Cards: []deck.Card{*p.SelectedCard}}
	g.finalizePlayer(p.PlayerID, collected)

	g.PendingChoosers = g.PendingChoosers[1:]
	if len(g.PendingChoosers) > 0 {
		g.SelectingPlayerID = g.PendingChoosers[0]
		return g
	}

	g.PendingChoosers = nil
	g.SelectingPlayerID = ""
	g.SelectingLine = false
	return endTurn(g)
}

// finalizePlayer merges a turn's winnings into the player's collection,
// recomputes their score, clears their selected card and marks their
// played card as placed.
func (g *Game) finalizePlayer(playerID string, collected []deck.Card) {
	p := g.playerByID(playerID)
	if p == nil {
		return
	}

	p.Collected = append(p.Collected, collected...)
	p.Score = Score(p.Collected)
	p.SelectedCard = nil

	for i := range g.Played {
		if g.Played[i].PlayerID == playerID {
			g.Played[i].Placed = true
		}
	}
}

func endTurn(g Game) Game {
	g.Played = nil

	if IsOver(g.Players, g.Turn, g.MaxTurns) {
		g.Phase = PhaseEnded
		g.GameEnded = true
		g.Winner = WinnerOf(g.Players)
		return g
	}

	g.Turn++
	g.Phase = PhaseSelection
	return g
}

func (g *Game) playerByID(playerID string) *Player {
	for i := range g.Players {
		if g.Players[i].PlayerID == playerID {
			return &g.Players[i]
		}
	}
	return nil
}

func (g Game) allSelected() bool {
	for _, p := range g.Players {
		if p.SelectedCard == nil {
			return false
		}
	}
	return len(g.Players) > 0
}

func (g Game) clone() Game {
	next := g

	next.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		next.Players[i] = clonePlayer(p)
	}

	next.Lines = cloneLines(g.Lines)
	next.Deck = append(g.Deck[:0:0], g.Deck...)
	next.Played = append(g.Played[:0:0], g.Played...)
	next.PendingChoosers = append(g.PendingChoosers[:0:0], g.PendingChoosers...)

	if g.Winner != nil {
		w := clonePlayer(*g.Winner)
		next.Winner = &w
	}

	return next
}

func clonePlayer(p Player) Player {
	next := p
	// The three-index slice keeps nil nil and empty empty, so a cloned
	// snapshot compares deep-equal to its source.
	next.Hand = append(p.Hand[:0:0], p.Hand...)
	next.Collected = append(p.Collected[:0:0], p.Collected...)
	if p.SelectedCard != nil {
		c := *p.SelectedCard
		next.SelectedCard = &c
	}
	return next
}

func cloneLines(lines []Line) []Line {
	next := make([]Line, len(lines))
	for i, l := range lines {
		next[i] = Line{ID: l.ID, Cards: append(l.Cards[:0:0], l.Cards...)}
	}
	return next
}
