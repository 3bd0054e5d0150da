// Package chameleon implements the role-assignment and elimination
// state machine for the Chameleon social-deduction game.
//
// Like the takesix package, the engine is a pure reducer over a closed
// action set: invalid or out-of-phase actions return the state
// unchanged. Randomness (role shuffle, word pick, clue order) flows
// from the source injected at construction, so rounds are reproducible
// in tests.
package chameleon

import (
	"errors"
	"math/rand"
	"time"

	"github.com/nightable/gamenight/protocol"
)

const (
	minPlayers = 4
	maxPlayers = 10

	// guessBonus is awarded to Mr. White for guessing the civilian word.
	guessBonus = 5

	// Win bonuses composed into final scores at the end of a match.
	undercoverWinBonus = 6
	civilianWinBonus   = 2
)

var (
	ErrTooFewPlayers  = errors.New("minimum of 4 players required")
	ErrTooManyPlayers = errors.New("maximum of 10 players allowed")
)

// Player is a roster player with their assigned round state.
type Player struct {
	protocol.Player
	Role                Role   `json:"role"`
	SecretWord          string `json:"secretWord,omitempty"` // empty for Mr. White
	IsEliminated        bool   `json:"isEliminated"`
	ScoreBonus          int    `json:"scoreBonus,omitempty"`
	MrWhiteGuess        string `json:"mrWhiteGuess,omitempty"`
	MrWhiteGuessCorrect bool   `json:"mrWhiteGuessCorrect,omitempty"`
}

// Game is a full snapshot of a Chameleon match. Consumers must treat
// it as read-only and route all changes through Reduce.
type Game struct {
	Players  []Player  `json:"players"`
	WordPair *WordPair `json:"wordPair,omitempty"`
	Round    int       `json:"round"`
	Started  bool      `json:"started"`
	Phase    Phase     `json:"phase"`

	// RevealIndex is the next seat to see their role during the
	// sequential reveal.
	RevealIndex int `json:"revealIndex"`

	// ClueOrder is the randomized sequence of player ids giving verbal
	// clues this round.
	ClueOrder []string `json:"clueOrder,omitempty"`

	// SelectedID is the player currently nominated for elimination.
	SelectedID string `json:"selectedID,omitempty"`

	// AwaitingGuessID is set when an eliminated Mr. White must guess
	// the civilian word before results resolve.
	AwaitingGuessID string `json:"awaitingGuessID,omitempty"`

	Winner Winner `json:"winner"`

	rng *rand.Rand
}

// NewGame wraps a roster in a settings-phase game. Pass a rand.Rand
// for reproducible rounds; nil falls back to a time-seeded source.
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

	players := make([]Player, 0, len(info))
	for _, pi := range info {
		players = append(players, Player{Player: pi})
	}

	return Game{Players: players, Phase: PhaseSettings, rng: r}, nil
}

// Action is a single discrete input to the game.
type Action interface {
	isAction()
}

// Start assigns roles and words and begins the reveal. Nil Counts or
// Pair fall back to the defaults for the roster size.
type Start struct {
	Counts *RoleCounts
	Pair   *WordPair
}

// RevealNext advances the sequential role reveal by one seat.
type RevealNext struct{}

// BeginVote moves from clue-giving to the vote.
type BeginVote struct{}

// SelectElimination nominates a living player for elimination.
type SelectElimination struct {
	PlayerID string
}

// ConfirmElimination eliminates the nominated player. Eliminating
// Mr. White suspends results until their guess is submitted.
type ConfirmElimination struct{}

// SubmitGuess resolves an eliminated Mr. White's guess at the civilian
// word. Empty guesses are ignored.
type SubmitGuess struct {
	Text string
}

// ProceedAfterResults starts the next round of clues, or ends the
// match when a side has won.
type ProceedAfterResults struct{}

// Reset returns to the settings phase with all roles cleared.
type Reset struct{}

func (Start) isAction()               {}
func (RevealNext) isAction()          {}
func (BeginVote) isAction()           {}
func (SelectElimination) isAction()   {}
func (ConfirmElimination) isAction()  {}
func (SubmitGuess) isAction()         {}
func (ProceedAfterResults) isAction() {}
func (Reset) isAction()               {}

// Reduce applies an action to a game snapshot and returns the next
// snapshot. The input is never mutated.
func Reduce(g Game, action Action) Game {
	switch a := action.(type) {
	case Start:
		return start(g.clone(), a)
	case RevealNext:
		return revealNext(g.clone())
	case BeginVote:
		return beginVote(g.clone())
	case SelectElimination:
		return selectElimination(g.clone(), a)
	case ConfirmElimination:
		return confirmElimination(g.clone())
	case SubmitGuess:
		return submitGuess(g.clone(), a)
	case ProceedAfterResults:
		return proceedAfterResults(g.clone())
	case Reset:
		return reset(g.clone())
	}
	return g
}

func start(g Game, a Start) Game {
	if g.Phase != PhaseSettings {
		return g
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	counts := DefaultRoleCounts(len(g.Players))
	if a.Counts != nil {
		counts = *a.Counts
	}
	counts = ClampRoleCounts(counts, len(g.Players))

	pair := randomWordPair(g.rng)
	if a.Pair != nil {
		pair = *a.Pair
	}

	// Deal roles from a shuffled pool: undercovers first, then
	// Mr. Whites, remainder civilians.
	g.rng.Shuffle(len(g.Players), func(i, j int) {
		g.Players[i], g.Players[j] = g.Players[j], g.Players[i]
	})

	for i := range g.Players {
		p := &g.Players[i]
		switch {
		case i < counts.Undercovers:
			p.Role = RoleChameleon
			p.SecretWord = pair.ChameleonWord
		case i < counts.Undercovers+counts.MrWhites:
			p.Role = RoleMrWhite
			p.SecretWord = ""
		default:
			p.Role = RoleCivilian
			p.SecretWord = pair.CivilianWord
		}
	}

	// Re-shuffle so reveal order does not leak the deal order.
	g.rng.Shuffle(len(g.Players), func(i, j int) {
		g.Players[i], g.Players[j] = g.Players[j], g.Players[i]
	})

	g.WordPair = &pair
	g.Round = 1
	g.Started = true
	g.RevealIndex = 0
	g.Winner = WinnerNone
	g.Phase = PhaseReveal
	return g
}

func revealNext(g Game) Game {
	if g.Phase != PhaseReveal {
		return g
	}

	g.RevealIndex++
	if g.RevealIndex >= len(g.Players) {
		g.ClueOrder = g.shuffledAliveIDs()
		g.Phase = PhaseClues
	}
	return g
}

func beginVote(g Game) Game {
	if g.Phase != PhaseClues {
		return g
	}

	g.SelectedID = ""
	g.Phase = PhaseVote
	return g
}

func selectElimination(g Game, a SelectElimination) Game {
	if g.Phase != PhaseVote {
		return g
	}

	p := g.playerByID(a.PlayerID)
	if p == nil || p.IsEliminated {
		return g
	}

	g.SelectedID = a.PlayerID
	return g
}

func confirmElimination(g Game) Game {
	if g.Phase != PhaseVote || g.SelectedID == "" {
		return g
	}

	p := g.playerByID(g.SelectedID)
	if p == nil || p.IsEliminated {
		return g
	}

	p.IsEliminated = true
	g.SelectedID = ""

	if p.Role == RoleMrWhite {
		g.AwaitingGuessID = p.PlayerID
		g.Phase = PhaseAwaitingGuess
		return g
	}

	return enterResults(g)
}

func submitGuess(g Game, a SubmitGuess) Game {
	if g.Phase != PhaseAwaitingGuess || a.Text == "" {
		return g
	}

	p := g.playerByID(g.AwaitingGuessID)
	if p == nil || g.WordPair == nil {
		return g
	}

	p.MrWhiteGuess = a.Text
	if normalizeWord(a.Text) == normalizeWord(g.WordPair.CivilianWord) {
		p.MrWhiteGuessCorrect = true
		p.ScoreBonus += guessBonus
	}

	g.AwaitingGuessID = ""
	return enterResults(g)
}

func enterResults(g Game) Game {
	g.Winner = evaluateWinner(g.Players)
	g.Phase = PhaseResults
	return g
}

func proceedAfterResults(g Game) Game {
	if g.Phase != PhaseResults {
		return g
	}

	if g.Winner != WinnerNone {
		g.Phase = PhaseEnded
		return g
	}

	g.Round++
	g.ClueOrder = g.shuffledAliveIDs()
	g.Phase = PhaseClues
	return g
}

func reset(g Game) Game {
	players := make([]Player, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, Player{Player: p.Player})
	}

	return Game{Players: players, Phase: PhaseSettings, rng: g.rng}
}

// evaluateWinner applies the win conditions to the living roster: no
// impostors alive means the civilians win, impostors matching or
// outnumbering civilians means the undercover side wins.
func evaluateWinner(players []Player) Winner {
	impostors, civilians := 0, 0
	for _, p := range players {
		if p.IsEliminated {
			continue
		}
		if p.Role.impostor() {
			impostors++
		} else {
			civilians++
		}
	}

	switch {
	case impostors == 0:
		return WinnerCivilians
	case impostors >= civilians:
		return WinnerUndercover
	default:
		return WinnerNone
	}
}

// FinalScores composes the per-player score deltas for a finished
// match: +6 to each impostor on an undercover win, +2 to each civilian
// on a civilian win, plus any Mr. White guess bonus.
func FinalScores(g Game) map[string]int {
	scores := make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		delta := p.ScoreBonus
		switch {
		case g.Winner == WinnerUndercover && p.Role.impostor():
			delta += undercoverWinBonus
		case g.Winner == WinnerCivilians && !p.Role.impostor():
			delta += civilianWinBonus
		}
		scores[p.PlayerID] = delta
	}
	return scores
}

func (g *Game) playerByID(playerID string) *Player {
	for i := range g.Players {
		if g.Players[i].PlayerID == playerID {
			return &g.Players[i]
		}
	}
	return nil
}

func (g Game) shuffledAliveIDs() []string {
	ids := []string{}
	for _, p := range g.Players {
		if !p.IsEliminated {
			ids = append(ids, p.PlayerID)
		}
	}
	g.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	return ids
}

func (g Game) clone() Game {
	next := g

	next.Players = append(g.Players[:0:0], g.Players...)
	next.ClueOrder = append(g.ClueOrder[:0:0], g.ClueOrder...)
	if g.WordPair != nil {
		pair := *g.WordPair
		next.WordPair = &pair
	}

	return next
}
