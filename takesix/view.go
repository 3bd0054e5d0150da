package takesix

import (
	"github.com/nightable/gamenight/deck"
	"github.com/nightable/gamenight/protocol"
)

// Opponent is the redacted representation of another player: hand and
// selection stay hidden until the reveal.
type Opponent struct {
	PlayerID    string `json:"playerID"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar,omitempty"`
	HandCount   int    `json:"handCount"`
	HasSelected bool   `json:"hasSelected"`
	Score       int    `json:"score"`
	Collected   int    `json:"collected"`
}

// View is the per-player snapshot published after every action.
type View struct {
	Phase             Phase            `json:"phase"`
	Turn              int              `json:"turn"`
	MaxTurns          int              `json:"maxTurns"`
	Lines             []Line           `json:"lines"`
	Hand              []deck.Card      `json:"hand"`
	SelectedCard      *deck.Card       `json:"selectedCard,omitempty"`
	Score             int              `json:"score"`
	Collected         []deck.Card      `json:"collected"`
	Played            []PlayedCard     `json:"playedCards,omitempty"`
	Opponents         []Opponent       `json:"opponents"`
	SelectingLine     bool             `json:"selectingLine"`
	SelectingPlayerID string           `json:"selectingPlayerID,omitempty"`
	GameEnded         bool             `json:"gameEnded"`
	Winner            *protocol.Player `json:"winner,omitempty"`
}

// ViewFor builds the snapshot visible to one player. Played cards only
// appear once the reveal has happened.
func (g Game) ViewFor(playerID string) View {
	v := View{
		Phase:             g.Phase,
		Turn:              g.Turn,
		MaxTurns:          g.MaxTurns,
		Lines:             cloneLines(g.Lines),
		Played:            append([]PlayedCard(nil), g.Played...),
		SelectingLine:     g.SelectingLine,
		SelectingPlayerID: g.SelectingPlayerID,
		GameEnded:         g.GameEnded,
	}

	if g.Winner != nil {
		w := g.Winner.Player
		v.Winner = &w
	}

	for _, p := range g.Players {
		if p.PlayerID == playerID {
			me := clonePlayer(p)
			v.Hand = me.Hand
			v.SelectedCard = me.SelectedCard
			v.Score = me.Score
			v.Collected = me.Collected
			continue
		}
		v.Opponents = append(v.Opponents, Opponent{
			PlayerID:    p.PlayerID,
			Name:        p.Name,
			Avatar:      p.Avatar,
			HandCount:   len(p.Hand),
			HasSelected: p.SelectedCard != nil,
			Score:       p.Score,
			Collected:   len(p.Collected),
		})
	}

	return v
}
