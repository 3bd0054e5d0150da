package chameleon

// Opponent is the redacted representation of another player. Roles and
// words stay hidden until elimination reveals them.
type Opponent struct {
	PlayerID     string `json:"playerID"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar,omitempty"`
	IsEliminated bool   `json:"isEliminated"`
	// Role appears only once the player is out.
	Role                string `json:"role,omitempty"`
	MrWhiteGuess        string `json:"mrWhiteGuess,omitempty"`
	MrWhiteGuessCorrect bool   `json:"mrWhiteGuessCorrect,omitempty"`
}

// View is the per-player snapshot published after every action.
type View struct {
	Phase        Phase  `json:"phase"`
	Round        int    `json:"round"`
	Started      bool   `json:"started"`
	Role         string `json:"role,omitempty"`
	SecretWord   string `json:"secretWord,omitempty"`
	IsEliminated bool   `json:"isEliminated"`
	ScoreBonus   int    `json:"scoreBonus,omitempty"`

	RevealIndex     int        `json:"revealIndex"`
	ClueOrder       []string   `json:"clueOrder,omitempty"`
	SelectedID      string     `json:"selectedID,omitempty"`
	AwaitingGuessID string     `json:"awaitingGuessID,omitempty"`
	Winner          Winner     `json:"winner"`
	Opponents       []Opponent `json:"opponents"`

	// WordPair is disclosed once the match is over.
	WordPair *WordPair `json:"wordPair,omitempty"`
}

// ViewFor builds the snapshot visible to one player: their own role
// and word, plus only what elimination has made public about others.
func (g Game) ViewFor(playerID string) View {
	v := View{
		Phase:           g.Phase,
		Round:           g.Round,
		Started:         g.Started,
		RevealIndex:     g.RevealIndex,
		ClueOrder:       append([]string(nil), g.ClueOrder...),
		SelectedID:      g.SelectedID,
		AwaitingGuessID: g.AwaitingGuessID,
		Winner:          g.Winner,
	}

	if g.Phase == PhaseEnded && g.WordPair != nil {
		pair := *g.WordPair
		v.WordPair = &pair
	}

	for _, p := range g.Players {
		if p.PlayerID == playerID {
			if g.Started {
				v.Role = p.Role.String()
				v.SecretWord = p.SecretWord
			}
			v.IsEliminated = p.IsEliminated
			v.ScoreBonus = p.ScoreBonus
			continue
		}

		op := Opponent{
			PlayerID:     p.PlayerID,
			Name:         p.Name,
			Avatar:       p.Avatar,
			IsEliminated: p.IsEliminated,
		}
		if p.IsEliminated || g.Phase == PhaseEnded {
			op.Role = p.Role.String()
			op.MrWhiteGuess = p.MrWhiteGuess
			op.MrWhiteGuessCorrect = p.MrWhiteGuessCorrect
		}
		v.Opponents = append(v.Opponents, op)
	}

	return v
}
