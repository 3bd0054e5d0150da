package chameleon

// Phase represents the stages of a Chameleon round
type Phase int

const (
	PhaseSettings Phase = iota
	PhaseReveal
	PhaseClues
	PhaseVote
	PhaseAwaitingGuess
	PhaseResults
	PhaseEnded
)

var phaseNames = []string{
	"settings",
	"reveal",
	"clues",
	"vote",
	"awaitingGuess",
	"results",
	"ended",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return ""
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Winner identifies which side has won the match, if any.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerCivilians
	WinnerUndercover
)

var winnerNames = []string{"", "civilians", "undercover"}

func (w Winner) String() string {
	if w < 0 || int(w) >= len(winnerNames) {
		return ""
	}
	return winnerNames[w]
}

func (w Winner) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}
