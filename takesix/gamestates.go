package takesix

// Phase represents the main phases of a Stampede turn
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseSelection
	PhaseReveal
	PhasePlacement
	PhaseLineChoice
	PhaseEnded
)

var phaseNames = []string{
	"setup",
	"selection",
	"reveal",
	"placement",
	"lineChoice",
	"ended",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return ""
	}
	return phaseNames[p]
}

// MarshalText makes phases readable in JSON snapshots.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
