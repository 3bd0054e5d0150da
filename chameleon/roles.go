package chameleon

// Role is a player's hidden allegiance for the round.
type Role int

const (
	RoleCivilian Role = iota
	RoleChameleon
	RoleMrWhite
)

var roleNames = []string{"civilian", "chameleon", "mrWhite"}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return ""
	}
	return roleNames[r]
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// impostor reports whether the role is on the undercover side.
func (r Role) impostor() bool {
	return r == RoleChameleon || r == RoleMrWhite
}

// RoleCounts is the number of each impostor role dealt into a round.
// The remainder of the roster are civilians.
type RoleCounts struct {
	Undercovers int `json:"undercovers"`
	MrWhites    int `json:"mrWhites"`
}

// defaultRoleCounts maps player count to the impostor mix used when the
// caller does not override it.
var defaultRoleCounts = map[int]RoleCounts{
	4:  {Undercovers: 1, MrWhites: 0},
	5:  {Undercovers: 1, MrWhites: 1},
	6:  {Undercovers: 1, MrWhites: 1},
	7:  {Undercovers: 2, MrWhites: 1},
	8:  {Undercovers: 2, MrWhites: 1},
	9:  {Undercovers: 3, MrWhites: 1},
	10: {Undercovers: 3, MrWhites: 2},
}

// DefaultRoleCounts returns the standard impostor mix for a roster
// size. Sizes outside the 4-10 table get the nearest entry.
func DefaultRoleCounts(playerCount int) RoleCounts {
	if playerCount < 4 {
		return defaultRoleCounts[4]
	}
	if playerCount > 10 {
		return defaultRoleCounts[10]
	}
	return defaultRoleCounts[playerCount]
}

// ClampRoleCounts enforces undercovers+mrWhites <= playerCount/2,
// trimming the excess from Mr. Whites first, then undercovers.
// Negative requests are treated as zero.
func ClampRoleCounts(counts RoleCounts, playerCount int) RoleCounts {
	if counts.Undercovers < 0 {
		counts.Undercovers = 0
	}
	if counts.MrWhites < 0 {
		counts.MrWhites = 0
	}

	limit := playerCount / 2
	for counts.Undercovers+counts.MrWhites > limit {
		if counts.MrWhites > 0 {
			counts.MrWhites--
			continue
		}
		counts.Undercovers--
	}
	return counts
}
