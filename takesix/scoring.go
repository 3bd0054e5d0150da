package takesix

import "github.com/nightable/gamenight/deck"

// Score sums the penalty values over a collection of cards. Order
// independent.
func Score(collected []deck.Card) int {
	total := 0
	for _, c := range collected {
		total += c.Bulls
	}
	return total
}

// WinnerOf returns a copy of the player with the lowest score. Ties go
// to the earlier seat at game start.
func WinnerOf(players []Player) *Player {
	if len(players) == 0 {
		return nil
	}

	best := 0
	for i := 1; i < len(players); i++ {
		if players[i].Score < players[best].Score {
			best = i
		}
	}

	winner := clonePlayer(players[best])
	return &winner
}

// IsOver reports whether the game ends now: the final turn has been
// played, or any player has reached the bust score.
func IsOver(players []Player, turn, limit int) bool {
	if turn >= limit {
		return true
	}
	for _, p := range players {
		if p.Score >= bustScore {
			return true
		}
	}
	return false
}
