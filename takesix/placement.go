package takesix

import (
	"sort"

	"github.com/nightable/gamenight/deck"
)

// Placement is the per-player outcome of resolving one turn's cards.
type Placement struct {
	PlayerID    string
	Card        deck.Card
	LineID      int
	Collected   []deck.Card
	NeedsChoice bool
}

// FindTargetLine returns the id of the line whose last card is closest
// below the card's number, or -1 when the card is lower than every
// line's last card (the line-choice trigger). Card numbers are unique,
// so two lines can never tie on distance; should that invariant break,
// the lowest line id wins.
func FindTargetLine(card deck.Card, lines []Line) int {
	best, bestDiff := -1, 0
	for _, l := range lines {
		last := l.LastCard().Number
		if last >= card.Number {
			continue
		}
		diff := card.Number - last
		if best == -1 || diff < bestDiff {
			best, bestDiff = l.ID, diff
		}
	}
	return best
}

// PlaceCardOnLine appends the card to the given line. A line already
// holding five cards is collected whole: its cards are returned and
// the line restarts with the new card alone. The input lines are not
// mutated.
func PlaceCardOnLine(card deck.Card, lineID int, lines []Line) ([]Line, []deck.Card) {
	next := cloneLines(lines)
	if lineID < 0 || lineID >= len(next) {
		return next, nil
	}

	line := next[lineID]
	if len(line.Cards) >= maxLineLen {
		collected := line.Cards
		next[lineID] = Line{ID: line.ID, Cards: []deck.Card{card}}
		return next, collected
	}

	next[lineID].Cards = append(line.Cards, card)
	return next, nil
}

// ProcessPlayedCards resolves all cards played this turn in ascending
// number order against the progressively updated lines. Lower cards
// resolve first, which matters: an earlier placement can fill a line
// to capacity before a later, higher card lands on it. Players whose
// card fits no line are flagged NeedsChoice and cause no line change.
func ProcessPlayedCards(played []PlayedCard, lines []Line) ([]Line, []Placement) {
	ordered := make([]PlayedCard, len(played))
	copy(ordered, played)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Card.Number < ordered[j].Card.Number
	})

	next := cloneLines(lines)
	results := make([]Placement, 0, len(ordered))

	for _, pc := range ordered {
		target := FindTargetLine(pc.Card, next)
		if target == -1 {
			results = append(results, Placement{
				PlayerID:    pc.PlayerID,
				Card:        pc.Card,
				LineID:      -1,
				NeedsChoice: true,
			})
			continue
		}

		var collected []deck.Card
		next, collected = PlaceCardOnLine(pc.Card, target, next)
		results = append(results, Placement{
			PlayerID:  pc.PlayerID,
			Card:      pc.Card,
			LineID:    target,
			Collected: collected,
		})
	}

	return next, results
}
