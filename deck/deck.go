// Package deck implements the 104-card deck used by the Stampede game.
package deck

import "math/rand"

// Size is the number of cards in a full deck.
const Size = 104

// Deck represents a deck of cards
type Deck []Card

// New creates a full deck of cards, in number order.
func New() Deck {
	cards := make(Deck, 0, Size)
	for n := 1; n <= Size; n++ {
		cards = append(cards, NewCard(n))
	}
	return cards
}

// Shuffle permutes the deck in place using the given random source.
func (d Deck) Shuffle(r *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal removes the first n cards from the deck and returns them.
// Dealing more cards than remain returns nothing. The returned slice
// does not share backing storage with the deck.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || n > len(*d) {
		return []Card{}
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}
