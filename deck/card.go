package deck

import "fmt"

// Card represents a single card in the 104-card deck. Bulls is the
// penalty value a player collects along with the card.
type Card struct {
	Number int `json:"number"`
	Bulls  int `json:"bulls"`
}

// NewCard constructs a card with the penalty value derived from its number.
func NewCard(number int) Card {
	return Card{Number: number, Bulls: bullsFor(number)}
}

// bullsFor maps a card number to its penalty value.
// 55 is worth 7, multiples of 11 are worth 5, multiples of 10 are
// worth 3, other multiples of 5 are worth 2, everything else 1.
func bullsFor(number int) int {
	switch {
	case number == 55:
		return 7
	case number%11 == 0:
		return 5
	case number%10 == 0:
		return 3
	case number%5 == 0:
		return 2
	default:
		return 1
	}
}

func (c Card) String() string {
	return fmt.Sprintf("%d (%d bulls)", c.Number, c.Bulls)
}
