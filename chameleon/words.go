package chameleon

import "math/rand"

// WordPair is a pair of related secret words. Civilians receive the
// first, chameleons the second; Mr. White receives nothing.
type WordPair struct {
	CivilianWord  string `json:"civilianWord"`
	ChameleonWord string `json:"cameleonWord"`
}

// wordPairs is the built-in pool drawn from when the caller does not
// supply its own pair. Pairs are close enough to make clues ambiguous.
var wordPairs = []WordPair{
	{"cat", "tiger"},
	{"coffee", "tea"},
	{"beach", "desert"},
	{"guitar", "violin"},
	{"pizza", "burger"},
	{"snow", "rain"},
	{"boat", "submarine"},
	{"apple", "pear"},
	{"castle", "palace"},
	{"moon", "sun"},
	{"butter", "cheese"},
	{"train", "tram"},
	{"spider", "scorpion"},
	{"piano", "organ"},
	{"river", "canal"},
	{"soccer", "rugby"},
	{"painter", "sculptor"},
	{"honey", "jam"},
	{"glasses", "lenses"},
	{"pillow", "cushion"},
	{"ladder", "staircase"},
	{"candle", "lantern"},
	{"island", "peninsula"},
	{"doctor", "nurse"},
	{"wolf", "fox"},
	{"diamond", "pearl"},
	{"sandal", "boot"},
	{"soup", "stew"},
	{"circus", "funfair"},
	{"novel", "poem"},
	{"helicopter", "plane"},
	{"mirror", "window"},
}

// randomWordPair picks one pair from the pool.
func randomWordPair(r *rand.Rand) WordPair {
	return wordPairs[r.Intn(len(wordPairs))]
}
