package deck

import (
	"math/rand"
	"testing"

	utils "github.com/nightable/gamenight/internal"
)

func TestNewDeck(t *testing.T) {
	d := New()

	utils.AssertEqual(t, len(d), Size)

	seen := map[int]bool{}
	totalBulls := 0
	for _, c := range d {
		if c.Number < 1 || c.Number > Size {
			t.Fatalf("card number %d out of range", c.Number)
		}
		if seen[c.Number] {
			t.Fatalf("duplicate card %d", c.Number)
		}
		seen[c.Number] = true
		totalBulls += c.Bulls
	}

	// 1x7 + 8x5 + 10x3 + 9x2 + 76x1 across the whole deck
	utils.AssertEqual(t, totalBulls, 171)
}

func TestShuffle(t *testing.T) {
	t.Run("shuffle is a permutation", func(t *testing.T) {
		d := New()
		d.Shuffle(rand.New(rand.NewSource(1)))

		utils.AssertEqual(t, len(d), Size)

		seen := map[int]bool{}
		for _, c := range d {
			seen[c.Number] = true
		}
		utils.AssertEqual(t, len(seen), Size)
	})

	t.Run("same seed, same order", func(t *testing.T) {
		d1, d2 := New(), New()
		d1.Shuffle(rand.New(rand.NewSource(42)))
		d2.Shuffle(rand.New(rand.NewSource(42)))

		utils.AssertDeepEqual(t, d1, d2)
	})
}

func TestDeal(t *testing.T) {
	t.Run("deals from the top", func(t *testing.T) {
		d := New()
		dealt := d.Deal(10)

		utils.AssertEqual(t, len(dealt), 10)
		utils.AssertEqual(t, len(d), Size-10)
		utils.AssertEqual(t, dealt[0].Number, 1)
		utils.AssertEqual(t, d[0].Number, 11)
	})

	t.Run("over-dealing yields nothing", func(t *testing.T) {
		d := New()
		dealt := d.Deal(Size + 1)

		utils.AssertEqual(t, len(dealt), 0)
		utils.AssertEqual(t, len(d), Size)
	})

	t.Run("hands partition the deck", func(t *testing.T) {
		for playerCount := 2; playerCount <= 10; playerCount++ {
			d := New()
			d.Shuffle(rand.New(rand.NewSource(int64(playerCount))))

			seen := map[int]bool{}
			for i := 0; i < playerCount; i++ {
				hand := d.Deal(10)
				utils.AssertEqual(t, len(hand), 10)
				for _, c := range hand {
					if seen[c.Number] {
						t.Fatalf("%d players: card %d dealt twice", playerCount, c.Number)
					}
					seen[c.Number] = true
				}
			}

			lines := d.Deal(4)
			for _, c := range lines {
				if seen[c.Number] {
					t.Fatalf("%d players: card %d dealt twice", playerCount, c.Number)
				}
				seen[c.Number] = true
			}

			utils.AssertEqual(t, len(d), Size-10*playerCount-4)
			for _, c := range d {
				seen[c.Number] = true
			}
			utils.AssertEqual(t, len(seen), Size)
		}
	})
}
