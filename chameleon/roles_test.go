package chameleon

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRoleCounts(t *testing.T) {
	t.Run("table sizes", func(t *testing.T) {
		assert.Equal(t, RoleCounts{Undercovers: 1, MrWhites: 0}, DefaultRoleCounts(4))
		assert.Equal(t, RoleCounts{Undercovers: 1, MrWhites: 1}, DefaultRoleCounts(5))
		assert.Equal(t, RoleCounts{Undercovers: 2, MrWhites: 1}, DefaultRoleCounts(7))
		assert.Equal(t, RoleCounts{Undercovers: 3, MrWhites: 2}, DefaultRoleCounts(10))
	})

	t.Run("out-of-table sizes clamp to the nearest entry", func(t *testing.T) {
		assert.Equal(t, DefaultRoleCounts(4), DefaultRoleCounts(2))
		assert.Equal(t, DefaultRoleCounts(10), DefaultRoleCounts(13))
	})

	t.Run("defaults never reach half the roster", func(t *testing.T) {
		for n := 4; n <= 10; n++ {
			c := DefaultRoleCounts(n)
			assert.LessOrEqual(t, c.Undercovers+c.MrWhites, n/2, "roster of %d", n)
			assert.GreaterOrEqual(t, c.Undercovers, 1)
		}
	})
}

func TestClampRoleCounts(t *testing.T) {
	cases := []struct {
		in          RoleCounts
		playerCount int
		want        RoleCounts
	}{
		{RoleCounts{Undercovers: 1, MrWhites: 1}, 6, RoleCounts{Undercovers: 1, MrWhites: 1}},
		// Mr. Whites are trimmed first
		{RoleCounts{Undercovers: 2, MrWhites: 2}, 6, RoleCounts{Undercovers: 2, MrWhites: 1}},
		{RoleCounts{Undercovers: 3, MrWhites: 3}, 4, RoleCounts{Undercovers: 2, MrWhites: 0}},
		{RoleCounts{Undercovers: 9, MrWhites: 0}, 10, RoleCounts{Undercovers: 5, MrWhites: 0}},
		{RoleCounts{Undercovers: -1, MrWhites: -4}, 6, RoleCounts{Undercovers: 0, MrWhites: 0}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%+v among %d", c.in, c.playerCount), func(t *testing.T) {
			assert.Equal(t, c.want, ClampRoleCounts(c.in, c.playerCount))
		})
	}
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "civilian", RoleCivilian.String())
	assert.Equal(t, "chameleon", RoleChameleon.String())
	assert.Equal(t, "mrWhite", RoleMrWhite.String())
	assert.Equal(t, "", Role(99).String())
}
