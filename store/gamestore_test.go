package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nightable/gamenight/engine"
	utils "github.com/nightable/gamenight/internal"
	"github.com/nightable/gamenight/protocol"
)

// stubEngine is a minimal GameEngine for store tests.
type stubEngine struct {
	id        string
	playState engine.PlayState
	players   []engine.Player
}

func (s *stubEngine) ID() string                      { return s.id }
func (s *stubEngine) CreatorID() string               { return "creator" }
func (s *stubEngine) Kind() engine.Kind               { return engine.KindTakeSix }
func (s *stubEngine) PlayState() engine.PlayState     { return s.playState }
func (s *stubEngine) Players() []engine.Player        { return s.players }
func (s *stubEngine) Receive(protocol.InboundMessage) {}
func (s *stubEngine) Listen()                         {}

func (s *stubEngine) AddPlayer(p engine.Player) error {
	s.players = append(s.players, p)
	return nil
}

func TestInMemoryGameStore(t *testing.T) {
	t.Run("finds only games that exist", func(t *testing.T) {
		st := NewInMemoryGameStore()
		utils.AssertNoError(t, st.AddInactiveGame(&stubEngine{id: "some-id"}))

		utils.AssertNotNil(t, st.FindGame("some-id"))
		utils.AssertTrue(t, st.FindGame("fake-id") == nil)
	})

	t.Run("refuses duplicate game ids", func(t *testing.T) {
		st := NewInMemoryGameStore()
		utils.AssertNoError(t, st.AddInactiveGame(&stubEngine{id: "some-id"}))
		utils.AssertErrored(t, st.AddInactiveGame(&stubEngine{id: "some-id"}))
	})

	t.Run("splits active from inactive games", func(t *testing.T) {
		st := NewInMemoryGameStore()
		utils.AssertNoError(t, st.AddInactiveGame(&stubEngine{id: "idle-game"}))
		utils.AssertNoError(t, st.AddInactiveGame(&stubEngine{
			id:        "live-game",
			playState: engine.InProgress,
		}))

		utils.AssertNotNil(t, st.FindInactiveGame("idle-game"))
		utils.AssertTrue(t, st.FindInactiveGame("live-game") == nil)

		utils.AssertNotNil(t, st.FindActiveGame("live-game"))
		utils.AssertTrue(t, st.FindActiveGame("idle-game") == nil)
		utils.AssertTrue(t, st.FindActiveGame("fake-id") == nil)
	})
}

func TestPendingPlayers(t *testing.T) {
	t.Run("pending players queue up against their game", func(t *testing.T) {
		st := NewInMemoryGameStore()
		utils.AssertNoError(t, st.AddInactiveGame(&stubEngine{id: "some-id"}))

		utils.AssertNoError(t, st.AddPendingPlayer("some-id", "player-1", "Harry"))
		utils.AssertNoError(t, st.AddPendingPlayer("some-id", "player-2", "Sally"))

		pending := st.FindPendingPlayer("some-id", "player-1")
		utils.AssertNotNil(t, pending)
		utils.AssertEqual(t, pending.Name, "Harry")

		utils.AssertTrue(t, st.FindPendingPlayer("some-id", "player-3") == nil)
		utils.AssertEqual(t, len(st.PendingPlayers("some-id")), 2)
	})

	t.Run("cannot join a missing or started game", func(t *testing.T) {
		st := NewInMemoryGameStore()
		utils.AssertNoError(t, st.AddInactiveGame(&stubEngine{
			id:        "live-game",
			playState: engine.InProgress,
		}))

		utils.AssertErrored(t, st.AddPendingPlayer("fake-id", "player-1", "Harry"))
		assert.ErrorIs(t, st.AddPendingPlayer("live-game", "player-1", "Harry"), ErrGameAlreadyStarted)
	})
}

func TestAddPlayerToGame(t *testing.T) {
	st := NewInMemoryGameStore()
	game := &stubEngine{id: "some-id"}
	utils.AssertNoError(t, st.AddInactiveGame(game))

	player := engine.NewTestPlayer("player-1", "Harry")
	utils.AssertNoError(t, st.AddPlayerToGame("some-id", player))
	utils.AssertEqual(t, len(game.players), 1)

	utils.AssertErrored(t, st.AddPlayerToGame("fake-id", player))

	game.playState = engine.InProgress
	utils.AssertErrored(t, st.AddPlayerToGame("some-id", engine.NewTestPlayer("player-2", "Sally")))
}
