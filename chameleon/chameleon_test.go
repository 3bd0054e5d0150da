package chameleon

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	utils "github.com/nightable/gamenight/internal"
	"github.com/nightable/gamenight/protocol"
)

func roster(n int) []protocol.Player {
	players := make([]protocol.Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, protocol.Player{
			PlayerID: fmt.Sprintf("p%d", i),
			Name:     fmt.Sprintf("Player %d", i),
		})
	}
	return players
}

func someRand() *rand.Rand {
	return rand.New(rand.NewSource(11))
}

var testPair = WordPair{CivilianWord: "Chat", ChameleonWord: "Chatte"}

// startedGame builds a game in the clues phase with a known word pair.
func startedGame(t *testing.T, n int, counts *RoleCounts) Game {
	t.Helper()

	game, err := NewGame(roster(n), someRand())
	utils.AssertNoError(t, err)

	game = Reduce(game, Start{Counts: counts, Pair: &testPair})
	utils.AssertEqual(t, game.Phase, PhaseReveal)

	for i := 0; i < n; i++ {
		game = Reduce(game, RevealNext{})
	}
	utils.AssertEqual(t, game.Phase, PhaseClues)
	return game
}

func idsByRole(g Game, role Role) []string {
	ids := []string{}
	for _, p := range g.Players {
		if p.Role == role {
			ids = append(ids, p.PlayerID)
		}
	}
	return ids
}

// eliminate runs a full vote against one player.
func eliminate(g Game, playerID string) Game {
	g = Reduce(g, BeginVote{})
	g = Reduce(g, SelectElimination{PlayerID: playerID})
	return Reduce(g, ConfirmElimination{})
}

func TestNewGame(t *testing.T) {
	_, err := NewGame(roster(4), someRand())
	utils.AssertNoError(t, err)

	_, err = NewGame(roster(3), someRand())
	assert.ErrorIs(t, err, ErrTooFewPlayers)

	_, err = NewGame(roster(11), someRand())
	assert.ErrorIs(t, err, ErrTooManyPlayers)
}

func TestStart(t *testing.T) {
	t.Run("deals the default roles for every roster size", func(t *testing.T) {
		wanted := map[int]RoleCounts{
			4:  {Undercovers: 1, MrWhites: 0},
			5:  {Undercovers: 1, MrWhites: 1},
			6:  {Undercovers: 1, MrWhites: 1},
			7:  {Undercovers: 2, MrWhites: 1},
			8:  {Undercovers: 2, MrWhites: 1},
			9:  {Undercovers: 3, MrWhites: 1},
			10: {Undercovers: 3, MrWhites: 2},
		}

		for n, want := range wanted {
			t.Run(fmt.Sprintf("%d players", n), func(t *testing.T) {
				game, err := NewGame(roster(n), someRand())
				utils.AssertNoError(t, err)
				game = Reduce(game, Start{Pair: &testPair})

				utils.AssertEqual(t, len(idsByRole(game, RoleChameleon)), want.Undercovers)
				utils.AssertEqual(t, len(idsByRole(game, RoleMrWhite)), want.MrWhites)
				utils.AssertEqual(t, len(idsByRole(game, RoleCivilian)), n-want.Undercovers-want.MrWhites)
			})
		}
	})

	t.Run("hands out the right words", func(t *testing.T) {
		game, err := NewGame(roster(6), someRand())
		utils.AssertNoError(t, err)
		game = Reduce(game, Start{Pair: &testPair})

		for _, p := range game.Players {
			switch p.Role {
			case RoleCivilian:
				utils.AssertEqual(t, p.SecretWord, "Chat")
			case RoleChameleon:
				utils.AssertEqual(t, p.SecretWord, "Chatte")
			case RoleMrWhite:
				utils.AssertEqual(t, p.SecretWord, "")
			}
		}

		utils.AssertEqual(t, game.Round, 1)
		utils.AssertTrue(t, game.Started)
		utils.AssertEqual(t, game.Phase, PhaseReveal)
	})

	t.Run("clamps requested counts to under half the roster", func(t *testing.T) {
		game, err := NewGame(roster(4), someRand())
		utils.AssertNoError(t, err)

		t.Log("asking for 3 chameleons and 3 Mr. Whites among 4 players")
		game = Reduce(game, Start{
			Counts: &RoleCounts{Undercovers: 3, MrWhites: 3},
			Pair:   &testPair,
		})

		t.Log("trims Mr. Whites before chameleons")
		utils.AssertEqual(t, len(idsByRole(game, RoleChameleon)), 2)
		utils.AssertEqual(t, len(idsByRole(game, RoleMrWhite)), 0)
		utils.AssertEqual(t, len(idsByRole(game, RoleCivilian)), 2)
	})

	t.Run("picks a built-in pair when none is given", func(t *testing.T) {
		game, err := NewGame(roster(5), someRand())
		utils.AssertNoError(t, err)
		game = Reduce(game, Start{})

		utils.AssertNotNil(t, game.WordPair)
		utils.AssertNotEmptyString(t, game.WordPair.CivilianWord)
		utils.AssertNotEmptyString(t, game.WordPair.ChameleonWord)
	})

	t.Run("starting twice is a no-op", func(t *testing.T) {
		game := startedGame(t, 5, nil)
		next := Reduce(game, Start{Pair: &testPair})
		utils.AssertEqual(t, next.Phase, PhaseClues)
		utils.AssertEqual(t, next.Round, 1)
	})
}

func TestReveal(t *testing.T) {
	game, err := NewGame(roster(5), someRand())
	utils.AssertNoError(t, err)
	game = Reduce(game, Start{Pair: &testPair})

	t.Log("each seat reveals in turn")
	for i := 0; i < 4; i++ {
		game = Reduce(game, RevealNext{})
		utils.AssertEqual(t, game.RevealIndex, i+1)
		utils.AssertEqual(t, game.Phase, PhaseReveal)
	}

	t.Log("the last reveal opens the clue round")
	game = Reduce(game, RevealNext{})
	utils.AssertEqual(t, game.Phase, PhaseClues)

	t.Log("with every living player somewhere in the clue order")
	utils.AssertEqual(t, len(game.ClueOrder), 5)
	seen := map[string]bool{}
	for _, id := range game.ClueOrder {
		seen[id] = true
	}
	utils.AssertEqual(t, len(seen), 5)
}

func TestVote(t *testing.T) {
	t.Run("eliminating a civilian resolves results directly", func(t *testing.T) {
		game := startedGame(t, 6, nil)
		victim := idsByRole(game, RoleCivilian)[0]

		game = eliminate(game, victim)

		utils.AssertEqual(t, game.Phase, PhaseResults)
		utils.AssertTrue(t, game.playerByID(victim).IsEliminated)
		utils.AssertEqual(t, game.Winner, WinnerNone)
	})

	t.Run("only living players can be nominated", func(t *testing.T) {
		game := startedGame(t, 6, nil)
		civilians := idsByRole(game, RoleCivilian)

		game = eliminate(game, civilians[0])
		game = Reduce(game, ProceedAfterResults{})
		game = Reduce(game, BeginVote{})

		next := Reduce(game, SelectElimination{PlayerID: civilians[0]})
		utils.AssertEqual(t, next.SelectedID, "")

		next = Reduce(game, SelectElimination{PlayerID: "nobody"})
		utils.AssertEqual(t, next.SelectedID, "")
	})

	t.Run("confirming without a nomination is a no-op", func(t *testing.T) {
		game := startedGame(t, 6, nil)
		game = Reduce(game, BeginVote{})

		next := Reduce(game, ConfirmElimination{})
		utils.AssertEqual(t, next.Phase, PhaseVote)
	})
}

func TestMrWhiteGuess(t *testing.T) {
	t.Run("a correct guess earns the bonus", func(t *testing.T) {
		game := startedGame(t, 5, nil)
		white := idsByRole(game, RoleMrWhite)[0]

		t.Log("eliminating Mr. White suspends results")
		game = eliminate(game, white)
		utils.AssertEqual(t, game.Phase, PhaseAwaitingGuess)
		utils.AssertEqual(t, game.AwaitingGuessID, white)

		t.Log("articles, case and accents do not matter")
		game = Reduce(game, SubmitGuess{Text: "Le Chât"})

		utils.AssertEqual(t, game.Phase, PhaseResults)
		p := game.playerByID(white)
		utils.AssertTrue(t, p.MrWhiteGuessCorrect)
		utils.AssertEqual(t, p.ScoreBonus, 5)
	})

	t.Run("a near miss earns nothing", func(t *testing.T) {
		game := startedGame(t, 5, nil)
		white := idsByRole(game, RoleMrWhite)[0]

		game = eliminate(game, white)
		game = Reduce(game, SubmitGuess{Text: "chatte"})

		utils.AssertEqual(t, game.Phase, PhaseResults)
		p := game.playerByID(white)
		utils.AssertTrue(t, !p.MrWhiteGuessCorrect)
		utils.AssertEqual(t, p.ScoreBonus, 0)
		utils.AssertEqual(t, p.MrWhiteGuess, "chatte")
	})

	t.Run("empty guesses are ignored", func(t *testing.T) {
		game := startedGame(t, 5, nil)
		white := idsByRole(game, RoleMrWhite)[0]

		game = eliminate(game, white)
		next := Reduce(game, SubmitGuess{})
		utils.AssertEqual(t, next.Phase, PhaseAwaitingGuess)
	})
}

func TestWinConditions(t *testing.T) {
	t.Run("civilians win once every impostor is out", func(t *testing.T) {
		t.Log("Given 5 players with one chameleon and one Mr. White")
		game := startedGame(t, 5, nil)

		t.Log("When the chameleon is voted out")
		game = eliminate(game, idsByRole(game, RoleChameleon)[0])
		utils.AssertEqual(t, game.Winner, WinnerNone)
		game = Reduce(game, ProceedAfterResults{})
		utils.AssertEqual(t, game.Round, 2)
		utils.AssertEqual(t, game.Phase, PhaseClues)

		t.Log("And Mr. White is voted out without guessing the word")
		game = eliminate(game, idsByRole(game, RoleMrWhite)[0])
		game = Reduce(game, SubmitGuess{Text: "wrong"})

		t.Log("Then the civilians win")
		utils.AssertEqual(t, game.Winner, WinnerCivilians)
		game = Reduce(game, ProceedAfterResults{})
		utils.AssertEqual(t, game.Phase, PhaseEnded)
	})

	t.Run("undercover side wins by matching the civilians", func(t *testing.T) {
		t.Log("Given 4 players with one chameleon and no Mr. White")
		game := startedGame(t, 4, nil)

		t.Log("When two civilians are voted out")
		civilians := idsByRole(game, RoleCivilian)
		game = eliminate(game, civilians[0])
		game = Reduce(game, ProceedAfterResults{})
		game = eliminate(game, civilians[1])

		t.Log("Then one chameleon against one civilian wins the match")
		utils.AssertEqual(t, game.Winner, WinnerUndercover)
	})
}

func TestFinalScores(t *testing.T) {
	t.Run("undercover win pays the impostors", func(t *testing.T) {
		game := startedGame(t, 4, nil)
		civilians := idsByRole(game, RoleCivilian)
		game = eliminate(game, civilians[0])
		game = Reduce(game, ProceedAfterResults{})
		game = eliminate(game, civilians[1])
		utils.AssertEqual(t, game.Winner, WinnerUndercover)

		scores := FinalScores(game)
		utils.AssertEqual(t, scores[idsByRole(game, RoleChameleon)[0]], 6)
		for _, id := range civilians {
			utils.AssertEqual(t, scores[id], 0)
		}
	})

	t.Run("civilian win pays the civilians", func(t *testing.T) {
		game := startedGame(t, 4, nil)
		game = eliminate(game, idsByRole(game, RoleChameleon)[0])
		utils.AssertEqual(t, game.Winner, WinnerCivilians)

		scores := FinalScores(game)
		utils.AssertEqual(t, scores[idsByRole(game, RoleChameleon)[0]], 0)
		for _, id := range idsByRole(game, RoleCivilian) {
			utils.AssertEqual(t, scores[id], 2)
		}
	})

	t.Run("the guess bonus stacks with a win", func(t *testing.T) {
		t.Log("Given Mr. White guesses the word on the way out")
		game := startedGame(t, 5, nil)
		white := idsByRole(game, RoleMrWhite)[0]
		game = eliminate(game, white)
		game = Reduce(game, SubmitGuess{Text: "chat"})

		t.Log("And the chameleon then takes the match")
		civilians := idsByRole(game, RoleCivilian)
		game = Reduce(game, ProceedAfterResults{})
		game = eliminate(game, civilians[0])
		game = Reduce(game, ProceedAfterResults{})
		game = eliminate(game, civilians[1])
		utils.AssertEqual(t, game.Winner, WinnerUndercover)

		t.Log("Then Mr. White banks the guess bonus plus the win bonus")
		scores := FinalScores(game)
		utils.AssertEqual(t, scores[white], 11)
		utils.AssertEqual(t, scores[idsByRole(game, RoleChameleon)[0]], 6)
	})
}

func TestReset(t *testing.T) {
	game := startedGame(t, 5, nil)
	game = eliminate(game, idsByRole(game, RoleCivilian)[0])

	game = Reduce(game, Reset{})

	utils.AssertEqual(t, game.Phase, PhaseSettings)
	utils.AssertTrue(t, !game.Started)
	utils.AssertEqual(t, len(game.Players), 5)
	for _, p := range game.Players {
		utils.AssertEqual(t, p.SecretWord, "")
		utils.AssertTrue(t, !p.IsEliminated)
		utils.AssertEqual(t, p.ScoreBonus, 0)
	}
}

func TestViewFor(t *testing.T) {
	t.Run("roles stay hidden until elimination", func(t *testing.T) {
		game := startedGame(t, 5, nil)
		me := game.Players[0].PlayerID

		view := game.ViewFor(me)

		utils.AssertEqual(t, view.Role, game.Players[0].Role.String())
		for _, o := range view.Opponents {
			utils.AssertEqual(t, o.Role, "")
		}
		utils.AssertTrue(t, view.WordPair == nil)
	})

	t.Run("eliminated players are exposed", func(t *testing.T) {
		game := startedGame(t, 5, nil)
		victim := idsByRole(game, RoleCivilian)[0]
		game = eliminate(game, victim)

		viewer := ""
		for _, p := range game.Players {
			if p.PlayerID != victim {
				viewer = p.PlayerID
				break
			}
		}

		view := game.ViewFor(viewer)
		for _, o := range view.Opponents {
			if o.PlayerID == victim {
				utils.AssertTrue(t, o.IsEliminated)
				utils.AssertEqual(t, o.Role, "civilian")
			}
		}
	})
}
