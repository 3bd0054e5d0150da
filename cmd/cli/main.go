// Hotseat Stampede: a local game on one terminal, players taking turns
// at the keyboard. Useful for trying out rule changes without a client.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nightable/gamenight/engine"
	"github.com/nightable/gamenight/protocol"
	"github.com/nightable/gamenight/takesix"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Stampede (hotseat)")
	names := promptNames(reader)

	roster := make([]protocol.Player, 0, len(names))
	for _, name := range names {
		roster = append(roster, protocol.Player{PlayerID: engine.NewID(), Name: name})
	}

	game, err := takesix.NewGame(roster, nil)
	if err != nil {
		log.Fatal(err.Error())
	}

	for !game.GameEnded {
		switch game.Phase {
		case takesix.PhaseSelection:
			printLines(game)
			for _, p := range game.Players {
				game = takesix.Reduce(game, takesix.SelectCard{
					PlayerID: p.PlayerID,
					Number:   promptCard(reader, p),
				})
			}

		case takesix.PhaseReveal:
			fmt.Printf("\n--- turn %d ---\n", game.Turn)
			for _, p := range game.Players {
				if p.SelectedCard != nil {
					fmt.Printf("%s plays %s\n", p.Name, p.SelectedCard)
				}
			}
			game = takesix.Reduce(game, takesix.NextPhase{})

		case takesix.PhasePlacement:
			game = takesix.Reduce(game, takesix.NextPhase{})

		case takesix.PhaseLineChoice:
			p := playerByID(game, game.SelectingPlayerID)
			printLines(game)
			fmt.Printf("%s: your card fits no line. ", p.Name)
			game = takesix.Reduce(game, takesix.ChooseLine{
				LineID: promptNumber(reader, "Take which line (0-3)? "),
			})
		}
	}

	fmt.Println("\nGame over!")
	for _, p := range game.Players {
		fmt.Printf("%s: %d bulls\n", p.Name, p.Score)
	}
	if game.Winner != nil {
		fmt.Printf("Winner: %s\n", game.Winner.Name)
	}
}

func promptNames(reader *bufio.Reader) []string {
	names := []string{}
	for {
		fmt.Printf("Player %d name (blank to finish): ", len(names)+1)
		line, _ := reader.ReadString('\n')
		name := strings.TrimSpace(line)
		if name == "" {
			if len(names) >= 2 {
				return names
			}
			fmt.Println("Need at least 2 players")
			continue
		}
		names = append(names, name)
	}
}

func promptCard(reader *bufio.Reader, p takesix.Player) int {
	for {
		fmt.Printf("%s, your hand: %v\n", p.Name, p.Hand)
		n := promptNumber(reader, "Play which card? ")
		for _, c := range p.Hand {
			if c.Number == n {
				return n
			}
		}
		fmt.Println("Not in your hand")
	}
}

func promptNumber(reader *bufio.Reader, prompt string) int {
	for {
		fmt.Print(prompt)
		line, _ := reader.ReadString('\n')
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n
		}
	}
}

func printLines(game takesix.Game) {
	fmt.Println()
	for _, l := range game.Lines {
		fmt.Printf("line %d: %v\n", l.ID, l.Cards)
	}
}

func playerByID(game takesix.Game, playerID string) takesix.Player {
	for _, p := range game.Players {
		if p.PlayerID == playerID {
			return p
		}
	}
	return takesix.Player{}
}
