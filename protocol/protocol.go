// Package protocol defines the message types exchanged between players
// and a game engine.
package protocol

// Player is the roster entry for one person in a session. Identity is
// owned by the lobby; the rules engines treat it as read-only input.
type Player struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
}

// PlayerInfo is the information from which a full Player is built once
// a pending player connects.
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// InboundMessage is a message from a player to a game engine.
type InboundMessage struct {
	PlayerID string `json:"playerID"`
	Command  Cmd    `json:"command"`
	// Command-specific fields; unused ones are omitted on the wire.
	Number   int    `json:"number,omitempty"`   // SelectCard
	LineID   int    `json:"lineID,omitempty"`   // ChooseLine
	TargetID string `json:"targetID,omitempty"` // SelectElimination
	Text     string `json:"text,omitempty"`     // SubmitGuess
}

// OutboundMessage is a message from a game engine to a player.
type OutboundMessage struct {
	PlayerID string `json:"playerID"`
	Command  Cmd    `json:"command"`
	Message  string `json:"message,omitempty"`
	Joiner   Player `json:"joiner,omitempty"`
	// State carries a per-player view of the current game state.
	State interface{} `json:"state,omitempty"`
	Error string      `json:"error,omitempty"`
}

type Cmd int

const (
	Null Cmd = iota
	NewJoiner
	Start
	HasStarted
	Error
	// Stampede commands
	SelectCard
	NextPhase
	ChooseLine
	// Chameleon commands
	RevealNext
	BeginVote
	SelectElimination
	ConfirmElimination
	SubmitGuess
	Proceed
	// shared
	Reset
	GameState
	GameOver
)

var CmdNames = map[Cmd]string{
	Null:               "Null",
	NewJoiner:          "NewJoiner",
	Start:              "Start",
	HasStarted:         "HasStarted",
	Error:              "Error",
	SelectCard:         "SelectCard",
	NextPhase:          "NextPhase",
	ChooseLine:         "ChooseLine",
	RevealNext:         "RevealNext",
	BeginVote:          "BeginVote",
	SelectElimination:  "SelectElimination",
	ConfirmElimination: "ConfirmElimination",
	SubmitGuess:        "SubmitGuess",
	Proceed:            "Proceed",
	Reset:              "Reset",
	GameState:          "GameState",
	GameOver:           "GameOver",
}

var NameToCmd = map[string]Cmd{}

func init() {
	for cmd, name := range CmdNames {
		NameToCmd[name] = cmd
	}
}

func (c Cmd) String() string {
	return CmdNames[c]
}
