// Package server exposes the lobby and game rooms over HTTP and
// websockets.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/nightable/gamenight/engine"
	"github.com/nightable/gamenight/store"
	qrcode "github.com/skip2/go-qrcode"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Name string `json:"name"`
	Game string `json:"game"`
}

type PendingGameRes struct {
	GameID   string   `json:"game_id"`
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Game     string   `json:"game"`
	Admin    bool     `json:"is_admin"`
	Players  []string `json:"players,omitempty"`
}

type JoinGameReq struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
}

type GetGameRes struct {
	GameID string `json:"game_id"`
	Game   string `json:"game"`
	Status string `json:"status"`
}

// GameServer is a game server
type GameServer struct {
	store  store.GameStore
	config Config
	http.Server
}

// NewGameID generates a six-letter room code.
func NewGameID(r *rand.Rand) string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	code := make([]byte, 6)
	for i := range code {
		code[i] = letters[r.Intn(len(letters))]
	}
	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(st store.GameStore, cfg Config) *GameServer {
	s := &GameServer{store: st, config: cfg}

	router := httprouter.New()
	router.POST("/new", s.HandleNewGame)
	router.POST("/join", s.HandleJoinGame)
	router.GET("/game/:gameID", s.HandleFindGame)
	router.GET("/game/:gameID/qr", s.HandleQR)
	router.GET("/ws/:gameID", s.HandleWS)

	s.Handler = handlers.RecoveryHandler()(
		handlers.CombinedLoggingHandler(os.Stdout,
			handlers.CORS(
				handlers.AllowedOrigins([]string{"*"}),
				handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
				handlers.AllowedHeaders([]string{"Content-Type"}),
			)(router)))
	s.Addr = cfg.Addr()

	return s
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}
	if data.Name == "" {
		writeBadRequest(w, "Missing player name")
		return
	}

	kind, ok := engine.KindFromName(data.Game)
	if !ok {
		writeBadRequest(w, fmt.Sprintf("unknown game %q", data.Game))
		return
	}

	gameID := NewGameID(rand.New(rand.NewSource(time.Now().UnixNano())))
	playerID := engine.NewID()

	game, err := engine.New(engine.Opts{
		GameID:    gameID,
		CreatorID: playerID,
		Kind:      kind,
	})
	if err != nil {
		writeInternalError(err, w)
		return
	}

	go game.Listen()

	if err := g.store.AddInactiveGame(game); err != nil {
		writeInternalError(err, w)
		return
	}
	if err := g.store.AddPendingPlayer(gameID, playerID, data.Name); err != nil {
		writeInternalError(err, w)
		return
	}

	writeJSON(w, http.StatusCreated, PendingGameRes{
		GameID:   gameID,
		PlayerID: playerID,
		Name:     data.Name,
		Game:     kind.String(),
		Admin:    true,
	})
}

// HandleJoinGame adds a pending player to an existing game.
func (g *GameServer) HandleJoinGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var data JoinGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	if data.GameID == "" {
		writeBadRequest(w, "Missing game ID")
		return
	}
	if data.Name == "" {
		writeBadRequest(w, "Missing player name")
		return
	}

	game := g.store.FindInactiveGame(data.GameID)
	if game == nil {
		writeBadRequest(w, unknownGameIDMsg(data.GameID))
		return
	}

	playerID := engine.NewID()
	if err := g.store.AddPendingPlayer(data.GameID, playerID, data.Name); err != nil {
		writeInternalError(err, w)
		return
	}

	playerNames := []string{}
	for _, info := range g.store.PendingPlayers(data.GameID) {
		playerNames = append(playerNames, info.Name)
	}

	writeJSON(w, http.StatusOK, PendingGameRes{
		GameID:   data.GameID,
		PlayerID: playerID,
		Name:     data.Name,
		Game:     game.Kind().String(),
		Players:  playerNames,
	})
}

// HandleFindGame reports whether a game exists and its status.
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameID")

	game := g.store.FindGame(gameID)
	if game == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	writeJSON(w, http.StatusOK, GetGameRes{
		GameID: gameID,
		Game:   game.Kind().String(),
		Status: game.PlayState().String(),
	})
}

// HandleQR serves a PNG QR code pointing at the game's join URL.
func (g *GameServer) HandleQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameID")

	if g.store.FindGame(gameID) == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	url := fmt.Sprintf("%s/game/%s", g.config.BaseURL(), gameID)

	png, err := qrcode.Encode(url, qrcode.Medium, 320)
	if err != nil {
		writeInternalError(err, w)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS upgrades a pending player's connection and attaches them to
// their game.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameID")
	playerID := r.URL.Query().Get("playerID")

	if playerID == "" {
		writeBadRequest(w, "Missing player ID")
		return
	}

	game := g.store.FindGame(gameID)
	if game == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	pending := g.store.FindPendingPlayer(gameID, playerID)
	if pending == nil {
		writeBadRequest(w, "player has not joined this game")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade error: %s", err)
		return
	}

	player := engine.NewWSPlayer(pending.PlayerID, pending.Name, conn)
	if err := game.AddPlayer(player); err != nil {
		log.Printf("could not add player %s to game %s: %s", playerID, gameID, err)
		conn.Close()
		return
	}

	go readPump(conn, game, playerID)
}

// readPump relays a player's messages into the game engine until the
// connection drops.
func readPump(conn *websocket.Conn, game engine.GameEngine, playerID string) {
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		msg, err := parseInboundMessage(data)
		if err != nil {
			log.Printf("ignoring malformed message from %s: %s", playerID, err)
			continue
		}

		// The connection, not the client, is the identity authority.
		msg.PlayerID = playerID
		game.Receive(msg)
	}
}
