package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/eights/deck"
	"github.com/minaorangina/eights/engine"
	"github.com/minaorangina/eights/players"
	"github.com/minaorangina/eights/protocol"
	"github.com/minaorangina/eights/store"
	"github.com/sirupsen/logrus"
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
}

type PendingGameRes struct {
	GameID   string   `json:"game_id"`
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Admin    bool     `json:"is_admin"`
	Players  []string `json:"players"`
}

type JoinGameReq struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
}

type GetGameRes struct {
	Status  string                `json:"status"`
	GameID  string                `json:"game_id"`
	Players []protocol.PlayerInfo `json:"players"`
}

type ServerOpts struct {
	// BotDelay is passed to every new game
	BotDelay time.Duration
	// Seed fixes the shuffle of every new game. Zero shuffles randomly.
	Seed int64
	// StaticDir is served at / when set
	StaticDir string
	Log       logrus.FieldLogger
	// AccessLog receives one line per request
	AccessLog io.Writer
}

// GameServer is a game server
type GameServer struct {
	ctx   context.Context
	store store.GameStore
	opts  ServerOpts
	log   logrus.FieldLogger
	http.Server
}

// NewGameID returns a six letter game code
func NewGameID() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	var code = []byte{}

	for i := 0; i < 6; i++ {
		code = append(code, letters[rand.Intn(len(letters))])
	}

	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer. Games it creates run until ctx is done.
func NewServer(ctx context.Context, s store.GameStore, opts ServerOpts) *GameServer {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	if opts.AccessLog == nil {
		opts.AccessLog = ioutil.Discard
	}

	g := &GameServer{
		ctx:   ctx,
		store: s,
		opts:  opts,
		log:   opts.Log,
	}

	router := http.NewServeMux()

	router.Handle("/", http.HandlerFunc(g.HandleRoot))
	router.Handle("/new", http.HandlerFunc(g.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(g.HandleFindGame))
	router.Handle("/join", http.HandlerFunc(g.HandleJoinGame))
	router.Handle("/ws", http.HandlerFunc(g.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(g.log))

	g.Handler = handlers.LoggingHandler(opts.AccessLog, recovery(cors(router)))

	return g
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

func (g *GameServer) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if g.opts.StaticDir != "" {
		http.FileServer(http.Dir(g.opts.StaticDir)).ServeHTTP(w, r)
		return
	}

	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Add("Content-Type", "text/plain")
	w.Write([]byte("eights"))
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.Name == "" {
		writeText(w, http.StatusBadRequest, "Missing player name")
		return
	}

	gameID := NewGameID()
	playerID := players.NewID()
	log := g.log.WithFields(logrus.Fields{"game_id": gameID, "player_id": playerID})

	game, err := engine.NewGameEngine(g.ctx, engine.GameEngineOpts{
		GameID:    gameID,
		CreatorID: playerID,
		BotDelay:  g.opts.BotDelay,
		Rand:      deck.NewRand(g.opts.Seed),
		Log:       g.log,
	})
	if err != nil {
		log.WithError(err).Error("could not create game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := g.store.AddInactiveGame(game); err != nil {
		log.WithError(err).Error("could not store game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := g.store.AddPendingPlayer(gameID, playerID, data.Name); err != nil {
		log.WithError(err).Error("could not add creator")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.Info("game created")

	writeJSON(w, http.StatusCreated, PendingGameRes{
		GameID:   gameID,
		PlayerID: playerID,
		Name:     data.Name,
		Admin:    true,
		Players:  []string{data.Name},
	})
}

func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		writeText(w, http.StatusBadRequest, "missing game ID")
		return
	}

	game := g.store.FindGame(gameID)
	if game == nil {
		writeText(w, http.StatusNotFound, unknownGameIDMsg(gameID))
		return
	}

	writeJSON(w, http.StatusOK, GetGameRes{
		Status:  game.PlayState().String(),
		GameID:  gameID,
		Players: game.Players().Info(),
	})
}

func (g *GameServer) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data JoinGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()

	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.GameID == "" {
		writeText(w, http.StatusBadRequest, "Missing game ID")
		return
	}

	if data.Name == "" {
		writeText(w, http.StatusBadRequest, "Missing player name")
		return
	}

	if g.store.FindGame(data.GameID) == nil {
		writeText(w, http.StatusBadRequest, unknownGameIDMsg(data.GameID))
		return
	}
	if g.store.FindInactiveGame(data.GameID) == nil {
		writeText(w, http.StatusConflict, engine.ErrGameAlreadyStarted.Error())
		return
	}

	playerID := players.NewID()

	err = g.store.AddPendingPlayer(data.GameID, playerID, data.Name)
	switch {
	case errors.Is(err, store.ErrUnknownGameID):
		writeText(w, http.StatusBadRequest, unknownGameIDMsg(data.GameID))
		return
	case errors.Is(err, engine.ErrGameAlreadyStarted), errors.Is(err, engine.ErrGameFull):
		writeText(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		g.log.WithError(err).WithField("game_id", data.GameID).Error("could not add player")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	playerNames := []string{}
	for _, info := range g.store.FindPendingPlayers(data.GameID) {
		playerNames = append(playerNames, info.Name)
	}

	writeJSON(w, http.StatusOK, PendingGameRes{
		PlayerID: playerID,
		GameID:   data.GameID,
		Name:     data.Name,
		Players:  playerNames,
	})
}

// HandleWS connects a pending player to their game. Seated players may
// reconnect after the game has started.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	gameID := query.Get("game_id")
	if gameID == "" {
		writeText(w, http.StatusBadRequest, "missing game ID")
		return
	}

	playerID := query.Get("player_id")
	if playerID == "" {
		writeText(w, http.StatusBadRequest, "missing player ID")
		return
	}

	log := g.log.WithFields(logrus.Fields{"game_id": gameID, "player_id": playerID})

	game := g.store.FindGame(gameID)
	if game == nil {
		writeText(w, http.StatusBadRequest, unknownGameIDMsg(gameID))
		return
	}

	pendingPlayer := g.store.FindPendingPlayer(gameID, playerID)
	if pendingPlayer == nil {
		writeText(w, http.StatusBadRequest, "unknown player ID")
		return
	}

	// once the cards are dealt only seated players may connect
	if active := g.store.FindActiveGame(gameID); active != nil {
		if state, ok := active.State(); ok {
			if _, seated := state.SeatByID(playerID); !seated {
				writeText(w, http.StatusConflict, engine.ErrGameAlreadyStarted.Error())
				return
			}
		}
	}

	rawConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("could not upgrade to websocket")
		return
	}

	player := players.NewWSPlayer(playerID, pendingPlayer.Name, rawConn, game, g.log)
	if err := g.store.AddPlayerToGame(gameID, player); err != nil {
		log.WithError(err).Warn("could not add player to game")
		rawConn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
			time.Now().Add(time.Second),
		)
		rawConn.Close()
		return
	}

	log.Info("player connected")
}
