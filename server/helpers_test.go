package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/eights/deck"
	"github.com/minaorangina/eights/engine"
	"github.com/minaorangina/eights/game"
	utils "github.com/minaorangina/eights/internal"
	"github.com/minaorangina/eights/protocol"
	"github.com/minaorangina/eights/store"
	"github.com/sirupsen/logrus"
)

const serverTestTimeout = 2 * time.Second

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestGameServer(t *testing.T, s store.GameStore) *GameServer {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return NewServer(ctx, s, ServerOpts{Seed: 3, Log: quietLogger()})
}

func newTestGame(t *testing.T, opts engine.GameEngineOpts) engine.GameEngine {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	opts.Log = quietLogger()
	game, err := engine.NewGameEngine(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	return game
}

// newServerWithInactiveGame returns a GameServer with an inactive game
// and some hard-coded values
func newServerWithInactiveGame(t *testing.T) (*GameServer, *store.InMemoryGameStore, string) {
	t.Helper()
	gameID := "some-pending-id"
	game := newTestGame(t, engine.GameEngineOpts{GameID: gameID, CreatorID: "hersha-1"})

	str := &store.InMemoryGameStore{
		Games: map[string]engine.GameEngine{
			gameID: game,
		},
		PendingPlayers: map[string][]protocol.PlayerInfo{
			gameID: {
				{
					PlayerID: "hersha-1",
					Name:     "Hersha",
				},
				{
					PlayerID: "pending-player-id",
					Name:     "Penelope",
				},
			},
		},
	}

	return newTestGameServer(t, str), str, gameID
}

// newServerWithActiveGame returns a store holding a game already dealt to
// the default table, plus a latecomer who joined before the deal but never
// got a seat
func newServerWithActiveGame(t *testing.T) (*store.InMemoryGameStore, string) {
	t.Helper()
	gameID := "some-active-id"

	s, err := game.Start(game.StartOptions{Rand: deck.NewRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	ge := newTestGame(t, engine.GameEngineOpts{GameID: gameID, CreatorID: "p1", State: &s})

	str := &store.InMemoryGameStore{
		Games: map[string]engine.GameEngine{gameID: ge},
		PendingPlayers: map[string][]protocol.PlayerInfo{
			gameID: {
				{PlayerID: "p1", Name: "You"},
				{PlayerID: "latecomer-1", Name: "Lola"},
			},
		},
	}

	return str, gameID
}

// newTestServer starts and returns a new server.
// The caller must call close to shut it down.
func newTestServer(t *testing.T, s store.GameStore) *httptest.Server {
	return httptest.NewServer(newTestGameServer(t, s))
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newJoinGameRequest(data []byte) *http.Request {
	var request *http.Request
	if data == nil {
		request, _ = http.NewRequest(http.MethodPost, "/join", bytes.NewBuffer([]byte{}))
	} else {
		request, _ = http.NewRequest(http.MethodPost, "/join", bytes.NewBuffer(data))
	}
	return request
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func readPendingGameResponse(t *testing.T, body *bytes.Buffer) PendingGameRes {
	t.Helper()
	bodyBytes, err := ioutil.ReadAll(body)
	utils.AssertNoError(t, err)

	var got PendingGameRes
	err = json.Unmarshal(bodyBytes, &got)
	if err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	return got
}

func assertPendingGameResponse(t *testing.T, body *bytes.Buffer, want string) PendingGameRes {
	t.Helper()
	got := readPendingGameResponse(t, body)

	if got.Name != want {
		t.Errorf("got %s, want %s", got.Name, want)
	}
	if len(got.GameID) == 0 {
		t.Error("expected a game id")
	}
	if len(got.PlayerID) == 0 {
		t.Error("expected a player id")
	}
	return got
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)

	if err != nil {
		var body []byte
		var code int
		if resp != nil {
			body, _ = ioutil.ReadAll(resp.Body)
			code = resp.StatusCode
		}
		t.Fatalf("could not open a ws connection on %s, code %d: %s, %v", url, code, body, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

func makeWSUrl(serverURL, gameID, playerID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") +
		"/ws?game_id=" + gameID + "&player_id=" + playerID
}

// readUntil reads messages from ws until one matches
func readUntil(t *testing.T, ws *websocket.Conn, match func(protocol.OutboundMessage) bool) protocol.OutboundMessage {
	t.Helper()

	deadline := time.Now().Add(serverTestTimeout)
	for {
		ws.SetReadDeadline(deadline)
		_, data, err := ws.ReadMessage()
		if err != nil {
			t.Fatalf("no matching message: %v", err)
		}

		var msg protocol.OutboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("could not unmarshal message: %v", err)
		}
		if match(msg) {
			return msg
		}
	}
}

func mustSend(t *testing.T, ws *websocket.Conn, msg protocol.InboundMessage) {
	t.Helper()
	if err := ws.WriteJSON(msg); err != nil {
		t.Fatal(err)
	}
}
