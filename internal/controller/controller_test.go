package controller

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	playerRedis "github.com/twitchembed/server/internal/repository/player/redis"
	"github.com/twitchembed/server/internal/repository/surface/inmemory"
	"github.com/twitchembed/server/internal/service/player"
)

type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := miniredis.RunT(t)
	rc := goredis.NewClient(&goredis.Options{
		Addr: s.Addr(),
	})
	playerRepo := playerRedis.NewRepo(rc, time.Hour)
	surfaceRepo := inmemory.NewRepo()
	playerService := player.NewService(playerRepo, surfaceRepo, nil, slog.Default())
	c := NewController(playerService, slog.Default())

	server := httptest.NewServer(c.GetMux())
	t.Cleanup(server.Close)

	return server
}

func createTestPlayer(t *testing.T, server *httptest.Server, body string) (playerID, controlToken string) {
	t.Helper()
	resp, err := http.Post(server.URL+"/api/player", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data struct {
			PlayerID     string `json:"player_id"`
			ControlToken string `json:"control_token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotEmpty(t, envelope.Data.PlayerID)
	require.NotEmpty(t, envelope.Data.ControlToken)

	return envelope.Data.PlayerID, envelope.Data.ControlToken
}

func dialSurface(t *testing.T, server *httptest.Server, playerID, token string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/player/" + playerID + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var f frame
	require.NoError(t, conn.ReadJSON(&f))

	return f
}

func TestCreatePlayerAndFetchDocument(t *testing.T) {
	server := newTestServer(t)

	playerID, _ := createTestPlayer(t, server, `{"channel":"monstercat","theme":"dark"}`)

	resp, err := http.Get(server.URL + "/player/" + playerID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), `channel: "monstercat"`)
	assert.Contains(t, body.String(), `theme: "dark"`)
}

func TestCreatePlayerValidation(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/player", "application/json", bytes.NewBufferString(`{"theme":"neon"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateClipAndFetchDocument(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/clip", "application/json",
		bytes.NewBufferString(`{"clip":"AwkwardHelplessSalamanderSwiftRage","preload":"auto"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data struct {
			PlayerID string `json:"player_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	docResp, err := http.Get(server.URL + "/player/" + envelope.Data.PlayerID)
	require.NoError(t, err)
	defer docResp.Body.Close()

	var body bytes.Buffer
	_, err = body.ReadFrom(docResp.Body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "clips.twitch.tv/embed?clip=AwkwardHelplessSalamanderSwiftRage")
	assert.Contains(t, body.String(), `preload="auto"`)
}

func TestGetUnknownPlayer(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/player/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAttachRejectsWrongToken(t *testing.T) {
	server := newTestServer(t)
	playerID, _ := createTestPlayer(t, server, `{"channel":"monstercat"}`)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/player/" + playerID + "?token=wrong"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSurfaceControlFlow(t *testing.T) {
	server := newTestServer(t)
	playerID, controlToken := createTestPlayer(t, server, `{"channel":"monstercat"}`)

	conn := dialSurface(t, server, playerID, controlToken)

	// attach loads the current document
	load := readFrame(t, conn)
	require.Equal(t, "LOAD", load.Type)
	var loadPayload struct {
		Document string `json:"document"`
	}
	require.NoError(t, json.Unmarshal(load.Payload, &loadPayload))
	assert.Contains(t, loadPayload.Document, `channel: "monstercat"`)

	// commands before READY are queued, then drained in order
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "SET_VOLUME", "payload": map[string]any{"level": 0.2}}))
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "PAUSE"}))
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "READY"}))

	var evalPayload struct {
		Script string `json:"script"`
	}

	eval := readFrame(t, conn)
	require.Equal(t, "EVAL", eval.Type)
	require.NoError(t, json.Unmarshal(eval.Payload, &evalPayload))
	assert.Equal(t, `dispatch(function (p) { p.setVolume(0.2); });`, evalPayload.Script)

	eval = readFrame(t, conn)
	require.Equal(t, "EVAL", eval.Type)
	require.NoError(t, json.Unmarshal(eval.Payload, &evalPayload))
	assert.Equal(t, `dispatch(function (p) { p.pause(); });`, evalPayload.Script)

	// after READY commands execute immediately
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "SET_CHANNEL", "payload": map[string]any{"channel": "bobross"}}))
	eval = readFrame(t, conn)
	require.Equal(t, "EVAL", eval.Type)
	require.NoError(t, json.Unmarshal(eval.Payload, &evalPayload))
	assert.Equal(t, `dispatch(function (p) { p.setChannel("bobross"); });`, evalPayload.Script)
}

func TestReconfigurePushesLoadAndDropsQueue(t *testing.T) {
	server := newTestServer(t)
	playerID, controlToken := createTestPlayer(t, server, `{"channel":"monstercat"}`)

	conn := dialSurface(t, server, playerID, controlToken)
	readFrame(t, conn) // initial LOAD

	// queue a command against the first document
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "PAUSE"}))

	// give the server a moment to queue before reloading
	time.Sleep(100 * time.Millisecond)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/player/"+playerID+"/reconfigure",
		bytes.NewBufferString(`{"video":"1337"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	load := readFrame(t, conn)
	require.Equal(t, "LOAD", load.Type)
	var loadPayload struct {
		Document string `json:"document"`
	}
	require.NoError(t, json.Unmarshal(load.Payload, &loadPayload))
	assert.Contains(t, loadPayload.Document, `video: "1337"`)

	// READY on the new document: the pre-reload PAUSE must not run
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "READY"}))
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "PLAY"}))

	eval := readFrame(t, conn)
	require.Equal(t, "EVAL", eval.Type)
	var evalPayload struct {
		Script string `json:"script"`
	}
	require.NoError(t, json.Unmarshal(eval.Payload, &evalPayload))
	assert.Equal(t, `dispatch(function (p) { p.play(); });`, evalPayload.Script, "queued pre-reload command must be dropped")
}

func TestRemovePlayer(t *testing.T) {
	server := newTestServer(t)
	playerID, _ := createTestPlayer(t, server, `{"channel":"monstercat"}`)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/player/"+playerID, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	docResp, err := http.Get(server.URL + "/player/" + playerID)
	require.NoError(t, err)
	docResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, docResp.StatusCode)
}
