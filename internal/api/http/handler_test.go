package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"encircle/internal/api/ws"
	"encircle/internal/config"
	"encircle/internal/room"
	"encircle/internal/store"
)

func newTestRouter(t *testing.T, maxRooms int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Board.Rows, cfg.Board.Cols = 4, 4
	cfg.Rooms.Max = maxRooms

	log := zap.NewNop()
	rm := room.NewManager(store.NewMemoryStore(), cfg, nil, log)
	hub := ws.NewHub(rm, log)
	rm.SetHub(hub)
	return SetupRouter(rm, hub, cfg, log)
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func createRoom(t *testing.T, r *gin.Engine) string {
	t.Helper()
	status, body := do(t, r, http.MethodPost, "/rooms", nil)
	require.Equal(t, http.StatusCreated, status, body)
	code, ok := body["roomCode"].(string)
	require.True(t, ok)
	return code
}

func TestGetConfig(t *testing.T) {
	r := newTestRouter(t, 5)
	status, body := do(t, r, http.MethodGet, "/config", nil)
	require.Equal(t, http.StatusOK, status)

	board := body["board"].(map[string]interface{})
	assert.EqualValues(t, 4, board["rows"])
	assert.EqualValues(t, 0.4, board["hitRadius"])
	players := body["players"].(map[string]interface{})
	assert.Equal(t, "Mino", players["blue"])
}

func TestCreateRoom(t *testing.T) {
	r := newTestRouter(t, 5)

	status, body := do(t, r, http.MethodPost, "/rooms", CreateRoomRequest{Rows: 6, Cols: 7, Red: "Kai"})
	require.Equal(t, http.StatusCreated, status)
	state := body["room"].(map[string]interface{})["state"].(map[string]interface{})
	assert.EqualValues(t, 6, state["rows"])
	assert.EqualValues(t, 7, state["cols"])
	assert.Equal(t, "Kai", state["names"].(map[string]interface{})["red"])
	assert.Equal(t, "blue", state["current"])

	status, body = do(t, r, http.MethodPost, "/rooms", CreateRoomRequest{Rows: 2})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "invalid payload")
}

func TestTooManyRooms(t *testing.T) {
	r := newTestRouter(t, 1)
	createRoom(t, r)
	status, _ := do(t, r, http.MethodPost, "/rooms", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestUnknownRoom(t *testing.T) {
	r := newTestRouter(t, 5)
	for _, path := range []string{"/rooms/NOPE42", "/rooms/NOPE42/borders"} {
		status, body := do(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.Contains(t, body["error"], "room not found")
	}
	status, _ := do(t, r, http.MethodPost, "/rooms/NOPE42/points", gin.H{"i": 0, "j": 0})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPlaceAndCapture(t *testing.T) {
	r := newTestRouter(t, 5)
	code := createRoom(t, r)
	points := "/rooms/" + code + "/points"

	for _, mv := range [][2]int{{1, 1}, {2, 1}, {2, 0}, {0, 3}, {2, 2}, {0, 2}} {
		status, body := do(t, r, http.MethodPost, points, gin.H{"i": mv[0], "j": mv[1]})
		require.Equal(t, http.StatusOK, status, body)
	}

	status, body := do(t, r, http.MethodPost, points, gin.H{"i": 3, "j": 1})
	require.Equal(t, http.StatusOK, status)
	result := body["result"].(map[string]interface{})
	assert.Equal(t, "blue", result["player"])
	assert.EqualValues(t, 1, result["scoreDelta"])
	assert.Equal(t, []interface{}{[]interface{}{2.0, 1.0}}, result["captured"])
	state := body["state"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"blue": 1.0, "red": 0.0}, state["scores"])
	assert.Equal(t, "red", state["current"])
	assert.EqualValues(t, 7, state["moves"], "state is the one taken with this placement")

	status, body = do(t, r, http.MethodGet, "/rooms/"+code+"/borders", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["borders"], 1)
}

func TestPlaceRejections(t *testing.T) {
	r := newTestRouter(t, 5)
	code := createRoom(t, r)
	points := "/rooms/" + code + "/points"

	tests := []struct {
		name   string
		body   interface{}
		status int
	}{
		{name: "first placement", body: gin.H{"i": 0, "j": 0}, status: http.StatusOK},
		{name: "occupied", body: gin.H{"i": 0, "j": 0}, status: http.StatusConflict},
		{name: "out of bounds", body: gin.H{"i": 4, "j": 0}, status: http.StatusBadRequest},
		{name: "negative", body: gin.H{"i": 0, "j": -1}, status: http.StatusBadRequest},
		{name: "missing j", body: gin.H{"i": 1}, status: http.StatusBadRequest},
		{name: "not a number", body: gin.H{"i": "a", "j": 1}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, r, http.MethodPost, points, tt.body)
			assert.Equal(t, tt.status, status, body)
		})
	}

	status, body := do(t, r, http.MethodGet, "/rooms/"+code, nil)
	require.Equal(t, http.StatusOK, status)
	state := body["room"].(map[string]interface{})["state"].(map[string]interface{})
	assert.EqualValues(t, 1, state["moves"], "rejections leave the game untouched")
	assert.Equal(t, "red", state["current"])
}

func TestReset(t *testing.T) {
	r := newTestRouter(t, 5)
	code := createRoom(t, r)

	status, _ := do(t, r, http.MethodPost, "/rooms/"+code+"/points", gin.H{"i": 1, "j": 1})
	require.Equal(t, http.StatusOK, status)

	status, body := do(t, r, http.MethodPost, "/rooms/"+code+"/reset", nil)
	require.Equal(t, http.StatusOK, status)
	state := body["state"].(map[string]interface{})
	assert.Empty(t, state["points"])
	assert.EqualValues(t, 0, state["moves"])
	assert.Equal(t, "blue", state["current"])
}
