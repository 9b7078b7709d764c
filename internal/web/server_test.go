package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euplay-bot/internal/music/session"
)

func TestHealthz(t *testing.T) {
	router := NewRouter(session.NewRegistry())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "EUplay", body["app"])
}

func TestSessionsEmpty(t *testing.T) {
	router := NewRouter(session.NewRegistry())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/sessions", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Sessions []session.Info `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Sessions)
}

func TestSessionsListsActiveGuilds(t *testing.T) {
	registry := session.NewRegistry()
	registry.GetOrCreate("guild-1")
	router := NewRouter(registry)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/sessions", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Sessions []session.Info `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Sessions, 1)
	assert.Equal(t, "guild-1", body.Sessions[0].GuildID)
	assert.Equal(t, session.StateConnecting, body.Sessions[0].State)
}
