package health

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"commabot/internal/examples"
	"commabot/internal/quiz"
	"commabot/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := storage.Open(filepath.Join(t.TempDir(), "user_data.json"), zap.NewNop())
	engine := quiz.New(store, examples.Default(), zap.NewNop(), false)
	engine.EnsureProfile("42", "Вася")
	return New(engine, zap.NewNop())
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)

	var payload struct {
		Status     string `json:"status"`
		Users      int    `json:"users"`
		Examples   int    `json:"examples"`
		TotalTests int    `json:"total_tests"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	assert.Equal(t, "ok", payload.Status)
	assert.Equal(t, 1, payload.Users)
	assert.Equal(t, examples.Default().Count(), payload.Examples)
	assert.Equal(t, 0, payload.TotalTests)
}

func TestRoot(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
}
