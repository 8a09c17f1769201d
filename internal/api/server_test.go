package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"maitred/internal/chat"
	"maitred/internal/database"
	"maitred/internal/models"
	"maitred/internal/monitoring"
	"maitred/internal/store"
	"maitred/internal/tools"
)

const testSecret = "test-secret"

// fakeModel always answers with a fixed reply and no tool calls
type fakeModel struct {
	reply string
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not supported")
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	entry := models.MenuEntry{EntryID: "menu-1", Day: "2026-08-25", Location: "main",
		DishName: "Ratatouille", Category: "main", Price: 13.0, Status: "available"}
	require.NoError(t, db.Create(&entry).Error)

	registry := tools.New(store.New(db))
	monitor := monitoring.NewMonitor()
	chatSvc := chat.NewService(&fakeModel{reply: "Welcome!"}, registry, chat.WithMonitor(monitor))

	return NewServer(chatSvc, registry, monitor, testSecret)
}

func doRequest(t *testing.T, s *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestListToolsByRole(t *testing.T) {
	s := newTestServer(t)

	var external struct {
		Role  string `json:"role"`
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}

	w := doRequest(t, s, http.MethodGet, "/api/v1/tools", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &external))
	assert.Equal(t, "external", external.Role)
	assert.Len(t, external.Tools, 4)

	token, err := StaffToken(testSecret)
	require.NoError(t, err)

	var internal struct {
		Role  string `json:"role"`
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	w = doRequest(t, s, http.MethodGet, "/api/v1/tools", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &internal))
	assert.Equal(t, "internal", internal.Role)
	assert.Len(t, internal.Tools, 8)
}

func TestInvalidTokenFallsBackToExternal(t *testing.T) {
	s := newTestServer(t)

	var resp struct {
		Role string `json:"role"`
	}
	w := doRequest(t, s, http.MethodGet, "/api/v1/tools", "not-a-jwt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "external", resp.Role)
}

func TestInvokeToolScope(t *testing.T) {
	s := newTestServer(t)

	body := InvokeRequest{Operation: "get_low_stock_alerts"}

	// External sessions cannot reach internal operations
	w := doRequest(t, s, http.MethodPost, "/api/v1/tools/invoke", "", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden_operation")

	token, err := StaffToken(testSecret)
	require.NoError(t, err)
	w = doRequest(t, s, http.MethodPost, "/api/v1/tools/invoke", token, body)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInvokeToolErrors(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/v1/tools/invoke", "",
		InvokeRequest{Operation: "drop_tables"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, s, http.MethodPost, "/api/v1/tools/invoke", "",
		InvokeRequest{Operation: "query_daily_menu", Arguments: map[string]interface{}{"day": "bogus"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_parameter")

	// Missing operation fails request binding
	w = doRequest(t, s, http.MethodPost, "/api/v1/tools/invoke", "", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvokeToolResult(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/v1/tools/invoke", "",
		InvokeRequest{Operation: "query_daily_menu", Arguments: map[string]interface{}{"day": "2026-08-25"}})
	require.Equal(t, http.StatusOK, w.Code)

	var result tools.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Count)
	assert.False(t, result.Truncated)
}

func TestChatEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/v1/chat", "",
		ChatRequest{Message: "Hello"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome!", resp.Reply)
	assert.Equal(t, "external", resp.Role)
	assert.NotEmpty(t, resp.SessionID)
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/v1/chat", "", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	s := newTestServer(t)

	// A chat turn shows up in the stats
	doRequest(t, s, http.MethodPost, "/api/v1/chat", "", ChatRequest{Message: "Hello"})

	w := doRequest(t, s, http.MethodGet, "/api/v1/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Contains(t, stats, "uptime_seconds")
	turns, ok := stats["chat_turns"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), turns["external"])
}

func TestResolveRole(t *testing.T) {
	token, err := StaffToken(testSecret)
	require.NoError(t, err)

	assert.Equal(t, tools.RoleInternal, resolveRole("Bearer "+token, testSecret))
	assert.Equal(t, tools.RoleExternal, resolveRole("", testSecret))
	assert.Equal(t, tools.RoleExternal, resolveRole("Bearer garbage", testSecret))
	assert.Equal(t, tools.RoleExternal, resolveRole(token, testSecret)) // missing Bearer prefix
	assert.Equal(t, tools.RoleExternal, resolveRole("Bearer "+token, "other-secret"))

	// Without a configured secret nobody gets internal access
	assert.Equal(t, tools.RoleExternal, resolveRole("Bearer "+token, ""))
}
