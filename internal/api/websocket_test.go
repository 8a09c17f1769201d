package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWebSocket(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(s.Router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readReply(t *testing.T, conn *websocket.Conn) ChatResponse {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var resp ChatResponse
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestWebSocketChatTurn(t *testing.T) {
	s := newTestServer(t)
	conn := dialWebSocket(t, s)

	require.NoError(t, conn.WriteJSON(wsMessage{Message: "Hello"}))

	resp := readReply(t, conn)
	assert.Equal(t, "Welcome!", resp.Reply)
	assert.Equal(t, "external", resp.Role)
	assert.NotEmpty(t, resp.SessionID)
}

func TestWebSocketKeepsSession(t *testing.T) {
	s := newTestServer(t)
	conn := dialWebSocket(t, s)

	require.NoError(t, conn.WriteJSON(wsMessage{Message: "Hello"}))
	first := readReply(t, conn)
	require.NotEmpty(t, first.SessionID)

	// The connection remembers the session for the next turn
	require.NoError(t, conn.WriteJSON(wsMessage{Message: "And the menu?"}))
	second := readReply(t, conn)
	assert.Equal(t, first.SessionID, second.SessionID)

	// An explicit session ID from the client wins
	require.NoError(t, conn.WriteJSON(wsMessage{Message: "Hi again", SessionID: "session-42"}))
	third := readReply(t, conn)
	assert.Equal(t, "session-42", third.SessionID)
}

func TestWebSocketRejectsEmptyMessage(t *testing.T) {
	s := newTestServer(t)
	conn := dialWebSocket(t, s)

	require.NoError(t, conn.WriteJSON(wsMessage{}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var resp map[string]string
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Contains(t, resp["error"], "message is required")
}

// Back-to-back messages on one connection must not corrupt the session
// state; every turn gets a reply.
func TestWebSocketConcurrentMessages(t *testing.T) {
	s := newTestServer(t)
	conn := dialWebSocket(t, s)

	const turns = 5
	for i := 0; i < turns; i++ {
		require.NoError(t, conn.WriteJSON(wsMessage{Message: "Hello"}))
	}

	for i := 0; i < turns; i++ {
		resp := readReply(t, conn)
		assert.Equal(t, "Welcome!", resp.Reply)
		assert.NotEmpty(t, resp.SessionID)
	}
}
