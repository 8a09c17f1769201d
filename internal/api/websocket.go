package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"maitred/internal/tools"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// wsConnection maintains one chat WebSocket connection. The role is
// fixed at upgrade time from the session's credentials.
type wsConnection struct {
	conn      *websocket.Conn
	send      chan []byte
	mu        sync.Mutex // guards send submissions and sessionID
	server    *Server
	role      tools.Role
	sessionID string
}

// wsMessage is an inbound chat message from the client
type wsMessage struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// handleWebSocket upgrades the connection and starts the pumps
func (s *Server) handleWebSocket(c *gin.Context) {
	role := sessionRole(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	wsConn := &wsConnection{
		conn:   conn,
		send:   make(chan []byte, 256),
		server: s,
		role:   role,
	}

	go wsConn.writePump()
	go wsConn.readPump()
}

// readPump pumps messages from the WebSocket connection to the chat service
func (c *wsConnection) readPump() {
	defer func() {
		c.conn.Close()
	}()

	c.conn.SetReadLimit(64 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the server to the WebSocket connection
func (c *wsConnection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage runs one chat turn for an incoming message
func (c *wsConnection) handleMessage(message []byte) {
	var req wsMessage
	if err := json.Unmarshal(message, &req); err != nil {
		c.sendError("invalid message: " + err.Error())
		return
	}
	if req.Message == "" {
		c.sendError("message is required")
		return
	}

	sessionID := c.takeSessionID(req.SessionID)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		reply, sessionID, err := c.server.chat.Chat(ctx, c.role, sessionID, req.Message)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		c.storeSessionID(sessionID)

		c.sendJSON(ChatResponse{Reply: reply, SessionID: sessionID, Role: string(c.role)})
	}()
}

// takeSessionID resolves the session for one turn: an explicit ID from
// the client wins, otherwise the connection's current session is used.
func (c *wsConnection) takeSessionID(requested string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if requested != "" {
		c.sessionID = requested
	}
	return c.sessionID
}

func (c *wsConnection) storeSessionID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = id
}

func (c *wsConnection) sendJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling response: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		log.Println("WebSocket buffer full, dropping message")
	}
}

func (c *wsConnection) sendError(message string) {
	response := map[string]string{"error": message}
	data, _ := json.Marshal(response)

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		log.Println("WebSocket buffer full, dropping error message")
	}
}
