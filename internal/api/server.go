// Package api exposes the chat service and tool registry over HTTP.
// Sessions authenticate with an optional bearer token; absent or
// invalid credentials fall back to the customer-facing external role.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maitred/internal/chat"
	"maitred/internal/monitoring"
	"maitred/internal/tools"
)

// Server represents the HTTP API for the restaurant assistant
type Server struct {
	Router   *gin.Engine
	chat     *chat.Service
	registry *tools.Registry
	monitor  *monitoring.Monitor
	secret   string
}

// NewServer creates the API server and configures its routes
func NewServer(chatSvc *chat.Service, registry *tools.Registry, monitor *monitoring.Monitor, jwtSecret string) *Server {
	s := &Server{
		Router:   gin.Default(),
		chat:     chatSvc,
		registry: registry,
		monitor:  monitor,
		secret:   jwtSecret,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "maitred API is running"})
	})

	s.Router.Use(roleMiddleware(s.secret))

	v1 := s.Router.Group("/api/v1")
	{
		v1.POST("/chat", s.Chat)
		v1.GET("/tools", s.ListTools)
		v1.POST("/tools/invoke", s.InvokeTool)
		v1.GET("/stats", s.Stats)
	}

	s.Router.GET("/ws", s.handleWebSocket)
}

// ChatRequest is the body of POST /api/v1/chat
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the reply to a chat turn
type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
}

func (s *Server) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := sessionRole(c)
	reply, sessionID, err := s.chat.Chat(c.Request.Context(), role, req.SessionID, req.Message)
	if err != nil {
		status, payload := errorResponse(err)
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply, SessionID: sessionID, Role: string(role)})
}

// ListTools returns the operations available to the session's role,
// with their parameter schemas.
func (s *Server) ListTools(c *gin.Context) {
	role := sessionRole(c)
	descriptors, err := s.registry.ListAvailableTools(role)
	if err != nil {
		status, payload := errorResponse(err)
		c.JSON(status, payload)
		return
	}

	type toolInfo struct {
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		Parameters  map[string]interface{} `json:"parameters"`
	}
	infos := make([]toolInfo, 0, len(descriptors))
	for _, d := range descriptors {
		infos = append(infos, toolInfo{Name: d.Name, Description: d.Description, Parameters: d.Parameters()})
	}

	c.JSON(http.StatusOK, gin.H{"role": string(role), "tools": infos})
}

// InvokeRequest is the body of POST /api/v1/tools/invoke
type InvokeRequest struct {
	Operation string                 `json:"operation" binding:"required"`
	Arguments map[string]interface{} `json:"arguments"`
}

// InvokeTool executes one operation directly, bypassing the model.
// Useful for dashboards and debugging; the same scope rules apply.
func (s *Server) InvokeTool(c *gin.Context) {
	var req InvokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.registry.Invoke(c.Request.Context(), sessionRole(c), req.Operation, req.Arguments)
	if err != nil {
		status, payload := errorResponse(err)
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) Stats(c *gin.Context) {
	if s.monitor == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, s.monitor.Stats())
}

// errorResponse maps registry error kinds to HTTP statuses
func errorResponse(err error) (int, gin.H) {
	payload := gin.H{"error": err.Error()}
	if kind := tools.KindOf(err); kind != "" {
		payload["kind"] = string(kind)
	}

	switch tools.KindOf(err) {
	case tools.KindForbiddenOperation:
		return http.StatusForbidden, payload
	case tools.KindUnknownOperation:
		return http.StatusNotFound, payload
	case tools.KindInvalidParameter, tools.KindUnknownRole:
		return http.StatusBadRequest, payload
	case tools.KindTimeout:
		return http.StatusGatewayTimeout, payload
	case tools.KindDataStore:
		return http.StatusBadGateway, payload
	default:
		return http.StatusInternalServerError, payload
	}
}
