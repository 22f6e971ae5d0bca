package messaging

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"kejaspace/internal/pkg/response"
	"kejaspace/internal/pkg/validator"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterProtected mounts messaging routes. All of them require an
// authenticated account.
func (h *Handler) RegisterProtected(rg *gin.RouterGroup) {
	rg.POST("/conversations", h.CreateConversation)
	rg.GET("/conversations", h.ListConversations)
	rg.GET("/conversations/:id/messages", h.GetMessages)
	rg.POST("/messages", h.SendMessage)
	rg.GET("/ws", h.ServeWS)
}

func (h *Handler) CreateConversation(c *gin.Context) {
	accountID := c.GetString("account_id")

	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ValidationError(c, details)
		return
	}

	conv, err := h.service.CreateConversation(c.Request.Context(), accountID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfConversation):
			response.Error(c, http.StatusBadRequest, "Cannot start a conversation with yourself")
		case errors.Is(err, ErrParticipantNotFound):
			response.Error(c, http.StatusNotFound, "Participant not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Failed to create conversation")
		}
		return
	}

	c.JSON(http.StatusCreated, conv)
}

func (h *Handler) ListConversations(c *gin.Context) {
	accountID := c.GetString("account_id")

	conversations, err := h.service.ListConversations(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch conversations")
		return
	}

	c.JSON(http.StatusOK, conversations)
}

func (h *Handler) GetMessages(c *gin.Context) {
	accountID := c.GetString("account_id")

	messages, err := h.service.GetMessages(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrConversationNotFound):
			response.Error(c, http.StatusNotFound, "Conversation not found")
		case errors.Is(err, ErrNotParticipant):
			response.Error(c, http.StatusForbidden, "Not a participant of this conversation")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Failed to fetch messages")
		}
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *Handler) SendMessage(c *gin.Context) {
	accountID := c.GetString("account_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ValidationError(c, details)
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), accountID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrConversationNotFound):
			response.Error(c, http.StatusNotFound, "Conversation not found")
		case errors.Is(err, ErrNotParticipant):
			response.Error(c, http.StatusForbidden, "Not a participant of this conversation")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ServeWS upgrades the request to a websocket and keeps it open until
// the client disconnects. Incoming frames are read and discarded; the
// socket exists for server push of new messages.
func (h *Handler) ServeWS(c *gin.Context) {
	accountID := c.GetString("account_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(accountID, conn)
	defer h.hub.Unregister(accountID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
