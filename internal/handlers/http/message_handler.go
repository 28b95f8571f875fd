package http

import (
	"net/http"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
	"alumninet/internal/httputil"
	"alumninet/internal/infrastructure/middleware"
	"alumninet/pkg/errors"
	"alumninet/pkg/validation"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService ports.MessageService
	metrics        Metrics
}

func NewMessageHandler(messageService ports.MessageService, metrics Metrics) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		metrics:        metrics,
	}
}

func (h *MessageHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/message", auth)
	{
		api.POST("", h.Send)
		api.GET("/:otherUserId", h.Conversation)
	}
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	Attachment string `json:"attachment"`
}

func (r *SendMessageRequest) validate() error {
	v := validation.New()
	v.Require("receiverId", r.ReceiverID)
	if r.Content == "" && r.Attachment == "" {
		v.Add("content", "Either content or attachment must be provided")
	}
	if r.Attachment != "" {
		v.URL("attachment", r.Attachment)
	}
	return v.Err()
}

func (h *MessageHandler) Send(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), principal, domain.UserID(req.ReceiverID), req.Content, req.Attachment)
	if err != nil {
		c.Error(err)
		return
	}

	h.metrics.RecordMessageSent()
	httputil.Respond(c, http.StatusCreated, "Message sent successfully.", message)
}

func (h *MessageHandler) Conversation(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	other := domain.UserID(c.Param("otherUserId"))
	messages, err := h.messageService.ListConversation(c.Request.Context(), principal, other)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "Messages retrieved successfully.", messages)
}
