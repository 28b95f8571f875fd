package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/services"
	"alumninet/internal/infrastructure/middleware"
	"alumninet/internal/infrastructure/notify"
	"alumninet/internal/infrastructure/repositories/memory"
	"alumninet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMessageRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := memory.NewMemoryUserRepository()
	for _, id := range []domain.UserID{"alice", "bob"} {
		require.NoError(t, userRepo.Create(context.Background(), &domain.User{
			ID:       id,
			Username: string(id),
			Email:    string(id) + "@example.com",
			Role:     domain.RoleStandard,
		}))
	}

	auth := services.NewAuthService("test-secret", time.Hour, 24*time.Hour)
	messages := services.NewMessageService(
		memory.NewMemoryMessageRepository(),
		userRepo,
		notify.NopNotifier{},
		zap.NewNop().Sugar(),
	)
	handler := NewMessageHandler(messages, NopMetrics{})

	router := gin.New()
	router.Use(middleware.ErrorHandlerMiddleware(logger.NewContextLogger(zap.NewNop())))
	handler.SetupRoutes(router, middleware.AuthMiddleware(auth))

	token, err := auth.GenerateSessionToken("alice", domain.RoleStandard)
	require.NoError(t, err)
	return router, token
}

func TestMessageHandler_Send_RequiresContentOrAttachment(t *testing.T) {
	router, token := newMessageRouter(t)

	w, env := postJSON(router, http.MethodPost, "/api/v1/message", gin.H{
		"receiverId": "bob",
	}, token)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", env.Message)

	var fields []struct {
		Field string `json:"field"`
		Issue string `json:"issue"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "content", fields[0].Field)
	assert.Equal(t, "Either content or attachment must be provided", fields[0].Issue)
}

func TestMessageHandler_Send_ContentOnly(t *testing.T) {
	router, token := newMessageRouter(t)

	w, env := postJSON(router, http.MethodPost, "/api/v1/message", gin.H{
		"receiverId": "bob",
		"content":    "hello",
	}, token)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Message sent successfully.", env.Message)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	assert.Equal(t, "alice", msg["senderId"])
	assert.Equal(t, "bob", msg["receiverId"])
}

func TestMessageHandler_Send_AttachmentOnly(t *testing.T) {
	router, token := newMessageRouter(t)

	w, env := postJSON(router, http.MethodPost, "/api/v1/message", gin.H{
		"receiverId": "bob",
		"attachment": "https://cdn.example.com/file.pdf",
	}, token)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Message sent successfully.", env.Message)
}
