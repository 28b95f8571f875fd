package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/services"
	"alumninet/internal/infrastructure/middleware"
	"alumninet/internal/infrastructure/repositories/memory"
	"alumninet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newNetworkRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := memory.NewMemoryUserRepository()
	require.NoError(t, userRepo.Create(context.Background(), &domain.User{
		ID:        "alice",
		Username:  "alice",
		Firstname: "Alice",
		Lastname:  "Smith",
		Email:     "alice@example.com",
		Role:      domain.RoleStandard,
	}))

	auth := services.NewAuthService("test-secret", time.Hour, 24*time.Hour)
	handler := NewNetworkHandler(services.NewNetworkService(userRepo))

	router := gin.New()
	router.Use(middleware.ErrorHandlerMiddleware(logger.NewContextLogger(zap.NewNop())))
	handler.SetupRoutes(router, middleware.AuthMiddleware(auth))
	return router
}

func getEnvelope(router *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestNetworkHandler_Search_RequiresQuery(t *testing.T) {
	router := newNetworkRouter(t)

	w, env := getEnvelope(router, "/api/v1/network/search")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", env.Message)

	var fields []struct {
		Field string `json:"field"`
		Issue string `json:"issue"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "searchQuery", fields[0].Field)
}

func TestNetworkHandler_Search(t *testing.T) {
	router := newNetworkRouter(t)

	w, env := getEnvelope(router, "/api/v1/network/search?searchQuery=ali")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Users found.", env.Message)

	var profiles []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &profiles))
	require.Len(t, profiles, 1)
	assert.Equal(t, "alice", profiles[0]["id"])
}
