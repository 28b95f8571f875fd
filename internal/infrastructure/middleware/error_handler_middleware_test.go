package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/services"
	"alumninet/pkg/errors"
	"alumninet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorHandlerMiddleware_LogsPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	auth := services.NewAuthService("test-secret", time.Hour, 24*time.Hour)

	router := gin.New()
	router.Use(ErrorHandlerMiddleware(logger.NewContextLogger(zap.New(core))))
	router.GET("/fail", AuthMiddleware(auth), func(c *gin.Context) {
		c.Error(errors.NewNotFoundError("Post not found."))
	})

	token, err := auth.GenerateSessionToken("user-1", domain.RoleStandard)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "request failed", entries[0].Message)
	// The principal stored by the auth middleware reaches the log entry.
	assert.Equal(t, "user-1", entries[0].ContextMap()["user_id"])
}
