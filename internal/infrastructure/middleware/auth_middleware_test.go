package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(t *testing.T, auth services.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(auth), func(c *gin.Context) {
		userID, ok := PrincipalID(c)
		require.True(t, ok)
		role, ok := PrincipalRole(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	return router
}

func doRequest(router *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	auth := services.NewAuthService("test-secret", time.Hour, 24*time.Hour)
	router := authTestRouter(t, auth)

	for _, header := range []string{"", "Basic abc", "bearer lowercase"} {
		w := doRequest(router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Access Denied", body["message"])
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := services.NewAuthService("test-secret", time.Hour, 24*time.Hour)
	router := authTestRouter(t, auth)

	other := services.NewAuthService("other-secret", time.Hour, 24*time.Hour)
	forged, err := other.GenerateSessionToken("user-1", domain.RoleStandard)
	require.NoError(t, err)

	for _, token := range []string{"garbage", forged} {
		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid Token", body["message"])
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := services.NewAuthService("test-secret", time.Hour, 24*time.Hour)
	router := authTestRouter(t, auth)

	token, err := auth.GenerateSessionToken("user-1", domain.RoleAdmin)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body["userId"])
	assert.Equal(t, "ADMIN", body["role"])
}
