package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alumninet/internal/core/services"
	"alumninet/internal/infrastructure/middleware"
	"alumninet/internal/infrastructure/repositories/memory"
	"alumninet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := services.NewAuthService("test-secret", time.Hour, 24*time.Hour)
	users := services.NewUserService(memory.NewMemoryUserRepository(), auth)
	handler := NewUserHandler(users, auth, NopMetrics{})

	router := gin.New()
	router.Use(middleware.ErrorHandlerMiddleware(logger.NewContextLogger(zap.NewNop())))
	handler.SetupRoutes(router, middleware.AuthMiddleware(auth))
	return router
}

func postJSON(router *gin.Engine, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func signupBody() gin.H {
	return gin.H{
		"username":  "jsmith",
		"firstname": "Jane",
		"lastname":  "Smith",
		"email":     "jane@example.com",
		"password":  "secret-password",
	}
}

func TestUserHandler_Signup(t *testing.T) {
	router := newUserRouter(t)

	w, env := postJSON(router, http.MethodPost, "/api/v1/user/signup", signupBody(), "")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, env.Status)
	assert.Equal(t, "User created successfully.", env.Message)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data["token"])
}

func TestUserHandler_Signup_ValidationAccumulates(t *testing.T) {
	router := newUserRouter(t)

	w, env := postJSON(router, http.MethodPost, "/api/v1/user/signup", gin.H{
		"username": "x y",
		"email":    "not-an-email",
		"password": "short",
	}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", env.Message)

	var fields []struct {
		Field string `json:"field"`
		Issue string `json:"issue"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &fields))

	seen := make(map[string]bool)
	for _, f := range fields {
		seen[f.Field] = true
	}
	// Every invalid field is reported in one response, not just the first.
	for _, field := range []string{"username", "firstname", "lastname", "email", "password"} {
		assert.True(t, seen[field], "missing field error for %q", field)
	}
}

func TestUserHandler_Signup_DuplicateUsername(t *testing.T) {
	router := newUserRouter(t)

	_, _ = postJSON(router, http.MethodPost, "/api/v1/user/signup", signupBody(), "")

	body := signupBody()
	body["email"] = "other@example.com"
	w, env := postJSON(router, http.MethodPost, "/api/v1/user/signup", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already exists.", env.Message)
}

func TestUserHandler_Signin(t *testing.T) {
	router := newUserRouter(t)

	_, _ = postJSON(router, http.MethodPost, "/api/v1/user/signup", signupBody(), "")

	w, env := postJSON(router, http.MethodPost, "/api/v1/user/signin", gin.H{
		"username": "jsmith",
		"password": "secret-password",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Signin successful.", env.Message)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data["token"])
}

func TestUserHandler_Signin_WrongPassword(t *testing.T) {
	router := newUserRouter(t)

	_, _ = postJSON(router, http.MethodPost, "/api/v1/user/signup", signupBody(), "")

	w, env := postJSON(router, http.MethodPost, "/api/v1/user/signin", gin.H{
		"username": "jsmith",
		"password": "wrong-password",
	}, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Username or password incorrect.", env.Message)
}

func TestUserHandler_Update_RequiresToken(t *testing.T) {
	router := newUserRouter(t)

	w, env := postJSON(router, http.MethodPut, "/api/v1/user/update", gin.H{"bio": "hello"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access Denied", env.Message)
}

func TestUserHandler_Update_ImmutableIdentity(t *testing.T) {
	router := newUserRouter(t)

	_, signup := postJSON(router, http.MethodPost, "/api/v1/user/signup", signupBody(), "")
	var data map[string]string
	require.NoError(t, json.Unmarshal(signup.Data, &data))
	token := data["token"]

	w, env := postJSON(router, http.MethodPut, "/api/v1/user/update", gin.H{
		"username": "newname",
	}, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username and email cannot be changed.", env.Message)
}

func TestUserHandler_Update(t *testing.T) {
	router := newUserRouter(t)

	_, signup := postJSON(router, http.MethodPost, "/api/v1/user/signup", signupBody(), "")
	var data map[string]string
	require.NoError(t, json.Unmarshal(signup.Data, &data))
	token := data["token"]

	w, env := postJSON(router, http.MethodPut, "/api/v1/user/update", gin.H{
		"bio":      "Alumni of 2015",
		"company":  "Acme",
		"location": "Berlin",
	}, token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User updated successfully.", env.Message)

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "Alumni of 2015", user["bio"])
	assert.Equal(t, "Acme", user["company"])
}

func TestUserHandler_Delete(t *testing.T) {
	router := newUserRouter(t)

	_, signup := postJSON(router, http.MethodPost, "/api/v1/user/signup", signupBody(), "")
	var data map[string]string
	require.NoError(t, json.Unmarshal(signup.Data, &data))
	token := data["token"]

	w, env := postJSON(router, http.MethodDelete, "/api/v1/user/delete", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted successfully.", env.Message)

	w, env = postJSON(router, http.MethodPost, "/api/v1/user/signin", gin.H{
		"username": "jsmith",
		"password": "secret-password",
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Username or password incorrect.", env.Message)
}
