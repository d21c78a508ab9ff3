package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DietPlanChatbot/internal/auth"
	"DietPlanChatbot/internal/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(tokens *auth.TokenManager) *gin.Engine {
	r := gin.New()
	whoami := func(c *gin.Context) {
		id, ok := UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok, "username": Username(c)})
	}
	r.GET("/me", AuthMiddleware(tokens), whoami)
	r.GET("/ws", QueryAuthMiddleware(tokens), whoami)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	expired := auth.NewTokenManager("secret", -time.Minute)
	r := newRouter(tokens)

	good, err := tokens.GenerateToken(7, "ann")
	require.NoError(t, err)
	old, err := expired.GenerateToken(7, "ann")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing", "", http.StatusUnauthorized, "Missing Authorization Header"},
		{"not bearer", "Token " + good, http.StatusUnauthorized, "Invalid authorization header format"},
		{"garbage", "Bearer nope", http.StatusUnauthorized, "Invalid token"},
		{"expired", "Bearer " + old, http.StatusUnauthorized, "Token has expired"},
		{"valid", "Bearer " + good, http.StatusOK, `"username":"ann"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
		})
	}
}

func TestAuthMiddleware_SetsUserID(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	token, err := tokens.GenerateToken(42, "bob")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newRouter(tokens).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42,"ok":true,"username":"bob"}`, w.Body.String())
}

func TestQueryAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := newRouter(tokens)
	token, err := tokens.GenerateToken(3, "cy")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws?token="+token, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInviteCodeMiddleware(t *testing.T) {
	ok := func(c *gin.Context) { c.Status(http.StatusCreated) }

	open := gin.New()
	open.POST("/register", InviteCodeMiddleware(""), ok)
	w := httptest.NewRecorder()
	open.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	gated := gin.New()
	gated.POST("/register", InviteCodeMiddleware("letmein"), ok)

	w = httptest.NewRecorder()
	gated.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	req.Header.Set("X-Invite-Code", "letmein")
	w = httptest.NewRecorder()
	gated.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(logging.New("info", "text", &buf), nil))
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = RequestID(c.Request.Context())
		c.Status(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)
	assert.Contains(t, buf.String(), "request_id="+id)
	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "level=WARN")

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Header().Get(RequestIDHeader))
}
