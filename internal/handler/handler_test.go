package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DietPlanChatbot/internal/auth"
	"DietPlanChatbot/internal/common"
	"DietPlanChatbot/internal/logging"
	"DietPlanChatbot/internal/models"
	"DietPlanChatbot/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAccounts struct {
	registerErr error
	loginErr    error
	profile     models.Profile
	lastUpdate  models.ProfileUpdate
	lastUserID  int64
}

func (f *fakeAccounts) Register(_ context.Context, username, password string) (models.User, error) {
	if f.registerErr != nil {
		return models.User{}, f.registerErr
	}
	return models.User{ID: 1, Username: username}, nil
}

func (f *fakeAccounts) Login(_ context.Context, username, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return "signed-token", nil
}

func (f *fakeAccounts) GetProfile(_ context.Context, userID int64) (models.Profile, error) {
	f.lastUserID = userID
	return f.profile, nil
}

func (f *fakeAccounts) UpdateProfile(_ context.Context, userID int64, u models.ProfileUpdate) (models.Profile, error) {
	f.lastUserID = userID
	f.lastUpdate = u
	return f.profile, nil
}

type fakeChat struct {
	mu      sync.Mutex
	turns   []models.ChatTurn
	fail    error
	cleared bool
}

func (f *fakeChat) SubmitMessage(_ context.Context, userID int64, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", common.ErrEmptyMessage
	}
	if f.fail != nil {
		return "", f.fail
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	reply := "re: " + message
	f.turns = append(f.turns, models.ChatTurn{ID: int64(len(f.turns) + 1), UserID: userID, Message: message, Reply: reply,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)})
	return reply, nil
}

func (f *fakeChat) GetHistory(context.Context, int64) ([]models.ChatTurn, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ChatTurn{}, f.turns...), nil
}

func (f *fakeChat) ClearHistory(context.Context, int64) error {
	if f.fail != nil {
		return f.fail
	}
	f.cleared = true
	return nil
}

type fakeVoice struct {
	disabled atomic.Bool
}

func (f *fakeVoice) Ask(_ context.Context, _ int64, audio []byte, contentType string) (string, string, error) {
	if f.disabled.Load() {
		return "", "", service.ErrVoiceDisabled
	}
	return "heard " + string(audio), "re: heard " + string(audio), nil
}

func (f *fakeVoice) Speak(_ context.Context, _ int64, turnID int64) ([]byte, error) {
	if f.disabled.Load() {
		return nil, service.ErrVoiceDisabled
	}
	if turnID != 1 {
		return nil, common.ErrNotFound
	}
	return []byte("ID3"), nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type testEnv struct {
	router   *gin.Engine
	accounts *fakeAccounts
	chat     *fakeChat
	voice    *fakeVoice
	tokens   *auth.TokenManager
	token    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		accounts: &fakeAccounts{},
		chat:     &fakeChat{},
		voice:    &fakeVoice{},
		tokens:   auth.NewTokenManager("test-secret", time.Hour),
	}
	token, err := env.tokens.GenerateToken(5, "alice")
	require.NoError(t, err)
	env.token = token

	h := New(env.accounts, env.chat, env.voice, fakePinger{}, logging.Discard())
	env.router = gin.New()
	h.RegisterRoutes(env.router, env.tokens, "")
	return env
}

func (e *testEnv) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/register", `{"username":"alice","password":"pw"}`, false)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"msg":"User registered successfully"}`, w.Body.String())

	env.accounts.registerErr = common.ErrDuplicateUsername
	w = env.do(http.MethodPost, "/auth/register", `{"username":"alice","password":"pw"}`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Username already exists"}`, w.Body.String())

	env.accounts.registerErr = common.ErrInvalidInput
	w = env.do(http.MethodPost, "/auth/register", `{"username":"","password":""}`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/auth/register", `not json`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"pw"}`, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"access_token":"signed-token"}`, w.Body.String())

	env.accounts.loginErr = common.ErrInvalidCredentials
	w = env.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"bad"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"Invalid credentials"}`, w.Body.String())

	env.accounts.loginErr = errors.New("db down")
	w = env.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"pw"}`, false)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/profile", "/history"} {
		w := env.do(http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
	w := env.do(http.MethodPost, "/chat", `{"message":"hi"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	name := "Alice"
	env.accounts.profile = models.Profile{Name: &name}

	w := env.do(http.MethodGet, "/profile", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), env.accounts.lastUserID)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Alice", got["name"])
	assert.Contains(t, got, "goal")
	assert.Nil(t, got["goal"])

	w = env.do(http.MethodPut, "/profile", `{"age":"29","weight":"","goal":null}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Profile updated"}`, w.Body.String())
	assert.Equal(t, models.Of(29), env.accounts.lastUpdate.Age)
	assert.Equal(t, models.Null[float64](), env.accounts.lastUpdate.Weight)
	assert.Equal(t, models.Null[string](), env.accounts.lastUpdate.Goal)
	assert.False(t, env.accounts.lastUpdate.Name.Set)

	w = env.do(http.MethodPut, "/profile", `{"age":"old"}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/chat", `{"message":"plan my lunch"}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"re: plan my lunch"}`, w.Body.String())

	w = env.do(http.MethodPost, "/chat", `{"message":"   "}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.chat.fail = errors.New("provider unavailable")
	w = env.do(http.MethodPost, "/chat", `{"message":"again"}`, true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"reply":"Error: provider unavailable","error":"provider unavailable"}`, w.Body.String())
}

func TestHistory(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/history", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	env.do(http.MethodPost, "/chat", `{"message":"breakfast?"}`, true)
	w = env.do(http.MethodGet, "/history", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"message":"breakfast?","reply":"re: breakfast?","timestamp":"2025-01-02T03:04:05Z"}]`, w.Body.String())

	w = env.do(http.MethodDelete, "/history", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"History deleted"}`, w.Body.String())
	assert.True(t, env.chat.cleared)

	env.chat.fail = errors.New("disk")
	w = env.do(http.MethodGet, "/history", "", true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk")
}

func TestSpeakReply(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/history/1/speech", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "ID3", w.Body.String())

	w = env.do(http.MethodGet, "/history/2/speech", "", true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/history/abc/speech", "", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.voice.disabled.Store(true)
	w = env.do(http.MethodGet, "/history/1/speech", "", true)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestVoiceChat(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/chat/voice", strings.NewReader("clip"))
	req.Header.Set("Content-Type", "audio/webm")
	req.Header.Set("Authorization", "Bearer "+env.token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"transcript":"heard clip","reply":"re: heard clip"}`, w.Body.String())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("audio", "clip.webm")
	require.NoError(t, err)
	_, err = part.Write([]byte("form"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req = httptest.NewRequest(http.MethodPost, "/chat/voice", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+env.token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "heard form")

	req = httptest.NewRequest(http.MethodPost, "/chat/voice", strings.NewReader(""))
	req.Header.Set("Content-Type", "audio/webm")
	req.Header.Set("Authorization", "Bearer "+env.token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.voice.disabled.Store(true)
	req = httptest.NewRequest(http.MethodPost, "/chat/voice", strings.NewReader("clip"))
	req.Header.Set("Content-Type", "audio/webm")
	req.Header.Set("Authorization", "Bearer "+env.token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, w.Code)

	h := New(env.accounts, env.chat, env.voice, fakePinger{err: errors.New("closed")}, logging.Discard())
	r := gin.New()
	h.RegisterRoutes(r, env.tokens, "")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRegister_InviteCode(t *testing.T) {
	env := newTestEnv(t)
	h := New(env.accounts, env.chat, env.voice, fakePinger{}, logging.Discard())
	r := gin.New()
	h.RegisterRoutes(r, env.tokens, "open-sesame")

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"a","password":"b"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"a","password":"b"}`))
	req.Header.Set("X-Invite-Code", "open-sesame")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}
