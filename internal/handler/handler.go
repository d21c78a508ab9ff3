/**
* Name:        handler.go
* Description: gin HTTP handlers for the diet plan chatbot
* Workflow:    request JSON -> service call -> gin.H / typed response
 */
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"DietPlanChatbot/internal/models"
)

type AccountService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error)
}

type ChatService interface {
	SubmitMessage(ctx context.Context, userID int64, message string) (string, error)
	GetHistory(ctx context.Context, userID int64) ([]models.ChatTurn, error)
	ClearHistory(ctx context.Context, userID int64) error
}

type VoiceService interface {
	Ask(ctx context.Context, userID int64, audio []byte, contentType string) (transcript, reply string, err error)
	Speak(ctx context.Context, userID, turnID int64) ([]byte, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	accounts AccountService
	chat     ChatService
	voice    VoiceService
	db       Pinger
	log      *slog.Logger
	upgrader websocket.Upgrader
}

func New(accounts AccountService, chat ChatService, voice VoiceService, db Pinger, log *slog.Logger) *Handler {
	return &Handler{
		accounts: accounts,
		chat:     chat,
		voice:    voice,
		db:       db,
		log:      log,
		upgrader: websocket.Upgrader{
			// the browser frontend may be served from another origin; CORS already governs HTTP
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

type MsgResponse struct {
	Msg string `json:"msg" example:"Profile updated"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"failed to load history"`
}
