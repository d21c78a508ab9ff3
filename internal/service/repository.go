package service

import (
	"context"
	"time"

	"DietPlanChatbot/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error)
}

type TurnRepository interface {
	AppendTurn(ctx context.Context, userID int64, message, reply string, at time.Time) (models.ChatTurn, error)
	ListTurns(ctx context.Context, userID int64) ([]models.ChatTurn, error)
	GetTurn(ctx context.Context, userID, turnID int64) (models.ChatTurn, error)
	DeleteTurns(ctx context.Context, userID int64) (int64, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, username string) (string, error)
}
