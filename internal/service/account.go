package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"DietPlanChatbot/internal/auth"
	"DietPlanChatbot/internal/common"
	"DietPlanChatbot/internal/metrics"
	"DietPlanChatbot/internal/models"
)

// AccountService covers registration, login and the profile surface.
type AccountService struct {
	users    UserRepository
	profiles ProfileRepository
	tokens   TokenIssuer
	log      *slog.Logger
	metrics  *metrics.Metrics
}

func NewAccountService(users UserRepository, profiles ProfileRepository, tokens TokenIssuer, log *slog.Logger, m *metrics.Metrics) *AccountService {
	return &AccountService{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		log:      log,
		metrics:  m,
	}
}

func (s *AccountService) Register(ctx context.Context, username, password string) (user models.User, err error) {
	defer func() { s.metrics.IncRegistration(err) }()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password are required", common.ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err = s.users.CreateUser(ctx, username, hash)
	if err != nil {
		if !errors.Is(err, common.ErrDuplicateUsername) {
			s.log.ErrorContext(ctx, "Register(): failed to create user", "username", username, "error", err)
		}
		return models.User{}, err
	}

	s.log.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login returns a signed access token. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, username, password string) (token string, err error) {
	defer func() { s.metrics.IncLogin(err) }()

	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrInvalidCredentials
	}

	token, err = s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// GetProfile returns an empty profile when none is stored.
func (s *AccountService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if errors.Is(err, common.ErrNotFound) {
		return models.Profile{}, nil
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error) {
	profile, err := s.profiles.UpdateProfile(ctx, userID, update)
	if err != nil {
		s.log.ErrorContext(ctx, "UpdateProfile(): failed to save profile", "user_id", userID, "error", err)
		return models.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}
