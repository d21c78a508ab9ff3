package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"DietPlanChatbot/internal/common"
	"DietPlanChatbot/internal/llm"
	"DietPlanChatbot/internal/metrics"
	"DietPlanChatbot/internal/models"
	"DietPlanChatbot/internal/prompt"
)

// ChatService runs one conversational turn at a time per user: load history and
// profile, build the context, ask the model, then persist the turn.
type ChatService struct {
	turns     TurnRepository
	profiles  ProfileRepository
	assembler *prompt.Assembler
	completer llm.Completer
	log       *slog.Logger
	metrics   *metrics.Metrics

	locks *userLocks
	now   func() time.Time
}

func NewChatService(
	turns TurnRepository,
	profiles ProfileRepository,
	assembler *prompt.Assembler,
	completer llm.Completer,
	log *slog.Logger,
	m *metrics.Metrics,
) *ChatService {
	return &ChatService{
		turns:     turns,
		profiles:  profiles,
		assembler: assembler,
		completer: completer,
		log:       log,
		metrics:   m,
		locks:     newUserLocks(),
		now:       time.Now,
	}
}

// SubmitMessage stores exactly one turn on success and nothing on failure.
func (s *ChatService) SubmitMessage(ctx context.Context, userID int64, message string) (reply string, err error) {
	if strings.TrimSpace(message) == "" {
		return "", common.ErrEmptyMessage
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	defer func() {
		s.metrics.IncChatTurn(err)
		if err != nil {
			s.log.ErrorContext(ctx, "SubmitMessage(): turn failed", "user_id", userID, "error", err)
		}
	}()

	history, err := s.turns.ListTurns(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return "", fmt.Errorf("load profile: %w", err)
		}
		profile = models.Profile{}
	}

	messages := s.assembler.Assemble(profile, history, message)

	start := time.Now()
	reply, err = s.completer.Complete(ctx, messages)
	s.metrics.ObserveCompletion(time.Since(start), err)
	if err != nil {
		return "", err
	}

	turn, err := s.turns.AppendTurn(ctx, userID, message, reply, s.now())
	if err != nil {
		return "", fmt.Errorf("save turn: %w", err)
	}

	s.log.InfoContext(ctx, "chat turn committed",
		"user_id", userID, "turn_id", turn.ID, "history_len", len(history)+1)
	return reply, nil
}

func (s *ChatService) GetHistory(ctx context.Context, userID int64) ([]models.ChatTurn, error) {
	turns, err := s.turns.ListTurns(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return turns, nil
}

// GetTurn returns common.ErrNotFound when the turn does not belong to the user.
func (s *ChatService) GetTurn(ctx context.Context, userID, turnID int64) (models.ChatTurn, error) {
	return s.turns.GetTurn(ctx, userID, turnID)
}

func (s *ChatService) ClearHistory(ctx context.Context, userID int64) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	n, err := s.turns.DeleteTurns(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "ClearHistory(): delete failed", "user_id", userID, "error", err)
		return fmt.Errorf("clear history: %w", err)
	}
	s.metrics.IncHistoryCleared()
	s.log.InfoContext(ctx, "history cleared", "user_id", userID, "deleted", n)
	return nil
}
