package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"DietPlanChatbot/internal/common"
	"DietPlanChatbot/internal/models"
)

// AppendTurn stores one committed exchange.
func (s *Store) AppendTurn(ctx context.Context, userID int64, message, reply string, at time.Time) (models.ChatTurn, error) {
	at = at.UTC()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO chat_history(user_id, message, reply, created_at) VALUES(?, ?, ?, ?)",
		userID, message, reply, at.UnixNano())
	if err != nil {
		return models.ChatTurn{}, fmt.Errorf("insert chat turn: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.ChatTurn{}, fmt.Errorf("insert chat turn: %w", err)
	}
	return models.ChatTurn{ID: id, UserID: userID, Message: message, Reply: reply, CreatedAt: at}, nil
}

// ListTurns returns the user's turns oldest first. Never nil.
func (s *Store) ListTurns(ctx context.Context, userID int64) ([]models.ChatTurn, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, message, reply, created_at
		FROM chat_history
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("select chat turns: %w", err)
	}
	defer rows.Close()

	turns := make([]models.ChatTurn, 0)
	for rows.Next() {
		turn, err := scanTurn(rows)
		if err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select chat turns: %w", err)
	}
	return turns, nil
}

// GetTurn looks up a single turn owned by userID.
func (s *Store) GetTurn(ctx context.Context, userID, turnID int64) (models.ChatTurn, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, message, reply, created_at
		FROM chat_history
		WHERE id = ? AND user_id = ?`, turnID, userID)
	turn, err := scanTurn(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChatTurn{}, common.ErrNotFound
	}
	return turn, err
}

// DeleteTurns removes every turn of the user and reports how many were deleted.
func (s *Store) DeleteTurns(ctx context.Context, userID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM chat_history WHERE user_id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("delete chat turns: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTurn(row scanner) (models.ChatTurn, error) {
	var (
		turn      models.ChatTurn
		createdAt int64
	)
	if err := row.Scan(&turn.ID, &turn.UserID, &turn.Message, &turn.Reply, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ChatTurn{}, err
		}
		return models.ChatTurn{}, fmt.Errorf("scan chat turn: %w", err)
	}
	turn.CreatedAt = time.Unix(0, createdAt).UTC()
	return turn, nil
}
