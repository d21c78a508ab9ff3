package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"DietPlanChatbot/internal/common"
	"DietPlanChatbot/internal/models"

	"modernc.org/sqlite"
)

// SQLITE_CONSTRAINT_UNIQUE
const sqliteConstraintUnique = 2067

// CreateUser inserts the account and its empty profile in one transaction.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	user := models.User{Username: username, PasswordHash: passwordHash}

	err := s.withTx(ctx, func(tx dbtx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO users(username, password_hash) VALUES(?, ?)", username, passwordHash)
		if err != nil {
			if isUniqueViolation(err) {
				return common.ErrDuplicateUsername
			}
			return fmt.Errorf("insert user: %w", err)
		}
		if user.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("insert user: %w", err)
		}

		if _, err := tx.ExecContext(ctx, "INSERT INTO profiles(user_id) VALUES(?)", user.ID); err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE username = ?", username)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, common.ErrNotFound
		}
		return models.User{}, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique
}
