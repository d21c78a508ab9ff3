package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"DietPlanChatbot/internal/common"
	"DietPlanChatbot/internal/models"
)

const profileColumns = `name, age, height, weight, gender, activity_level, food_preference,
	allergies, medical_conditions, meals_per_day, goal`

// GetProfile returns common.ErrNotFound when the user has no profile row.
func (s *Store) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	return getProfile(ctx, s.db, userID)
}

// UpdateProfile applies a partial update and returns the stored result. A missing
// row is created on the fly.
func (s *Store) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error) {
	var profile models.Profile

	err := s.withTx(ctx, func(tx dbtx) error {
		current, err := getProfile(ctx, tx, userID)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return err
		}
		update.ApplyTo(&current)

		_, err = tx.ExecContext(ctx, `
			INSERT INTO profiles(user_id, `+profileColumns+`)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(user_id) DO UPDATE SET
				name = excluded.name,
				age = excluded.age,
				height = excluded.height,
				weight = excluded.weight,
				gender = excluded.gender,
				activity_level = excluded.activity_level,
				food_preference = excluded.food_preference,
				allergies = excluded.allergies,
				medical_conditions = excluded.medical_conditions,
				meals_per_day = excluded.meals_per_day,
				goal = excluded.goal`,
			userID,
			nullable(current.Name), nullable(current.Age), nullable(current.Height),
			nullable(current.Weight), nullable(current.Gender), nullable(current.ActivityLevel),
			nullable(current.FoodPreference), nullable(current.Allergies),
			nullable(current.MedicalConditions), nullable(current.MealsPerDay), nullable(current.Goal),
		)
		if err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}
		profile = current
		return nil
	})
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func getProfile(ctx context.Context, q dbtx, userID int64) (models.Profile, error) {
	var (
		name, gender, activity, food, allergies, medical, goal sql.NullString
		age, meals                                             sql.NullInt64
		height, weight                                         sql.NullFloat64
	)

	row := q.QueryRowContext(ctx, "SELECT "+profileColumns+" FROM profiles WHERE user_id = ?", userID)
	if err := row.Scan(&name, &age, &height, &weight, &gender, &activity, &food,
		&allergies, &medical, &meals, &goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, common.ErrNotFound
		}
		return models.Profile{}, fmt.Errorf("select profile: %w", err)
	}

	return models.Profile{
		Name:              stringPtr(name),
		Age:               intPtr(age),
		Height:            floatPtr(height),
		Weight:            floatPtr(weight),
		Gender:            stringPtr(gender),
		ActivityLevel:     stringPtr(activity),
		FoodPreference:    stringPtr(food),
		Allergies:         stringPtr(allergies),
		MedicalConditions: stringPtr(medical),
		MealsPerDay:       intPtr(meals),
		Goal:              stringPtr(goal),
	}, nil
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

// nullable turns an unset field into SQL NULL.
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
