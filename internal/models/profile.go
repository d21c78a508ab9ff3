package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Profile holds the dietary attributes a user fills in. Every field is optional;
// nil means the user never provided it.
type Profile struct {
	Name              *string  `json:"name"`
	Age               *int     `json:"age"`
	Height            *float64 `json:"height"`
	Weight            *float64 `json:"weight"`
	Gender            *string  `json:"gender"`
	ActivityLevel     *string  `json:"activity_level"`
	FoodPreference    *string  `json:"food_preference"`
	Allergies         *string  `json:"allergies"`
	MedicalConditions *string  `json:"medical_conditions"`
	MealsPerDay       *int     `json:"meals_per_day"`
	Goal              *string  `json:"goal"`
}

// IsEmpty reports whether no field carries a usable value.
func (p Profile) IsEmpty() bool {
	return StringValue(p.Name) == "" &&
		IntValue(p.Age) == 0 &&
		FloatValue(p.Height) == 0 &&
		FloatValue(p.Weight) == 0 &&
		StringValue(p.Gender) == "" &&
		StringValue(p.ActivityLevel) == "" &&
		StringValue(p.FoodPreference) == "" &&
		StringValue(p.Allergies) == "" &&
		StringValue(p.MedicalConditions) == "" &&
		IntValue(p.MealsPerDay) == 0 &&
		StringValue(p.Goal) == ""
}

// ProfileUpdate is a partial profile write. Keys missing from the request body keep
// their stored value, keys sent as null (or "") clear it.
type ProfileUpdate struct {
	Name              Field[string]  `json:"name"`
	Age               Field[int]     `json:"age"`
	Height            Field[float64] `json:"height"`
	Weight            Field[float64] `json:"weight"`
	Gender            Field[string]  `json:"gender"`
	ActivityLevel     Field[string]  `json:"activity_level"`
	FoodPreference    Field[string]  `json:"food_preference"`
	Allergies         Field[string]  `json:"allergies"`
	MedicalConditions Field[string]  `json:"medical_conditions"`
	MealsPerDay       Field[int]     `json:"meals_per_day"`
	Goal              Field[string]  `json:"goal"`
}

// ApplyTo overwrites the fields of p that were present in the update.
func (u ProfileUpdate) ApplyTo(p *Profile) {
	u.Name.apply(&p.Name)
	u.Age.apply(&p.Age)
	u.Height.apply(&p.Height)
	u.Weight.apply(&p.Weight)
	u.Gender.apply(&p.Gender)
	u.ActivityLevel.apply(&p.ActivityLevel)
	u.FoodPreference.apply(&p.FoodPreference)
	u.Allergies.apply(&p.Allergies)
	u.MedicalConditions.apply(&p.MedicalConditions)
	u.MealsPerDay.apply(&p.MealsPerDay)
	u.Goal.apply(&p.Goal)
}

// Field is one key of a partial update. Set is true once the key appeared in the
// JSON body, Value stays nil when it appeared as null.
type Field[T any] struct {
	Set   bool
	Value *T
}

// Of builds a present field, mostly for tests and internal callers.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Null builds a present field that clears the stored value.
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	f.Value = nil

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var v T
	// the web form posts numbers as strings ("72", or "" for a blank input)
	if _, isString := any(v).(string); !isString && len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
		data = []byte(raw)
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func (f Field[T]) apply(dst **T) {
	if f.Set {
		*dst = f.Value
	}
}

func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func IntValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func FloatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
