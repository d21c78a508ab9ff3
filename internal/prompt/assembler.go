package prompt

import (
	"strconv"
	"strings"

	"DietPlanChatbot/internal/models"
)

const (
	placeholderUnknown = "Unknown"
	placeholderNone    = "None"
)

// Assembler builds the context for one chat request. The zero value uses
// DefaultSystemPrompt.
type Assembler struct {
	SystemPrompt string
}

func NewAssembler(systemPrompt string) *Assembler {
	return &Assembler{SystemPrompt: systemPrompt}
}

// Assemble returns system + replayed history + the new user message. Every stored
// turn contributes a user message followed by an assistant message, in the order
// given, so callers must pass history oldest first.
func (a *Assembler) Assemble(profile models.Profile, history []models.ChatTurn, userMsg string) []Message {
	messages := make([]Message, 0, 2+2*len(history))
	messages = append(messages, Message{Role: RoleSystem, Content: a.systemContent(profile)})

	for _, turn := range history {
		messages = append(messages,
			Message{Role: RoleUser, Content: turn.Message},
			Message{Role: RoleAssistant, Content: turn.Reply},
		)
	}

	return append(messages, Message{Role: RoleUser, Content: userMsg})
}

func (a *Assembler) systemContent(profile models.Profile) string {
	system := a.SystemPrompt
	if system == "" {
		system = DefaultSystemPrompt
	}
	if profile.IsEmpty() {
		return system
	}

	var sb strings.Builder
	sb.WriteString(system)
	sb.WriteString("\n\nUSER PROFILE CONTEXT:\n")
	sb.WriteString(RenderProfile(profile))
	sb.WriteString("\n\n")
	sb.WriteString(profileInstruction)
	return sb.String()
}

// RenderProfile formats every known profile field on a single line, substituting
// a placeholder for anything the user left blank.
func RenderProfile(p models.Profile) string {
	fields := []string{
		"Name: " + text(p.Name, placeholderUnknown),
		"Age: " + integer(p.Age),
		"Gender: " + text(p.Gender, placeholderUnknown),
		"Height: " + measure(p.Height, "cm"),
		"Weight: " + measure(p.Weight, "kg"),
		"Activity: " + text(p.ActivityLevel, placeholderUnknown),
		"Food: " + text(p.FoodPreference, placeholderUnknown),
		"Allergies: " + text(p.Allergies, placeholderNone),
		"Medical Conditions: " + text(p.MedicalConditions, placeholderNone),
		"Meals/Day: " + integer(p.MealsPerDay),
		"Goal: " + text(p.Goal, placeholderUnknown),
	}
	return strings.Join(fields, ", ")
}

func text(v *string, placeholder string) string {
	if s := models.StringValue(v); s != "" {
		return s
	}
	return placeholder
}

func integer(v *int) string {
	if i := models.IntValue(v); i != 0 {
		return strconv.Itoa(i)
	}
	return placeholderUnknown
}

func measure(v *float64, unit string) string {
	if f := models.FloatValue(v); f != 0 {
		return strconv.FormatFloat(f, 'f', -1, 64) + unit
	}
	return placeholderUnknown
}
