package service

import (
	"context"
	"sync"
	"time"

	"DietPlanChatbot/internal/common"
	"DietPlanChatbot/internal/models"
	"DietPlanChatbot/internal/prompt"
)

// memStore is an in-memory stand-in for storage.Store.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	users    map[string]models.User
	profiles map[int64]models.Profile
	turns    map[int64][]models.ChatTurn

	listErr   error
	appendErr error
	deleteErr error
	profErr   error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]models.User),
		profiles: make(map[int64]models.Profile),
		turns:    make(map[int64][]models.ChatTurn),
	}
}

func (m *memStore) CreateUser(_ context.Context, username, hash string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[username]; ok {
		return models.User{}, common.ErrDuplicateUsername
	}
	m.nextID++
	u := models.User{ID: m.nextID, Username: username, PasswordHash: hash}
	m.users[username] = u
	m.profiles[u.ID] = models.Profile{}
	return u, nil
}

func (m *memStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return models.User{}, common.ErrNotFound
	}
	return u, nil
}

func (m *memStore) GetProfile(_ context.Context, userID int64) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profErr != nil {
		return models.Profile{}, m.profErr
	}
	p, ok := m.profiles[userID]
	if !ok {
		return models.Profile{}, common.ErrNotFound
	}
	return p, nil
}

func (m *memStore) UpdateProfile(_ context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.profiles[userID]
	update.ApplyTo(&p)
	m.profiles[userID] = p
	return p, nil
}

func (m *memStore) AppendTurn(_ context.Context, userID int64, message, reply string, at time.Time) (models.ChatTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return models.ChatTurn{}, m.appendErr
	}
	m.nextID++
	t := models.ChatTurn{ID: m.nextID, UserID: userID, Message: message, Reply: reply, CreatedAt: at}
	m.turns[userID] = append(m.turns[userID], t)
	return t, nil
}

func (m *memStore) ListTurns(_ context.Context, userID int64) ([]models.ChatTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.ChatTurn, len(m.turns[userID]))
	copy(out, m.turns[userID])
	return out, nil
}

func (m *memStore) GetTurn(_ context.Context, userID, turnID int64) (models.ChatTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.turns[userID] {
		if t.ID == turnID {
			return t, nil
		}
	}
	return models.ChatTurn{}, common.ErrNotFound
}

func (m *memStore) DeleteTurns(_ context.Context, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	n := int64(len(m.turns[userID]))
	delete(m.turns, userID)
	return n, nil
}

// completerFunc adapts a function to llm.Completer.
type completerFunc func(ctx context.Context, messages []prompt.Message) (string, error)

func (f completerFunc) Complete(ctx context.Context, messages []prompt.Message) (string, error) {
	return f(ctx, messages)
}

type staticTokens struct{}

func (staticTokens) GenerateToken(userID int64, username string) (string, error) {
	return "token-for-" + username, nil
}
