package repo

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

var ErrUserExists = errors.New("user already exists")

type memoryUser struct {
	id       int
	email    string
	password string
}

// MemoryRepository keeps users and calculations in process memory. It backs the
// server when no database is configured and is used by tests.
type MemoryRepository struct {
	mu           sync.RWMutex
	users        map[string]memoryUser
	calculations map[int]Calculation
	nextUserID   int
	nextCalcID   int
	now          func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:        make(map[string]memoryUser),
		calculations: make(map[int]Calculation),
		now:          time.Now,
	}
}

func (m *MemoryRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[login]; ok {
		return 0, ErrUserExists
	}
	for _, u := range m.users {
		if u.email == email {
			return 0, ErrUserExists
		}
	}
	m.nextUserID++
	m.users[login] = memoryUser{id: m.nextUserID, email: email, password: password}
	return m.nextUserID, nil
}

func (m *MemoryRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[login]
	if !ok {
		return 0, "", nil
	}
	return u.id, u.password, nil
}

func (m *MemoryRepository) SaveCalculation(ctx context.Context, c Calculation) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextCalcID++
	c.ID = m.nextCalcID
	c.CreatedAt = m.now()
	m.calculations[c.ID] = c
	return c.ID, nil
}

func (m *MemoryRepository) ListCalculations(ctx context.Context, userID, limit int) ([]Calculation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Calculation{}
	for _, c := range m.calculations {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryRepository) GetCalculation(ctx context.Context, userID, id int) (Calculation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.calculations[id]
	if !ok || c.UserID != userID {
		return Calculation{}, ErrNotFound
	}
	return c, nil
}
