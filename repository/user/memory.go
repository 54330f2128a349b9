package userrepo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/VirakOTAKU/book-selling-platform/model"
)

// memory is the DATABASE_URL-less backend. Same contract as the
// postgres repo, last-write-wins on updates.
type memory struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]model.User
}

func NewMemory() Repo {
	return &memory{nextID: 1, users: make(map[int64]model.User)}
}

func (m *memory) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.users {
		if strings.EqualFold(ex.Email, u.Email) {
			return ErrDuplicateEmail
		}
	}
	now := time.Now()
	u.ID = m.nextID
	m.nextID++
	u.CreatedAt = now
	u.UpdatedAt = now
	m.users[u.ID] = *u
	return nil
}

func (m *memory) ByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memory) ByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (m *memory) Update(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.users[u.ID]
	if !ok {
		return ErrNotFound
	}
	cur.FirstName = u.FirstName
	cur.LastName = u.LastName
	cur.Phone = u.Phone
	cur.Bio = u.Bio
	cur.UpdatedAt = time.Now()
	m.users[u.ID] = cur
	*u = cur
	return nil
}
