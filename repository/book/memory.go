package bookrepo

import (
	"context"
	"sync"
	"time"

	"github.com/VirakOTAKU/book-selling-platform/catalog"
	"github.com/VirakOTAKU/book-selling-platform/model"
)

// memory keeps books in insertion order so the catalog engine's stable
// tie-break mirrors the postgres ORDER BY.
type memory struct {
	mu     sync.RWMutex
	nextID int64
	books  []model.Book
}

func NewMemory() Repo {
	return &memory{nextID: 1}
}

func (m *memory) Create(_ context.Context, b *model.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	b.ID = m.nextID
	m.nextID++
	b.CreatedAt = now
	b.UpdatedAt = now
	m.books = append(m.books, *b)
	return nil
}

func (m *memory) ByID(_ context.Context, id int64) (*model.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.books {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memory) Update(_ context.Context, b *model.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.books {
		if m.books[i].ID == b.ID {
			b.CreatedAt = m.books[i].CreatedAt
			b.UpdatedAt = time.Now()
			m.books[i] = *b
			return nil
		}
	}
	return ErrNotFound
}

func (m *memory) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.books {
		if m.books[i].ID == id {
			m.books = append(m.books[:i], m.books[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memory) List(_ context.Context, p catalog.Params) ([]model.Book, int, error) {
	m.mu.RLock()
	snapshot := make([]model.Book, len(m.books))
	copy(snapshot, m.books)
	m.mu.RUnlock()

	page, total := catalog.Query(snapshot, p)
	return page, total, nil
}
