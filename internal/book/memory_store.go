package book

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps books in process memory in insertion order.
// Ids come from a counter that only moves forward, so a deleted id is never handed out again.
type MemoryStore struct {
	mu     sync.RWMutex
	books  []Book
	nextID int
}

// NewMemoryStore creates a store holding a copy of seed.
func NewMemoryStore(seed []Book) *MemoryStore {
	s := &MemoryStore{
		books:  slices.Clone(seed),
		nextID: 1,
	}
	for _, b := range seed {
		if b.ID >= s.nextID {
			s.nextID = b.ID + 1
		}
	}
	return s
}

func (s *MemoryStore) List(ctx context.Context) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id int) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return s.books[i], nil
}

func (s *MemoryStore) Create(ctx context.Context, title, author string) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := Book{ID: s.nextID, Title: title, Author: author}
	s.nextID++
	s.books = append(s.books, b)
	return b, nil
}

func (s *MemoryStore) Update(ctx context.Context, id int, patch Patch) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	patch.apply(&s.books[i])
	return s.books[i], nil
}

func (s *MemoryStore) Remove(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.books = slices.Delete(s.books, i, i+1)
	return true, nil
}

func (s *MemoryStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books), nil
}

// indexOf must be called with s.mu held.
func (s *MemoryStore) indexOf(id int) int {
	return slices.IndexFunc(s.books, func(b Book) bool { return b.ID == id })
}
