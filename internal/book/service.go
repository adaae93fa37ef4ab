package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	store Store
}

// NewService creates a new book service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every book in insertion order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// Create stores a new book. The request must already be validated.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Book, error) {
	return s.store.Create(ctx, req.Title, req.Author)
}

// Update overwrites the non-empty fields of req on the book with the given id.
// An empty request leaves the book as it is.
func (s *Service) Update(ctx context.Context, current Book, req UpdateRequest) (Book, error) {
	patch := Patch{Title: req.Title, Author: req.Author}
	if patch.Empty() {
		return current, nil
	}
	return s.store.Update(ctx, current.ID, patch)
}

// Delete removes the book with the given id. It returns ErrNotFound if the book is already gone.
func (s *Service) Delete(ctx context.Context, id int) error {
	removed, err := s.store.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
