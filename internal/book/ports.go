package book

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks bookcatalog/internal/book Store

// Store defines the contract for book data storage.
type Store interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id int) (Book, error)
	Create(ctx context.Context, title, author string) (Book, error)
	Update(ctx context.Context, id int, patch Patch) (Book, error)
	Remove(ctx context.Context, id int) (bool, error)
	Len(ctx context.Context) (int, error)
}
