package book

import (
	"context"
	"strconv"
)

// Resolver turns an id taken from a request path into a stored book.
type Resolver struct {
	store Store
}

// NewResolver creates a resolver backed by store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the book identified by raw, or ErrNotFound.
// Ids that are not plain base-10 integers resolve to ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, raw string) (Book, error) {
	id, ok := ParseID(raw)
	if !ok {
		return Book{}, ErrNotFound
	}
	return r.store.Get(ctx, id)
}

// ParseID parses a path segment as a book id.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
