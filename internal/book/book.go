package book

import "errors"

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a book entity.
type Book struct {
	ID     int    `json:"id" yaml:"id" validate:"gt=0"`
	Title  string `json:"title" yaml:"title" validate:"required"`
	Author string `json:"author" yaml:"author" validate:"required"`
}

// CreateRequest is the body of POST /books.
type CreateRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// UpdateRequest is the body of PUT /books/{id}. Empty fields are left untouched.
type UpdateRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Patch holds the field assignments applied by Store.Update.
type Patch struct {
	Title  string
	Author string
}

// Empty reports whether the patch would change nothing.
func (p Patch) Empty() bool {
	return p.Title == "" && p.Author == ""
}

func (p Patch) apply(b *Book) {
	if p.Title != "" {
		b.Title = p.Title
	}
	if p.Author != "" {
		b.Author = p.Author
	}
}

// DefaultSeed returns the records a fresh catalog starts with.
func DefaultSeed() []Book {
	return []Book{
		{ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"},
		{ID: 2, Title: "To Kill a Mockingbird", Author: "Harper Lee"},
		{ID: 3, Title: "1984", Author: "George Orwell"},
	}
}
