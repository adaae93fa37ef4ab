package client

import (
	"context"
	"log"

	"bookcatalog/internal/book"
)

// Renderer receives the full list after every successful action.
type Renderer func(books []book.Book)

// Catalog reproduces the browser page's behaviour: one call per user action,
// then, only if the call succeeded, a fresh list handed to the renderer.
// Failures are logged and leave the last rendering in place.
type Catalog struct {
	client *Client
	render Renderer
}

func NewCatalog(client *Client, render Renderer) *Catalog {
	return &Catalog{client: client, render: render}
}

// Refresh fetches and renders the whole list.
func (c *Catalog) Refresh(ctx context.Context) error {
	books, err := c.client.List(ctx)
	if err != nil {
		log.Printf("catalog: fetching books failed: %v", err)
		return err
	}
	c.render(books)
	return nil
}

// Add creates a book and re-renders.
func (c *Catalog) Add(ctx context.Context, title, author string) (int, error) {
	id, err := c.client.Create(ctx, title, author)
	if err != nil {
		log.Printf("catalog: adding book failed: %v", err)
		return 0, err
	}
	return id, c.Refresh(ctx)
}

// Edit updates a book and re-renders.
func (c *Catalog) Edit(ctx context.Context, id int, title, author string) error {
	if err := c.client.Update(ctx, id, book.UpdateRequest{Title: title, Author: author}); err != nil {
		log.Printf("catalog: updating book %d failed: %v", id, err)
		return err
	}
	return c.Refresh(ctx)
}

// Remove deletes a book and re-renders.
func (c *Catalog) Remove(ctx context.Context, id int) error {
	if err := c.client.Delete(ctx, id); err != nil {
		log.Printf("catalog: deleting book %d failed: %v", id, err)
		return err
	}
	return c.Refresh(ctx)
}
