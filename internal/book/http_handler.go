package book

import (
	"errors"
	"net/http"
	"strconv"

	"bookcatalog/internal/httpx"

	"github.com/go-chi/chi/v5"
)

// Client-facing messages of the book routes.
const (
	MsgNotFound       = "Book not found"
	MsgFieldsRequired = "Title and author are required"
	MsgCreated        = "The action was successful"
	MsgUpdated        = "Update successful"
	MsgDeleted        = "Book deleted"
)

type HTTPHandler struct {
	service  *Service
	resolver *Resolver
}

func NewHTTPHandler(service *Service, resolver *Resolver) *HTTPHandler {
	return &HTTPHandler{service: service, resolver: resolver}
}

// Routes registers the book routes on r.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Get("/books", httpx.Handle(h.List))
	r.Post("/books", httpx.Handle(h.Create))
	r.Get("/books/{id}", h.withBook(h.Get))
	r.Put("/books/{id}", h.withBook(h.Update))
	r.Delete("/books/{id}", h.withBook(h.Delete))
}

// resolvedHandlerFunc receives the book named by the request path.
type resolvedHandlerFunc func(w http.ResponseWriter, r *http.Request, b Book) error

// withBook resolves {id} before next runs. A miss is answered with 404 and next is not called.
func (h *HTTPHandler) withBook(next resolvedHandlerFunc) http.HandlerFunc {
	return httpx.Handle(func(w http.ResponseWriter, r *http.Request) error {
		b, err := h.resolver.Resolve(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Message(w, http.StatusNotFound, MsgNotFound)
				return nil
			}
			return err
		}
		return next(w, r, b)
	})
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) error {
	books, err := h.service.List(r.Context())
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, books)
	return nil
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request, b Book) error {
	httpx.JSON(w, http.StatusOK, b)
	return nil
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req CreateRequest
	if !httpx.ReadJSON(w, r, &req) {
		return nil
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, MsgFieldsRequired, details)
		return nil
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		return err
	}
	w.Header().Set("Location", "/books/"+strconv.Itoa(created.ID))
	httpx.Message(w, http.StatusCreated, MsgCreated)
	return nil
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request, b Book) error {
	var req UpdateRequest
	if !httpx.ReadJSON(w, r, &req) {
		return nil
	}

	if _, err := h.service.Update(r.Context(), b, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, MsgNotFound)
			return nil
		}
		return err
	}
	httpx.Message(w, http.StatusOK, MsgUpdated)
	return nil
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request, b Book) error {
	if err := h.service.Delete(r.Context(), b.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, MsgNotFound)
			return nil
		}
		return err
	}
	httpx.Message(w, http.StatusOK, MsgDeleted)
	return nil
}
