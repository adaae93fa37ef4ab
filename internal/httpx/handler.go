package httpx

import (
	"log"
	"net/http"
)

// HandlerFunc is an HTTP handler that reports unexpected failures by returning them.
// Expected outcomes (validation, not found) are written by the handler itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.HandlerFunc, routing returned errors to InternalError.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			InternalError(w, r, err)
		}
	}
}

// InternalError logs err server-side and answers with a generic 500.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("request failed: request_id=%s method=%s path=%s error=%v",
		RequestIDFrom(r), r.Method, r.URL.Path, err)
	if headerWritten(w) {
		return
	}
	JSONError(w, http.StatusInternalServerError, MsgInternalError, nil)
}
