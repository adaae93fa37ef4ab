package httpx

import (
	"encoding/json"
	"net/http"
)

// Client-facing messages shared by the whole service.
const (
	MsgRouteNotFound  = "Route not found"
	MsgInternalError  = "Something went wrong!"
	MsgMalformedBody  = "Malformed JSON body"
	MsgBodyTooLarge   = "Request body too large"
	MsgTooManyRequest = "Too many requests"
)

// MessageResponse is the body of every confirmation and error response.
type MessageResponse struct {
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes a {"message": ...} body.
func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

func JSONError(w http.ResponseWriter, statusCode int, message string, details []ErrorDetail) {
	JSON(w, statusCode, MessageResponse{Message: message, Details: details})
}

// RouteNotFound is the fallback for requests that match no route.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	Message(w, http.StatusNotFound, MsgRouteNotFound)
}
