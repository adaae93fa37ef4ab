package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

var ErrMalformedBody = errors.New("malformed JSON body")

// DecodeJSON decodes the request body into dst. It reports false, nil when the request
// carries no JSON body: an empty body, or a Content-Type that is not a JSON media type.
func DecodeJSON(r *http.Request, dst any) (bool, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return false, nil
	}
	if ct := r.Header.Get("Content-Type"); ct != "" && !isJSONMediaType(ct) {
		return false, nil
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return false, err
		}
		return false, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if dec.More() {
		return false, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedBody)
	}
	return true, nil
}

// ReadJSON decodes the body into dst and answers 400 or 413 itself when that fails.
// It returns false when the caller should stop handling the request.
func ReadJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	_, err := DecodeJSON(r, dst)
	if err == nil {
		return true
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		Message(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		return false
	}
	Message(w, http.StatusBadRequest, MsgMalformedBody)
	return false
}

func isJSONMediaType(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
