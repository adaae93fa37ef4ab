package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware is the error fallback around handler execution: a panic anywhere below it
// is logged with its stack and answered with a generic 500.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := wrapResponseWriter(w)
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Printf("panic recovered: request_id=%s method=%s path=%s error=%v stack=%s",
					RequestIDFrom(r), r.Method, r.URL.Path, err, string(debug.Stack()))

				if !rw.wroteHeader() {
					JSONError(rw, http.StatusInternalServerError, MsgInternalError, nil)
				}
			}
		}()
		next.ServeHTTP(rw, r)
	})
}
