package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that limits incoming request
// body sizes to limit bytes. The limit exists for ticket uploads: payloads
// arrive as inline data-URL strings of up to ~10MB, and anything beyond the
// configured ceiling is a mistake, not a ticket.
//
// Requests advertising a Content-Length over the limit are rejected with
// 413 before any body bytes are read. Bodies of unknown length are wrapped
// in http.MaxBytesReader, so the decoding handler's read fails once the
// limit is crossed.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
