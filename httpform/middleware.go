package httpform

import (
	"log/slog"
	"net/http"
)

// MaxBytes returns middleware rejecting requests whose declared content
// length exceeds maxBytes with 413 before the handler runs. Requests
// without a declared length are passed through with their body wrapped in
// http.MaxBytesReader, so an undeclared oversized body still cannot be
// streamed past the bound. Place it early in the chain, before any body
// parsing.
//
// logger may be nil.
func MaxBytes(maxBytes int64, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				if logger != nil {
					logger.WarnContext(r.Context(), "request body over limit",
						slog.Int64("content_length", r.ContentLength),
						slog.Int64("max_bytes", maxBytes),
						slog.String("path", r.URL.Path),
					)
				}
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
