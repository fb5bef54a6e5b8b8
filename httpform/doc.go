// Package httpform connects the formkit decoder to net/http.
//
// ParseRequest decodes the body of an *http.Request using its Content-Type
// and Content-Length headers:
//
//	res, err := httpform.ParseRequest(r, formkit.WithLimits(cfg.Limits()))
//	if err != nil {
//		http.Error(w, "bad form data", http.StatusBadRequest)
//		return
//	}
//	defer res.Close()
//
// LoadConfig reads default request limits from environment variables
// (FORMKIT_*), optionally seeded from a .env file. The resulting limits
// are still applied per call; nothing global is mutated.
//
// MaxBytes is a middleware rejecting requests whose declared length
// exceeds a bound with 413 before the handler runs, and capping the actual
// read for requests that declare nothing:
//
//	r := chi.NewRouter()
//	r.Use(httpform.MaxBytes(10<<20, logger))
//	r.Post("/upload", uploadHandler)
package httpform
