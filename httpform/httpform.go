package httpform

import (
	"net/http"

	"github.com/dmitrymomot/formkit"
)

// ParseRequest decodes the request body with formkit.Parse, taking the
// media type from the Content-Type header and the declared length from
// ContentLength (-1 when the client declared none, which formkit treats as
// an empty body).
//
// The request body is consumed as far as decoding requires; use the
// returned Result.Stream for any residual raw access.
func ParseRequest(r *http.Request, opts ...formkit.Option) (*formkit.Result, error) {
	var body = r.Body
	if body == nil {
		return formkit.Parse(r.Header.Get("Content-Type"), -1, nil, opts...)
	}
	return formkit.Parse(r.Header.Get("Content-Type"), r.ContentLength, body, opts...)
}
