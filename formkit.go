package formkit

import (
	"bytes"
	"io"
	"mime"
	"strings"

	"github.com/dmitrymomot/formkit/limits"
	"github.com/dmitrymomot/formkit/multipart"
	"github.com/dmitrymomot/formkit/sink"
)

// Result is the outcome of one Parse call. Fields and Files are complete
// and consistent: Parse never returns a partially populated Result.
//
// Stream is the residual body: for an unrecognized content type it is the
// untouched body source, for decoded bodies it is the source positioned
// where decoding stopped, and for an absent declared length it is empty.
type Result struct {
	Stream io.Reader
	Fields *Fields
	Files  *Files
}

// Close releases the sinks of all file uploads in the result.
func (r *Result) Close() error { return r.Files.Close() }

type config struct {
	limits  limits.Limits
	factory sink.Factory
	silent  bool
	charset string
	policy  multipart.Policy
}

// Option configures one Parse call.
type Option func(*config)

// WithLimits bounds the call. See limits.Limits; the zero value means no
// bounds.
func WithLimits(l limits.Limits) Option {
	return func(c *config) { c.limits = l }
}

// WithSinkFactory replaces the sink allocation policy for file parts.
// Defaults to sink.Default, a memory buffer spooling to disk.
func WithSinkFactory(f sink.Factory) Option {
	return func(c *config) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithSilent suppresses every decode-time error (malformed headers or
// boundary, broken transfer encoding, truncation, memory and part-count
// limits) and substitutes an empty result. The size pre-check is NOT
// suppressed: limits.ErrBodyTooLarge always surfaces.
func WithSilent() Option {
	return func(c *config) { c.silent = true }
}

// WithCharset sets the charset used to decode field text when neither the
// media type nor the part declares one. Defaults to UTF-8.
func WithCharset(name string) Option {
	return func(c *config) {
		if name != "" {
			c.charset = name
		}
	}
}

// WithErrorPolicy selects the reaction to text that is invalid for the
// selected charset. Defaults to multipart.PolicyReplace.
func WithErrorPolicy(p multipart.Policy) Option {
	return func(c *config) { c.policy = p }
}

// Parse decodes a request body according to its declared media type.
//
// contentLength is the declared body length; a negative value means no
// length was declared and the body is assumed empty. mediaType is the raw
// Content-Type value, optionally carrying boundary and charset parameters.
//
// Routing: an absent or unrecognized media type yields an empty result
// with the body left unread in Result.Stream and no size check applied;
// application/x-www-form-urlencoded is split into fields;
// multipart/form-data is decoded by the multipart package, or treated as
// unrecognized when the boundary parameter is missing. For recognized
// types a declared length above MaxTotalBodyBytes fails with
// limits.ErrBodyTooLarge before any byte is read.
func Parse(mediaType string, contentLength int64, body io.Reader, opts ...Option) (*Result, error) {
	cfg := config{factory: sink.Default}
	for _, opt := range opts {
		opt(&cfg)
	}

	mt, params, err := mime.ParseMediaType(mediaType)
	if mediaType == "" || err != nil {
		return passthrough(body, contentLength), nil
	}
	if cs := params["charset"]; cs != "" {
		cfg.charset = cs
	}

	switch strings.ToLower(mt) {
	case "application/x-www-form-urlencoded":
		if err := cfg.limits.CheckContentLength(contentLength); err != nil {
			return nil, err
		}
		fields, err := parseURLEncoded(body, contentLength, cfg)
		if err != nil {
			return failed(cfg, err)
		}
		return &Result{Stream: body, Fields: fields, Files: &Files{}}, nil

	case "multipart/form-data":
		boundary, ok := params["boundary"]
		if !ok {
			return passthrough(body, contentLength), nil
		}
		if err := cfg.limits.CheckContentLength(contentLength); err != nil {
			return nil, err
		}
		p := &multipart.Parser{
			SinkFactory: cfg.factory,
			Limits:      cfg.limits,
			Charset:     cfg.charset,
			Policy:      cfg.policy,
		}
		fields, files, err := p.Parse(body, boundary, contentLength)
		if err != nil {
			return failed(cfg, err)
		}
		return &Result{Stream: body, Fields: &Fields{list: fields}, Files: &Files{list: files}}, nil
	}

	return passthrough(body, contentLength), nil
}

// passthrough builds the empty result for bodies that are not decoded. An
// absent declared length means the body must be assumed empty rather than
// read indefinitely.
func passthrough(body io.Reader, contentLength int64) *Result {
	stream := body
	if contentLength < 0 || body == nil {
		stream = bytes.NewReader(nil)
	}
	return &Result{Stream: stream, Fields: &Fields{}, Files: &Files{}}
}

// failed applies the silent policy to a decode-time error. Sinks have
// already been released by the failing decoder.
func failed(cfg config, err error) (*Result, error) {
	if cfg.silent {
		return &Result{Stream: bytes.NewReader(nil), Fields: &Fields{}, Files: &Files{}}, nil
	}
	return nil, err
}
