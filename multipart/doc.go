// Package multipart implements a streaming decoder for multipart/form-data
// request bodies (RFC 2046/7578 subset).
//
// The decoder is byte-oriented and incremental: it never needs the whole
// body in memory, reads no further than the declared content length, and
// enforces per-call limits (total size, in-memory bytes, part count) inside
// the read loop so adversarial bodies are rejected mid-stream.
//
// Two levels of API are offered. Decoder produces a lazy, single-pass
// stream of Events (FieldBegun, FileBegun, Continuation, PartEnded) in wire
// order. Parser consumes that stream and collects decoded form fields and
// file uploads, writing file content through a pluggable sink.Factory:
//
//	p := &multipart.Parser{Limits: limits.Limits{MaxParts: 100}}
//	fields, files, err := p.Parse(body, boundary, contentLength)
//	if err != nil {
//	    // taxonomy: ErrMalformedBoundary, ErrMalformedHeaders,
//	    // ErrTruncatedBody, *BodyDecodeError, limits.ErrMemoryLimitExceeded,
//	    // limits.ErrPartCountExceeded
//	}
//	defer func() {
//	    for _, f := range files {
//	        f.Close()
//	    }
//	}()
//
// Line terminators may be \n, \r or \r\n and may be mixed within one body;
// file content is preserved byte for byte. Part headers follow RFC 822
// folding rules and filename parameters may use RFC 2231 continuations.
package multipart
