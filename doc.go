// Package formkit decodes HTTP request bodies encoded as
// application/x-www-form-urlencoded or multipart/form-data into ordered
// form fields and file uploads.
//
// Decoding is streaming and defensive: the body is read incrementally,
// never held in memory as a whole, and bounded by per-call limits on total
// size, in-memory accumulation and multipart part count. Pathological input
// (unterminated streams, missing boundaries, mixed line endings, thousands
// of tiny parts) fails fast instead of hanging or exhausting memory.
//
// Key Features:
//
//   - Media-type dispatch with a pre-read size check
//   - Streaming multipart decoding tolerant of \n, \r and \r\n terminators
//   - RFC 822 header folding and RFC 2231 filename continuations
//   - Pluggable file sinks, spooling from memory to disk past a threshold
//   - Call-scoped limits, strict or silent error handling
//
// Basic Usage:
//
//	res, err := formkit.Parse(r.Header.Get("Content-Type"), r.ContentLength, r.Body,
//		formkit.WithLimits(limits.Limits{
//			MaxTotalBodyBytes: 10 << 20,
//			MaxParts:          1000,
//		}),
//	)
//	if err != nil {
//		// limits.ErrBodyTooLarge, multipart.ErrMalformedBoundary, ...
//	}
//	defer res.Close()
//
//	name, _ := res.Fields.Get("name")
//	if avatar, ok := res.Files.Get("avatar"); ok {
//		io.Copy(dst, avatar)
//	}
//
// Silent mode substitutes an empty result for every decode-time failure
// while still surfacing oversized bodies:
//
//	res, err := formkit.Parse(ct, length, body, formkit.WithSilent())
//
// Bodies with an absent or unrecognized content type are not decoded; the
// untouched body is handed back as Result.Stream so callers can inspect it
// themselves.
package formkit
