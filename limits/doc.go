// Package limits defines per-call decoding bounds and the bookkeeping used
// to enforce them while a request body is being read.
//
// Limits are always supplied per decode call and never stored globally. The
// zero value of every bound means "no limit", so an empty Limits struct is a
// valid, fully permissive configuration.
//
// Basic usage:
//
//	lim := limits.Limits{
//	    MaxTotalBodyBytes: 10 << 20, // reject bodies over 10 MiB up front
//	    MaxInMemoryBytes:  1 << 20,  // cap in-memory accumulation at 1 MiB
//	    MaxParts:          1000,     // cap multipart part count
//	}
//
//	if err := lim.CheckContentLength(contentLength); err != nil {
//	    // limits.ErrBodyTooLarge - nothing has been read yet
//	}
//
// The Accountant and PartCounter types are consumed by the decoder packages;
// they check their bound on every increment so an adversarial body is
// rejected mid-read instead of after buffering.
package limits
