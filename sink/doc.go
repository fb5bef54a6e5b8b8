// Package sink provides the byte sinks that receive uploaded file content
// during form decoding, and the factory hook that lets callers replace the
// allocation policy per decode call.
//
// The default policy is a spooled sink: file data is buffered in memory and
// transparently rolls over to a temporary file once it passes a fixed
// threshold, so small uploads stay fast while large ones cannot exhaust
// memory.
//
// A sink is written by the decoder, then read by the caller. Ownership
// transfers to the caller on a successful decode; the caller must Close the
// sink to release the backing temporary file, if any.
package sink
