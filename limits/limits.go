package limits

// Unlimited disables a bound. It is the zero value, so an uninitialized
// Limits struct permits everything.
const Unlimited int64 = 0

// Limits bounds a single decode call. A zero field means the corresponding
// bound is not enforced.
type Limits struct {
	// MaxTotalBodyBytes caps the declared content length of the whole body.
	MaxTotalBodyBytes int64

	// MaxInMemoryBytes caps the total number of bytes held in memory at any
	// point during decoding: part headers, field values, and file data that
	// has not yet rolled over to disk.
	MaxInMemoryBytes int64

	// MaxParts caps the number of parts in a multipart body.
	MaxParts int64
}

// CheckContentLength validates a declared content length against
// MaxTotalBodyBytes. A negative length means the caller declared no length
// and is always accepted; the decoder then assumes an empty body.
func (l Limits) CheckContentLength(n int64) error {
	if l.MaxTotalBodyBytes > Unlimited && n > l.MaxTotalBodyBytes {
		return ErrBodyTooLarge
	}
	return nil
}

// Accountant tracks in-memory byte accumulation against MaxInMemoryBytes.
// It is not safe for concurrent use; one Accountant belongs to one decode
// call.
type Accountant struct {
	used int64
	max  int64
}

// NewAccountant returns an Accountant enforcing l.MaxInMemoryBytes.
func NewAccountant(l Limits) *Accountant {
	return &Accountant{max: l.MaxInMemoryBytes}
}

// Add records n more in-memory bytes and fails with ErrMemoryLimitExceeded
// once the running total passes the bound. The decoder must call Add before
// or immediately after each append so the check interleaves with reads.
func (a *Accountant) Add(n int) error {
	a.used += int64(n)
	if a.max > Unlimited && a.used > a.max {
		return ErrMemoryLimitExceeded
	}
	return nil
}

// Used reports the bytes accounted so far.
func (a *Accountant) Used() int64 { return a.used }

// PartCounter tracks the number of multipart parts against MaxParts.
type PartCounter struct {
	seen int64
	max  int64
}

// NewPartCounter returns a PartCounter enforcing l.MaxParts.
func NewPartCounter(l Limits) *PartCounter {
	return &PartCounter{max: l.MaxParts}
}

// Inc records one more part and fails with ErrPartCountExceeded once the
// count passes the bound.
func (c *PartCounter) Inc() error {
	c.seen++
	if c.max > Unlimited && c.seen > c.max {
		return ErrPartCountExceeded
	}
	return nil
}

// Seen reports the number of parts counted so far.
func (c *PartCounter) Seen() int64 { return c.seen }
