package multipart

// Event is one step of a multipart decode. Events are produced in wire
// order by Decoder.Next and consumed in a single forward pass; the stream
// is not restartable.
type Event interface {
	isEvent()
}

// FieldBegun announces a part carrying a form field (no filename parameter
// in its content disposition).
type FieldBegun struct {
	Headers Header
	Name    string
}

// FileBegun announces a part carrying a file upload. Filename has RFC 2231
// continuations already resolved.
type FileBegun struct {
	Headers  Header
	Name     string
	Filename string
}

// Continuation carries a chunk of the current part's body. The slice is
// owned by the receiver and remains valid after the next call to Next.
type Continuation struct {
	Data []byte
}

// PartEnded closes the current part.
type PartEnded struct{}

func (FieldBegun) isEvent()   {}
func (FileBegun) isEvent()    {}
func (Continuation) isEvent() {}
func (PartEnded) isEvent()    {}
