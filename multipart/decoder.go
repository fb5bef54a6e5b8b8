package multipart

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/formkit/limits"
)

type decoderState int

const (
	statePreamble decoderState = iota
	stateHeaders
	stateBody
	stateDone
)

// Decoder is the multipart state machine. It produces Events in wire order
// and enforces the call's limits while reading: the part counter advances
// on each part transition and every byte buffered in memory is charged to
// the accountant, so an over-limit body halts decoding immediately without
// consuming further input.
//
// A Decoder makes a single forward pass; it cannot be reused or rewound.
type Decoder struct {
	ls    *LineSplitter
	delim delimiter
	acct  *limits.Accountant
	parts *limits.PartCounter
	state decoderState
	queue []Event
	pend  []byte // terminator bytes deferred until the next body line
}

// NewDecoder creates a decoder for at most length bytes of r, delimited by
// boundary. It fails with ErrMalformedBoundary for an invalid token.
func NewDecoder(r io.Reader, boundary string, length int64, lim limits.Limits) (*Decoder, error) {
	delim, err := newDelimiter(boundary)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		ls:    NewLineSplitter(r, length),
		delim: delim,
		acct:  limits.NewAccountant(lim),
		parts: limits.NewPartCounter(lim),
	}, nil
}

// Next returns the next decode event. It returns io.EOF after the terminal
// boundary; any other error is final and leaves the decoder stopped.
func (d *Decoder) Next() (Event, error) {
	if len(d.queue) > 0 {
		ev := d.queue[0]
		d.queue = d.queue[1:]
		return ev, nil
	}
	switch d.state {
	case statePreamble:
		terminal, err := d.delim.skipPreamble(d.ls)
		if err != nil {
			d.state = stateDone
			return nil, err
		}
		if terminal {
			d.state = stateDone
			return nil, io.EOF
		}
		return d.beginPart()
	case stateHeaders:
		return d.beginPart()
	case stateBody:
		return d.bodyEvent()
	default:
		return nil, io.EOF
	}
}

// beginPart parses one header block and classifies the part as field or
// file by the filename parameter of its content disposition.
func (d *Decoder) beginPart() (Event, error) {
	d.state = stateDone // stays stopped unless the part opens cleanly
	if err := d.parts.Inc(); err != nil {
		return nil, err
	}
	h, err := parseHeaderBlock(d.ls, d.acct)
	if err != nil {
		return nil, err
	}
	disposition := h.Get("Content-Disposition")
	if disposition == "" {
		return nil, fmt.Errorf("%w: part is missing a content disposition", ErrMalformedHeaders)
	}
	_, params := parseOptions(disposition)
	name, ok := params["name"]
	if !ok {
		return nil, fmt.Errorf("%w: content disposition carries no field name", ErrMalformedHeaders)
	}

	d.state = stateBody
	d.pend = nil
	if filename, ok := extendedParam(params, "filename"); ok {
		return FileBegun{Headers: h, Name: name, Filename: fixWindowsPath(filename)}, nil
	}
	return FieldBegun{Headers: h, Name: name}, nil
}

// bodyEvent reads body lines until it can emit something. The terminator
// of each line is held back until the following line proves it belongs to
// the body rather than to the closing boundary, so content is reproduced
// byte for byte.
func (d *Decoder) bodyEvent() (Event, error) {
	for {
		line, term, err := d.ls.Next()
		if err == io.EOF {
			d.state = stateDone
			return nil, fmt.Errorf("%w: body ended before the closing boundary", ErrTruncatedBody)
		}
		if err != nil {
			d.state = stateDone
			return nil, err
		}
		if terminal, ok := d.delim.match(line); ok {
			d.pend = nil
			if terminal {
				d.state = stateDone
			} else {
				d.state = stateHeaders
			}
			return PartEnded{}, nil
		}

		var evs []Event
		if len(d.pend) > 0 {
			evs = append(evs, Continuation{Data: bytes.Clone(d.pend)})
		}
		d.pend = term
		if len(line) > 0 {
			evs = append(evs, Continuation{Data: bytes.Clone(line)})
		}
		if len(evs) == 0 {
			continue
		}
		d.queue = evs[1:]
		return evs[0], nil
	}
}

// fixWindowsPath reduces a full Windows path, as sent by older IE versions,
// to its basename.
func fixWindowsPath(filename string) string {
	if len(filename) >= 3 && (filename[1:3] == `:\` || filename[:2] == `\\`) {
		if i := strings.LastIndexByte(filename, '\\'); i >= 0 {
			return filename[i+1:]
		}
	}
	return filename
}
