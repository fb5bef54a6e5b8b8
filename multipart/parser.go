package multipart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/quotedprintable"
	"strings"

	"github.com/dmitrymomot/formkit/limits"
	"github.com/dmitrymomot/formkit/sink"
)

// Field is one decoded form field in wire order.
type Field struct {
	Name  string
	Value string
}

// FileUpload is one decoded file part. Its content lives in Sink, rewound
// and ready to read; ownership transfers to the caller on a successful
// parse and the caller must Close it.
type FileUpload struct {
	Field       string
	Filename    string
	ContentType string
	Header      Header
	Sink        sink.Sink
	Size        int64
}

// Read reads from the underlying sink.
func (f *FileUpload) Read(p []byte) (int, error) { return f.Sink.Read(p) }

// Close releases the underlying sink.
func (f *FileUpload) Close() error { return f.Sink.Close() }

// Parser collects the Decoder's event stream into fields and file uploads.
// The zero value is usable: no limits, default spooled sinks, UTF-8 field
// text with replacement of invalid bytes.
type Parser struct {
	// SinkFactory allocates the sink for each file part. Defaults to
	// sink.Default.
	SinkFactory sink.Factory

	// Limits bounds this parse call.
	Limits limits.Limits

	// Charset decodes field values unless a part declares its own via a
	// Content-Type charset parameter. Defaults to UTF-8.
	Charset string

	// Policy selects the reaction to undecodable text.
	Policy Policy
}

// partial tracks the part currently being accumulated.
type partial struct {
	name     string
	filename string
	headers  Header
	isFile   bool
	sk       sink.Sink
	size     int64
	buf      []byte
	encoding string
	charset  string
}

// Parse decodes one multipart body. Either a complete, consistent result
// is returned or an error; never both. On error every sink allocated so
// far has been released.
func (p *Parser) Parse(r io.Reader, boundary string, length int64) ([]Field, []*FileUpload, error) {
	d, err := NewDecoder(r, boundary, length, p.Limits)
	if err != nil {
		return nil, nil, err
	}
	factory := p.SinkFactory
	if factory == nil {
		factory = sink.Default
	}

	var (
		fields []Field
		files  []*FileUpload
		cur    *partial
	)
	fail := func(err error) ([]Field, []*FileUpload, error) {
		if cur != nil && cur.sk != nil {
			_ = cur.sk.Close()
		}
		for _, f := range files {
			_ = f.Sink.Close()
		}
		return nil, nil, err
	}

	for {
		ev, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fail(err)
		}
		switch ev := ev.(type) {
		case FieldBegun:
			cur = &partial{
				name:     ev.Name,
				headers:  ev.Headers,
				encoding: transferEncoding(ev.Headers),
				charset:  partCharset(ev.Headers, p.Charset),
			}
		case FileBegun:
			sk, err := factory(length, ev.Name, ev.Filename, ev.Headers.Get("Content-Type"))
			if err != nil {
				return fail(err)
			}
			cur = &partial{
				name:     ev.Name,
				filename: ev.Filename,
				headers:  ev.Headers,
				isFile:   true,
				sk:       sk,
			}
		case Continuation:
			if cur.isFile {
				if _, err := cur.sk.Write(ev.Data); err != nil {
					return fail(fmt.Errorf("multipart: failed to store file content: %w", err))
				}
				cur.size += int64(len(ev.Data))
				if rep, ok := cur.sk.(sink.MemoryReporter); ok && rep.InMemory() {
					if err := d.acct.Add(len(ev.Data)); err != nil {
						return fail(err)
					}
				}
				continue
			}
			if err := d.acct.Add(len(ev.Data)); err != nil {
				return fail(err)
			}
			cur.buf = append(cur.buf, ev.Data...)
		case PartEnded:
			if cur.isFile {
				if _, err := cur.sk.Seek(0, io.SeekStart); err != nil {
					return fail(fmt.Errorf("multipart: failed to rewind sink: %w", err))
				}
				files = append(files, &FileUpload{
					Field:       cur.name,
					Filename:    cur.filename,
					ContentType: cur.headers.Get("Content-Type"),
					Header:      cur.headers,
					Sink:        cur.sk,
					Size:        cur.size,
				})
				cur = nil
				continue
			}
			raw, err := decodeTransfer(cur.buf, cur.encoding)
			if err != nil {
				return fail(&BodyDecodeError{Field: cur.name, Err: err})
			}
			text, err := DecodeText(raw, cur.charset, p.Policy)
			if err != nil {
				return fail(&BodyDecodeError{Field: cur.name, Err: err})
			}
			fields = append(fields, Field{Name: cur.name, Value: text})
			cur = nil
		}
	}
	return fields, files, nil
}

// transferEncoding extracts the part's content transfer encoding. Identity
// encodings collapse to "".
func transferEncoding(h Header) string {
	v := strings.ToLower(strings.TrimSpace(h.Get("Content-Transfer-Encoding")))
	switch v {
	case "", "7bit", "8bit", "binary":
		return ""
	}
	return v
}

// partCharset picks the charset declared by the part's own content type,
// falling back to the parser-wide one.
func partCharset(h Header, fallback string) string {
	if ct := h.Get("Content-Type"); ct != "" {
		if _, params := parseOptions(ct); params["charset"] != "" {
			return params["charset"]
		}
	}
	return fallback
}

// decodeTransfer reverses a part's content transfer encoding.
func decodeTransfer(b []byte, encoding string) ([]byte, error) {
	switch encoding {
	case "":
		return b, nil
	case "base64":
		compact := strings.Map(dropSpace, string(b))
		out, err := base64.StdEncoding.DecodeString(compact)
		if err != nil {
			return nil, fmt.Errorf("broken base64 data: %w", err)
		}
		return out, nil
	case "quoted-printable":
		out, err := io.ReadAll(quotedprintable.NewReader(bytes.NewReader(b)))
		if err != nil {
			return nil, fmt.Errorf("broken quoted-printable data: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported transfer encoding %q", encoding)
}

func dropSpace(r rune) rune {
	switch r {
	case ' ', '\t', '\r', '\n':
		return -1
	}
	return r
}
