package formkit

import "github.com/dmitrymomot/formkit/multipart"

// Field is one decoded form field.
type Field = multipart.Field

// FileUpload is one decoded file part. See multipart.FileUpload.
type FileUpload = multipart.FileUpload

// Fields is an ordered multimap of form fields. Order equals occurrence
// order in the wire body.
type Fields struct {
	list []Field
}

// Get returns the first value for name.
func (f *Fields) Get(name string) (string, bool) {
	for _, fld := range f.list {
		if fld.Name == name {
			return fld.Value, true
		}
	}
	return "", false
}

// GetAll returns every value for name in wire order.
func (f *Fields) GetAll(name string) []string {
	var out []string
	for _, fld := range f.list {
		if fld.Name == name {
			out = append(out, fld.Value)
		}
	}
	return out
}

// All returns the fields in wire order. The caller must not mutate the
// returned slice.
func (f *Fields) All() []Field { return f.list }

// Len reports the number of fields.
func (f *Fields) Len() int { return len(f.list) }

// Files is an ordered multimap of file uploads. Order equals occurrence
// order in the wire body.
type Files struct {
	list []*FileUpload
}

// Get returns the first upload for the given field name.
func (f *Files) Get(name string) (*FileUpload, bool) {
	for _, u := range f.list {
		if u.Field == name {
			return u, true
		}
	}
	return nil, false
}

// GetAll returns every upload for the given field name in wire order.
func (f *Files) GetAll(name string) []*FileUpload {
	var out []*FileUpload
	for _, u := range f.list {
		if u.Field == name {
			out = append(out, u)
		}
	}
	return out
}

// All returns the uploads in wire order. The caller must not mutate the
// returned slice.
func (f *Files) All() []*FileUpload { return f.list }

// Len reports the number of uploads.
func (f *Files) Len() int { return len(f.list) }

// Close releases the sinks of all uploads. The first error is returned,
// but every sink is closed.
func (f *Files) Close() error {
	var first error
	for _, u := range f.list {
		if err := u.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
