package forms

import (
	"io"
	"net/http"
	"strings"
)

// FileBlob is a raw attachment pulled out of a multipart body: the bytes
// plus what the client declared about them. Nothing is verified at this
// stage; the gatekeeper rules on MIME type and size later.
type FileBlob struct {
	Data     []byte
	Filename string
	MimeType string
	Size     int64
}

// Draft is the untyped decode of one incoming form: trimmed scalar values
// keyed by field name, and file blobs keyed by slot name. Missing fields
// are simply absent; the validator turns absence into field errors.
type Draft struct {
	Values map[string]string
	Files  map[string]*FileBlob
}

const maxFormMemory = 32 << 20

// ParseMultipart decodes a multipart request into a Draft. Only the named
// slots are read as files; unknown parts are ignored. A missing slot is
// not an error here.
func ParseMultipart(r *http.Request, slots []string) (*Draft, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, err
	}

	draft := &Draft{
		Values: make(map[string]string),
		Files:  make(map[string]*FileBlob),
	}

	for key, vals := range r.MultipartForm.Value {
		if len(vals) == 0 {
			continue
		}
		draft.Values[key] = strings.TrimSpace(vals[0])
	}

	for _, slot := range slots {
		headers := r.MultipartForm.File[slot]
		if len(headers) == 0 {
			continue
		}
		header := headers[0]

		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		draft.Files[slot] = &FileBlob{
			Data:     data,
			Filename: header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Size:     int64(len(data)),
		}
	}

	return draft, nil
}

// Get returns the trimmed scalar value for a field, or "" when absent.
func (d *Draft) Get(field string) string {
	return d.Values[field]
}
