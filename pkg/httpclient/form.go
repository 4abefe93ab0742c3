package httpclient

import (
	"bytes"
	"mime/multipart"

	"github.com/spf13/cast"
)

// File is an in-memory upload payload.
type File struct {
	Name    string
	Content []byte
}

type formPart struct {
	key   string
	value string
	file  *File
}

// Form accumulates multipart fields in insertion order. Passing a *Form as a
// request body switches the client to multipart encoding and leaves the
// Content-Type header to the multipart writer (it carries the boundary).
type Form struct {
	parts []formPart
}

func NewForm() *Form {
	return &Form{}
}

// AddField appends a plain text part; the value is string-coerced.
func (f *Form) AddField(key string, value any) *Form {
	f.parts = append(f.parts, formPart{key: key, value: cast.ToString(value)})
	return f
}

// AddFile appends a file part.
func (f *Form) AddFile(key, name string, content []byte) *Form {
	f.parts = append(f.parts, formPart{key: key, file: &File{Name: name, Content: content}})
	return f
}

func (f *Form) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, p := range f.parts {
		if p.file != nil {
			fw, err := w.CreateFormFile(p.key, p.file.Name)
			if err != nil {
				return nil, "", err
			}
			if _, err := fw.Write(p.file.Content); err != nil {
				return nil, "", err
			}
			continue
		}
		if err := w.WriteField(p.key, p.value); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
