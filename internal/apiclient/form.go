package apiclient

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Form accumulates multipart fields before submission. The boundary is
// generated by mime/multipart when the form is encoded.
type Form struct {
	fields []field
	files  []file
}

type field struct {
	name  string
	value string
}

type file struct {
	name        string
	filename    string
	contentType string
	data        []byte
}

func NewForm() *Form {
	return &Form{}
}

// Field appends a text field.
func (f *Form) Field(name, value string) *Form {
	f.fields = append(f.fields, field{name: name, value: value})
	return f
}

// File appends a file part with an explicit content type. The default
// CreateFormFile would label everything application/octet-stream and the
// API validates the declared image type.
func (f *Form) File(name, filename, contentType string, data []byte) *Form {
	f.files = append(f.files, file{name: name, filename: filename, contentType: contentType, data: data})
	return f
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", err
		}
	}
	for _, fl := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			`form-data; name="`+escapeQuotes(fl.name)+`"; filename="`+escapeQuotes(fl.filename)+`"`)
		h.Set("Content-Type", fl.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(fl.data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
