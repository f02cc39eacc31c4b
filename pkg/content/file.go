package content

import "github.com/kuverta/kuverta-go/pkg/validate"

// File is one attachment part of a content item. Data carries the file body
// base64 encoded; ContentType is its IANA media type, e.g. "application/pdf".
type File struct {
	Name        string
	Data        string
	ContentType string
}

func (f *File) Validate() error {
	if f.Name == "" {
		return invalid("file", "name", "required")
	}
	if f.Data == "" {
		return invalid("file", "data", "required")
	}
	if !validate.Base64(f.Data) {
		return invalid("file", "data", "not valid base64")
	}
	if f.ContentType == "" {
		return invalid("file", "content_type", "required")
	}
	return nil
}

func (f *File) Wire() map[string]any {
	m := map[string]any{}
	put(m, "name", f.Name)
	put(m, "data", f.Data)
	put(m, "content_type", f.ContentType)
	return m
}

// Icon is a payment option logo. The platform only accepts square PNGs with
// an alpha channel, so the content type is fixed and Data must satisfy
// validate.Icon.
type Icon struct {
	Name string
	Data string
}

func (i *Icon) Validate() error {
	if i.Name == "" {
		return invalid("icon", "name", "required")
	}
	if err := validate.Icon(i.Data); err != nil {
		return invalid("icon", "data", err.Error())
	}
	return nil
}

func (i *Icon) Wire() map[string]any {
	m := map[string]any{}
	put(m, "name", i.Name)
	put(m, "data", i.Data)
	m["content_type"] = "image/png"
	return m
}
