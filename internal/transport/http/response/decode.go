package response

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

// FormFiller populates a dto from parsed url-encoded form values.
type FormFiller interface {
	FillForm(values url.Values)
}

// DecodeForm decodes a request body into dst. JSON bodies are decoded as
// JSON; everything else goes through ParseForm so plain browser form posts
// work.
func DecodeForm(r *http.Request, dst any) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		return DecodeJSON(r, dst)
	}

	if err := r.ParseForm(); err != nil {
		return domain.ErrInvalidForm(err)
	}
	f, ok := dst.(FormFiller)
	if !ok {
		return domain.ErrInvalidForm(errors.New("destination cannot be filled from a form"))
	}
	f.FillForm(r.PostForm)
	return nil
}

// IsFormRequest reports whether the client posted an url-encoded form, i.e.
// whether success should be signalled by a redirect instead of a JSON body.
func IsFormRequest(r *http.Request) bool {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return ct == "application/x-www-form-urlencoded"
}

// DecodeJSON decodes a JSON request body into dst.
// It rejects multiple JSON values.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		return domain.ErrInvalidForm(err)
	}

	// Disallow trailing data: {}{}
	if err := dec.Decode(&struct{}{}); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.ErrInvalidForm(err)
	}

	return domain.ErrInvalidForm(errors.New("multiple JSON values"))
}
