package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the body limit used when none is configured (1 MiB).
const DefaultMaxJSONSize int64 = 1 << 20

// JSONOption configures the JSON binder.
type JSONOption func(*jsonOptions)

type jsonOptions struct {
	maxBytes int64
}

// WithMaxBytes limits the accepted body size. Non-positive values keep the
// default.
func WithMaxBytes(n int64) JSONOption {
	return func(o *jsonOptions) {
		if n > 0 {
			o.maxBytes = n
		}
	}
}

// JSON returns a binder decoding an application/json body into v.
// GET and HEAD requests are not applicable.
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	o := &jsonOptions{maxBytes: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(o)
	}

	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, o.maxBytes+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrInvalidJSON, err)
		}
		if int64(len(body)) > o.maxBytes {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, o.maxBytes)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		dec.UseNumber()

		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}
		return nil
	}
}
