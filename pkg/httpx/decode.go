package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

var (
	ErrBadRequest = errors.New("httpx: bad request body")

	// ErrEmptyBody wraps ErrBadRequest so callers with optional bodies can
	// tell the two apart.
	ErrEmptyBody = fmt.Errorf("%w: empty body", ErrBadRequest)
)

// DecodeJSON reads a single JSON object from r into dst. Unknown fields are
// ignored; trailing data and an empty body are errors.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", ErrBadRequest)
	}
	return nil
}
