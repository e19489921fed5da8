package definitions

import (
	"bytes"
	"encoding/json"
	"iter"
	"net/http"
	"strings"

	"github.com/matzehuels/cleardef/pkg/coordinate"
	"github.com/matzehuels/cleardef/pkg/errors"
)

const (
	// DefaultRoot is the production root URI of the definitions service.
	DefaultRoot = "https://api.clearlydefined.io"

	// definitionsPath is the lookup endpoint, relative to the root.
	definitionsPath = "/definitions"

	// MaxCoordinates is the hard per-request coordinate limit the service
	// enforces. Requested chunk sizes above it are clamped.
	MaxCoordinates = 1000
)

// Chunks groups coordinates into request-sized chunks of coordinate text
// strings. Each chunk holds at most min(size, MaxCoordinates) entries; the
// final chunk may be partial. The sequence is lazy and single-pass: it pulls
// from coords as it is consumed, preserves order, and is restarted by
// recreating it.
//
// The service is slow per request and enforces the coordinate limit, so
// callers are expected to dispatch the resulting chunks as multiple,
// potentially parallel, requests rather than one large one.
func Chunks(size int, coords iter.Seq[coordinate.Coordinate]) iter.Seq[[]string] {
	size = min(max(size, 1), MaxCoordinates)

	return func(yield func([]string) bool) {
		chunk := make([]string, 0, size)
		for coord := range coords {
			chunk = append(chunk, coord.String())
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = make([]string, 0, size)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// NewRequest builds the POST request for one chunk of coordinate strings:
// POST {root}/definitions with a JSON array body and JSON content headers.
// Build failures (a malformed root, for instance) are transport errors.
func NewRequest(root string, chunk []string) (*http.Request, error) {
	body, err := json.Marshal(chunk)
	if err != nil {
		// a []string cannot fail to marshal; kept for completeness
		return nil, errors.Wrap(errors.ErrCodeTransport, err, "encoding coordinates")
	}

	url := strings.TrimSuffix(root, "/") + definitionsPath
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTransport, err, "building definitions request for %s", url)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Requests composes Chunks and NewRequest into a lazy sequence of
// ready-to-send requests. Each request is independent; scheduling,
// parallelism, and retries are entirely the caller's concern.
func Requests(root string, size int, coords iter.Seq[coordinate.Coordinate]) iter.Seq2[*http.Request, error] {
	return func(yield func(*http.Request, error) bool) {
		for chunk := range Chunks(size, coords) {
			if !yield(NewRequest(root, chunk)) {
				return
			}
		}
	}
}
