package definitions

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"testing"

	"github.com/matzehuels/cleardef/pkg/coordinate"
)

func makeCoords(t *testing.T, n int) []coordinate.Coordinate {
	t.Helper()
	coords := make([]coordinate.Coordinate, 0, n)
	for i := range n {
		coord, err := coordinate.Parse(fmt.Sprintf("crate/cratesio/-/pkg%d/1.0.%d", i, i))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		coords = append(coords, coord)
	}
	return coords
}

func TestChunks_Property(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		size       int
		wantChunks int
		wantFull   int // entries per non-final chunk
	}{
		{"exact multiple", 100, 50, 2, 50},
		{"partial final chunk", 101, 50, 3, 50},
		{"single partial chunk", 3, 50, 1, 50},
		{"chunk size above hard cap", 2500, 1500, 3, 1000},
		{"chunk size one", 4, 1, 4, 1},
		{"zero coordinates", 0, 50, 0, 50},
		{"non-positive size clamped", 3, 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords := makeCoords(t, tt.n)

			var chunks [][]string
			for chunk := range Chunks(tt.size, slices.Values(coords)) {
				chunks = append(chunks, chunk)
			}

			if len(chunks) != tt.wantChunks {
				t.Fatalf("chunks = %d, want %d", len(chunks), tt.wantChunks)
			}
			for i, chunk := range chunks {
				if i < len(chunks)-1 && len(chunk) != tt.wantFull {
					t.Errorf("chunk %d has %d entries, want %d", i, len(chunk), tt.wantFull)
				}
				if len(chunk) > tt.wantFull {
					t.Errorf("chunk %d exceeds size: %d", i, len(chunk))
				}
			}

			// Concatenation in order equals the input sequence.
			var all []string
			for _, chunk := range chunks {
				all = append(all, chunk...)
			}
			if len(all) != tt.n {
				t.Fatalf("total entries = %d, want %d", len(all), tt.n)
			}
			for i, text := range all {
				if text != coords[i].String() {
					t.Errorf("entry %d = %q, want %q", i, text, coords[i].String())
				}
			}
		})
	}
}

func TestChunks_Lazy(t *testing.T) {
	// Breaking out of the loop must stop consumption of the source.
	pulled := 0
	source := func(yield func(coordinate.Coordinate) bool) {
		for _, coord := range makeCoords(t, 100) {
			pulled++
			if !yield(coord) {
				return
			}
		}
	}

	for range Chunks(10, source) {
		break
	}

	if pulled > 10 {
		t.Errorf("pulled %d coordinates for one chunk, want at most 10", pulled)
	}
}

func TestNewRequest(t *testing.T) {
	chunk := []string{"crate/cratesio/-/syn/1.0.14", "git/github/myorg/myrepo/abcdef"}

	req, err := NewRequest("https://example.com", chunk)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	if req.Method != http.MethodPost {
		t.Errorf("Method = %s, want POST", req.Method)
	}
	if got := req.URL.String(); got != "https://example.com/definitions" {
		t.Errorf("URL = %s", got)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q", got)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("reading body failed: %v", err)
	}
	var decoded []string
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if !slices.Equal(decoded, chunk) {
		t.Errorf("body = %v, want %v", decoded, chunk)
	}
}

func TestNewRequest_TrailingSlashRoot(t *testing.T) {
	req, err := NewRequest("https://example.com/", []string{"crate/cratesio/-/syn/1.0.14"})
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	if got := req.URL.String(); got != "https://example.com/definitions" {
		t.Errorf("URL = %s", got)
	}
}

func TestRequests(t *testing.T) {
	coords := makeCoords(t, 25)

	var reqs []*http.Request
	for req, err := range Requests("https://example.com", 10, slices.Values(coords)) {
		if err != nil {
			t.Fatalf("Requests yielded error: %v", err)
		}
		reqs = append(reqs, req)
	}

	if len(reqs) != 3 {
		t.Fatalf("requests = %d, want 3", len(reqs))
	}
	for _, req := range reqs {
		if req.URL.Path != "/definitions" {
			t.Errorf("path = %s", req.URL.Path)
		}
	}
}
