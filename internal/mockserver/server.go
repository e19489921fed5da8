// Package mockserver implements a local stand-in for the definitions
// endpoint, backed by fixture files.
//
// The real service is slow and rate-limited, which makes it a poor test
// target. This server speaks the same wire shape — POST /definitions with a
// JSON array of coordinate strings, answered by a coordinate-to-definition
// object — so the client can be pointed at it via the root configuration
// value.
//
// Fixtures are JSON files, each containing a batch-shaped object mapping
// coordinate text to a definition payload. Coordinates requested but not
// covered by any fixture are answered the way the real service answers
// unprocessed components: a definition with degenerate described/licensed
// blocks rather than an error.
package mockserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cleardef/pkg/coordinate"
)

// Server serves the mock definitions endpoint.
type Server struct {
	defs   map[string]json.RawMessage
	logger *log.Logger
}

// New creates an empty mock server. logger may be nil to disable logging.
func New(logger *log.Logger) *Server {
	return &Server{
		defs:   make(map[string]json.RawMessage),
		logger: logger,
	}
}

// LoadFixtures merges every *.json file under dir into the served
// definitions. Each file must hold a batch-shaped object; its keys must be
// valid coordinate texts.
func (s *Server) LoadFixtures(dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}

	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading fixture %s: %w", path, err)
		}

		var batch map[string]json.RawMessage
		if err := json.Unmarshal(data, &batch); err != nil {
			return fmt.Errorf("parsing fixture %s: %w", path, err)
		}

		for text, def := range batch {
			if _, err := coordinate.Parse(text); err != nil {
				return fmt.Errorf("fixture %s: %w", path, err)
			}
			s.defs[text] = def
		}
		if s.logger != nil {
			s.logger.Debug("fixture loaded", "path", path, "definitions", len(batch))
		}
	}
	return nil
}

// Add registers one definition payload under a coordinate text.
func (s *Server) Add(text string, def json.RawMessage) {
	s.defs[text] = def
}

// Handler returns the HTTP handler for the mock endpoint.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Post("/definitions", s.handleDefinitions)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func (s *Server) handleDefinitions(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "reading body", http.StatusBadRequest)
		return
	}

	var coords []string
	if err := json.Unmarshal(body, &coords); err != nil {
		http.Error(w, "body must be a JSON array of coordinate strings", http.StatusBadRequest)
		return
	}

	// The real service caps requests at 1000 coordinates.
	if len(coords) > 1000 {
		http.Error(w, "too many coordinates", http.StatusBadRequest)
		return
	}

	resp, err := s.respond(coords)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.logger != nil {
		s.logger.Info("definitions served", "coordinates", len(coords))
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(resp)
}

// respond builds the batch response object, preserving request order.
// encoding/json sorts map keys, so the object is assembled by hand.
func (s *Server) respond(coords []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, text := range coords {
		coord, err := coordinate.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate '%s'", text)
		}

		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(text)
		buf.Write(key)
		buf.WriteByte(':')

		if def, ok := s.defs[text]; ok {
			buf.Write(def)
		} else {
			buf.Write(placeholder(coord))
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// placeholder mimics the service's answer for a component it has not
// processed: all keys present, described/licensed structurally degenerate.
func placeholder(coord coordinate.Coordinate) json.RawMessage {
	obj := map[string]any{
		"coordinates": map[string]string{
			"type":     coord.Shape.String(),
			"provider": coord.Provider.String(),
			"name":     coord.Name,
			"revision": coord.Version.String(),
		},
		"described": map[string]any{},
		"licensed":  map[string]any{},
		"files":     []any{},
		"scores":    map[string]int{"effective": 0, "tool": 0},
	}
	out, _ := json.Marshal(obj)
	return out
}
