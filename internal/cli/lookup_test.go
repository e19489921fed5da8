package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/cleardef/internal/mockserver"
	"github.com/matzehuels/cleardef/pkg/definitions"
)

func TestGatherCoordinates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coords.txt")
	content := "crate/cratesio/-/serde/1.0.0\n\n# a comment\ngit/github/myorg/myrepo/abcdef\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	coords, err := gatherCoordinates([]string{"crate/cratesio/-/syn/1.0.14"}, path)
	if err != nil {
		t.Fatalf("gatherCoordinates failed: %v", err)
	}

	if len(coords) != 3 {
		t.Fatalf("coords = %d, want 3", len(coords))
	}
	if coords[0].Name != "syn" || coords[1].Name != "serde" || coords[2].Name != "myrepo" {
		t.Errorf("unexpected order: %v, %v, %v", coords[0], coords[1], coords[2])
	}
}

func TestGatherCoordinates_ParseErrorSurfaces(t *testing.T) {
	_, err := gatherCoordinates([]string{"not-a-coordinate"}, "")
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestLookupCommand_JSON(t *testing.T) {
	server := httptest.NewServer(mockserver.New(nil).Handler())
	defer server.Close()

	// Keep the default config location out of the picture.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newLookupCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--root", server.URL, "--json", "crate/cratesio/-/syn/1.0.14"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("lookup failed: %v\nstderr: %s", err, errOut.String())
	}

	var defs []definitions.Definition
	if err := json.Unmarshal(out.Bytes(), &defs); err != nil {
		t.Fatalf("output is not a definitions array: %v\noutput: %s", err, out.String())
	}
	if len(defs) != 1 {
		t.Fatalf("definitions = %d, want 1", len(defs))
	}
	if defs[0].Coordinates.Name != "syn" {
		t.Errorf("name = %q", defs[0].Coordinates.Name)
	}
}

func TestLookupCommand_NoCoordinates(t *testing.T) {
	cmd := newLookupCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error when no coordinates are given")
	}
}
