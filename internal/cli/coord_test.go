package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestCoordCommand(t *testing.T) {
	cmd := newCoordCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"git/github/myorg/myrepo/abcdef/pr/42"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("coord failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"shape:", "git", "provider:", "github", "myorg", "myrepo", "abcdef", "opaque", "curation pr:", "42"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestCoordCommand_Invalid(t *testing.T) {
	cmd := newCoordCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"crate/npmjs/-/left-pad/1.3.0"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
