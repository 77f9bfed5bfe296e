package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	d, err := Parse([]byte(jsonDeck), AutoCodec{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Title != "Talk" || len(d.Slides) != 2 {
		t.Errorf("unexpected deck: %+v", d)
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("slides: []\n"), YAMLCodec{})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("expected validation error, got %v", err)
	}

	_, err = Parse([]byte("{not json"), JSONCodec{})
	if err == nil || !strings.Contains(err.Error(), "decode failed") {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.yaml")
	if err := os.WriteFile(path, []byte(yamlDeck), 0o600); err != nil {
		t.Fatalf("write deck: %v", err)
	}

	d, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if d.Title != "Talk" {
		t.Errorf("expected title Talk, got %q", d.Title)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
