package deck

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcher_EmitsInitialContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(yamlDeck), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	w := NewFileWatcher(path)
	if w.Path() != path {
		t.Errorf("expected path %q, got %q", path, w.Path())
	}
	ch, err := w.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	select {
	case data := <-ch:
		if string(data) != yamlDeck {
			t.Errorf("unexpected contents %q", data)
		}
	case <-ctx.Done():
		t.Fatal("timeout waiting for initial content")
	}
}

func TestFileWatcher_EmitsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ch, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	<-ch

	if err := os.WriteFile(path, []byte(jsonDeck), 0o600); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	for {
		select {
		case data := <-ch:
			if string(data) == jsonDeck {
				return
			}
		case <-ctx.Done():
			t.Fatal("timeout waiting for updated content")
		}
	}
}

func TestFileWatcher_NonexistentFile(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := NewFileWatcher("/nonexistent/deck.yaml").Watch(ctx); err == nil {
		t.Error("expected error for nonexistent file")
	}
}
