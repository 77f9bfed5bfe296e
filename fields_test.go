package carousel

import (
	"testing"
	"time"
)

func TestKeyIndex(t *testing.T) {
	field := KeyIndex.Field(3)
	if field.Key().Name() != "index" {
		t.Errorf("expected key 'index', got %q", field.Key().Name())
	}
}

func TestKeyPreviousIndex(t *testing.T) {
	field := KeyPreviousIndex.Field(2)
	if field.Key().Name() != "previous_index" {
		t.Errorf("expected key 'previous_index', got %q", field.Key().Name())
	}
}

func TestKeyDirection(t *testing.T) {
	field := KeyDirection.Field("next")
	if field.Key().Name() != "direction" {
		t.Errorf("expected key 'direction', got %q", field.Key().Name())
	}
}

func TestKeySection(t *testing.T) {
	field := KeySection.Field("about")
	if field.Key().Name() != "section" {
		t.Errorf("expected key 'section', got %q", field.Key().Name())
	}
}

func TestKeyDelay(t *testing.T) {
	field := KeyDelay.Field(500 * time.Millisecond)
	if field.Key().Name() != "delay" {
		t.Errorf("expected key 'delay', got %q", field.Key().Name())
	}
}
