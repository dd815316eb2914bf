package tether

import (
	"testing"
	"time"
)

func TestStringKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
	}{
		{"loader_id", KeyLoaderID.Field("id").Key().Name()},
		{"source", KeySource.Field("file /etc/app.yaml").Key().Name()},
		{"state", KeyState.Field("healthy").Key().Name()},
		{"old_state", KeyOldState.Field("absent").Key().Name()},
		{"new_state", KeyNewState.Field("healthy").Key().Name()},
		{"error", KeyError.Field("something went wrong").Key().Name()},
		{"stage", KeyStage.Field("parse").Key().Name()},
		{"path", KeyPath.Field("/etc/app.yaml").Key().Name()},
		{"op", KeyOp.Field("write").Key().Name()},
		{"reason", KeyReason.Field("closed").Key().Name()},
	}

	for _, tt := range tests {
		if tt.got != tt.name {
			t.Errorf("expected key %q, got %q", tt.name, tt.got)
		}
	}
}

func TestKeyInterval(t *testing.T) {
	field := KeyInterval.Field(5 * time.Second)
	if field.Key().Name() != "interval" {
		t.Errorf("expected key 'interval', got %q", field.Key().Name())
	}
}

func TestKeyListeners(t *testing.T) {
	field := KeyListeners.Field(2)
	if field.Key().Name() != "listeners" {
		t.Errorf("expected key 'listeners', got %q", field.Key().Name())
	}
}
