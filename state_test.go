package tether

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateAbsent, "absent"},
		{StateHealthy, "healthy"},
		{StateDegraded, "degraded"},
		{State(999), "unknown"},
	}

	for _, tt := range tests {
		if s := tt.state.String(); s != tt.want {
			t.Errorf("expected %q, got %q", tt.want, s)
		}
	}
}

func TestState_ZeroValueIsAbsent(t *testing.T) {
	var s State
	if s != StateAbsent {
		t.Errorf("expected zero State to be absent, got %s", s)
	}
}

func TestStopReason_String(t *testing.T) {
	tests := []struct {
		reason StopReason
		want   string
	}{
		{ReasonUnreachable, "unreachable"},
		{ReasonClosed, "closed"},
		{ReasonDirectoryRemoved, "directory_removed"},
		{ReasonNotifierClosed, "notifier_closed"},
		{StopReason(999), "unknown"},
	}

	for _, tt := range tests {
		if s := tt.reason.String(); s != tt.want {
			t.Errorf("expected %q, got %q", tt.want, s)
		}
	}
}
