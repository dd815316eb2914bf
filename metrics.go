package tether

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key loader events.
// See package metrics for a Prometheus implementation.
type MetricsProvider interface {
	// OnStateChange is called when the loader transitions between states.
	OnStateChange(from, to State)

	// OnReloadSuccess is called when a value is successfully loaded.
	OnReloadSuccess(duration time.Duration)

	// OnReloadFailure is called when loading fails.
	// Stage indicates where the failure occurred: "read" or "parse".
	OnReloadFailure(stage string, duration time.Duration)

	// OnEventReceived is called for each filesystem event matching the watched file.
	OnEventReceived()

	// OnWatchStopped is called once when a watch releases its subscription.
	OnWatchStopped(reason StopReason)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State)                  {}
func (NoOpMetricsProvider) OnReloadSuccess(_ time.Duration)           {}
func (NoOpMetricsProvider) OnReloadFailure(_ string, _ time.Duration) {}
func (NoOpMetricsProvider) OnEventReceived()                          {}
func (NoOpMetricsProvider) OnWatchStopped(_ StopReason)               {}
