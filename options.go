package tether

import (
	"time"

	"github.com/zoobzio/clockz"
)

// DefaultLivenessInterval is how often a watch checks whether its Loader is
// still referenced. It bounds how long a dropped Loader keeps its watch.
const DefaultLivenessInterval = 5 * time.Second

// config holds configuration options for a Loader.
type config struct {
	codec       Codec
	clock       clockz.Clock
	interval    time.Duration
	metrics     MetricsProvider
	onStop      func(StopReason)
	historySize int
}

// Option configures a Loader.
type Option func(*config)

func defaultConfig() *config {
	return &config{
		codec:    AutoCodec{},
		clock:    clockz.RealClock,
		interval: DefaultLivenessInterval,
		metrics:  NoOpMetricsProvider{},
	}
}

// WithCodec sets the codec used to deserialize the source.
// Default: AutoCodec.
func WithCodec(codec Codec) Option {
	return func(c *config) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// WithClock sets a custom clock for time operations.
// Use this with clockz.FakeClock to drive liveness checks in tests.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLivenessInterval sets how often a watch checks whether its Loader is
// still referenced. Non-positive values are ignored.
// Default: DefaultLivenessInterval.
func WithLivenessInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithMetrics sets a metrics provider for observability integration.
func WithMetrics(provider MetricsProvider) Option {
	return func(c *config) {
		if provider != nil {
			c.metrics = provider
		}
	}
}

// WithOnStop sets a callback invoked once when the watch of the Loader stops,
// after its subscription has been released. It runs on the watch goroutine
// and must not reference the Loader, or the Loader can never be reclaimed.
func WithOnStop(fn func(StopReason)) Option {
	return func(c *config) {
		c.onStop = fn
	}
}

// WithErrorHistory keeps the last n reload failures, see Loader.ErrorHistory.
// Use 0 (default) to only retain the most recent error via LastError.
func WithErrorHistory(n int) Option {
	return func(c *config) {
		c.historySize = n
	}
}
