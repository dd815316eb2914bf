package tether

import "context"

// Strategy describes where a value comes from and how it is reloaded.
//
// The package provides Resource, File, URL and WatchFile. Custom strategies
// only need to implement these four methods.
type Strategy interface {
	// Exists reports whether the source is currently reachable.
	// Any I/O failure while checking is reported as false.
	Exists(ctx context.Context) bool

	// ReloadsEveryTime reports whether every Loader.Get must load the source
	// again instead of returning the cached value.
	ReloadsEveryTime() bool

	// Load reads the source and deserializes it into v with codec.
	// Read failures wrap ErrSourceUnavailable; codec failures are *ParseError.
	Load(ctx context.Context, codec Codec, v any) error

	// String describes the source for diagnostics. It is never parsed.
	String() string
}

// Listener is notified with the value of a watched source: once with the
// initial value while the Loader is being created, and again after every
// successful reload.
type Listener[T any] interface {
	OnChanged(value T)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc[T any] func(value T)

// OnChanged calls f(value).
func (f ListenerFunc[T]) OnChanged(value T) {
	f(value)
}

// WatchStrategy is a Strategy that pushes change notifications for a file.
// A Loader built on a WatchStrategy keeps its value fresh in the background
// and stops watching once the Loader is no longer referenced.
type WatchStrategy[T any] interface {
	Strategy

	// Target returns the watched directory and the file name inside it.
	Target() (dir, name string)

	// Subscribe starts receiving events for the directory returned by Target.
	Subscribe() (Subscription, error)

	// Listeners returns the listeners to notify, in registration order.
	Listeners() []Listener[T]
}

// watchTarget matches every WatchStrategy regardless of its value type.
type watchTarget interface {
	Strategy
	Target() (dir, name string)
}
