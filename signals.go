package tether

import "github.com/zoobzio/capitan"

// Loader lifecycle signals.
var (
	// LoaderCreated is emitted when New has finished constructing a Loader.
	LoaderCreated = capitan.NewSignal(
		"tether.loader.created",
		"Loader created",
	)

	// LoaderStateChanged is emitted when a Loader transitions between states.
	LoaderStateChanged = capitan.NewSignal(
		"tether.loader.state.changed",
		"Loader state transition",
	)

	// LoaderReloadSucceeded is emitted when a reload stored a new value.
	LoaderReloadSucceeded = capitan.NewSignal(
		"tether.loader.reload.succeeded",
		"Reload succeeded",
	)

	// LoaderReloadFailed is emitted when a reload failed and the previous value was kept.
	LoaderReloadFailed = capitan.NewSignal(
		"tether.loader.reload.failed",
		"Reload failed, previous value retained",
	)
)

// Watch signals.
var (
	// WatchStarted is emitted when a Loader begins watching its source.
	WatchStarted = capitan.NewSignal(
		"tether.watch.started",
		"Watch started",
	)

	// WatchStopped is emitted when a watch has released its subscription.
	WatchStopped = capitan.NewSignal(
		"tether.watch.stopped",
		"Watch stopped",
	)

	// WatchEventReceived is emitted for every event that matches the watched file.
	WatchEventReceived = capitan.NewSignal(
		"tether.watch.event.received",
		"Filesystem event received",
	)

	// WatchSourceRemoved is emitted when the watched file disappears.
	WatchSourceRemoved = capitan.NewSignal(
		"tether.watch.source.removed",
		"Watched file removed, keeping last value",
	)

	// WatchError is emitted when the notification facility reports an error.
	WatchError = capitan.NewSignal(
		"tether.watch.error",
		"Notifier error",
	)

	// ListenerPanicked is emitted when a listener panics during notification.
	ListenerPanicked = capitan.NewSignal(
		"tether.listener.panicked",
		"Listener panicked",
	)
)
