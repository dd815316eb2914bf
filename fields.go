package tether

import "github.com/zoobzio/capitan"

// Field keys for Loader events.
var (
	// KeyLoaderID is the unique identifier of the Loader.
	KeyLoaderID = capitan.NewStringKey("loader_id")

	// KeySource is the human readable description of the strategy.
	KeySource = capitan.NewStringKey("source")

	// KeyState is the current state of the Loader.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyStage is the reload stage that failed: "read" or "parse".
	KeyStage = capitan.NewStringKey("stage")

	// KeyPath is the filesystem path an event refers to.
	KeyPath = capitan.NewStringKey("path")

	// KeyOp is the filesystem operation of an event.
	KeyOp = capitan.NewStringKey("op")

	// KeyReason is why a watch stopped.
	KeyReason = capitan.NewStringKey("reason")

	// KeyInterval is the liveness check interval of a watch.
	KeyInterval = capitan.NewDurationKey("interval")

	// KeyListeners is the number of listeners registered on a watch.
	KeyListeners = capitan.NewIntKey("listeners")
)
