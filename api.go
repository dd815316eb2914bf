package tether

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Loader owns the current value of type T produced by a Strategy.
//
// A Loader is safe for concurrent use. Reads never block on I/O unless the
// strategy reloads every time. When the strategy is a WatchStrategy the value
// is refreshed in the background, and the background watch ends on its own
// once the Loader is no longer referenced.
type Loader[T any] struct {
	id       string
	strategy Strategy
	codec    Codec
	clock    clockz.Clock
	metrics  MetricsProvider

	state     atomic.Int32
	current   atomic.Pointer[T]
	lastError atomic.Pointer[error]
	history   *errorRing

	monitor *monitor[T]
}

// New creates a Loader and performs the initial load synchronously.
//
// A source that does not exist is not an error: the Loader starts in
// StateAbsent and Get reports no value. A source that exists but cannot be
// loaded, or a watch that cannot be established, fails with a
// *ConstructionError.
//
// For a WatchStrategy, every listener has received the initial value by the
// time New returns.
//
// Example:
//
//	loader, err := tether.New[Config](ctx,
//	    tether.WatchFile[Config]("/etc/myapp", "config.yaml",
//	        tether.ListenerFunc[Config](func(cfg Config) {
//	            log.Printf("config is now %+v", cfg)
//	        }),
//	    ),
//	)
func New[T any](ctx context.Context, strategy Strategy, opts ...Option) (*Loader[T], error) {
	if strategy == nil {
		return nil, errors.New("nil strategy")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	l := &Loader[T]{
		id:       uuid.NewString(),
		strategy: strategy,
		codec:    cfg.codec,
		clock:    cfg.clock,
		metrics:  cfg.metrics,
		history:  newErrorRing(cfg.historySize),
	}
	l.state.Store(int32(StateAbsent))

	var watch WatchStrategy[T]
	if _, ok := strategy.(watchTarget); ok {
		w, ok := strategy.(WatchStrategy[T])
		if !ok {
			return nil, &ConstructionError{Source: strategy.String(), Err: ErrListenerType}
		}
		watch = w
	}

	if !strategy.Exists(ctx) {
		l.created(ctx)
		return l, nil
	}

	// Subscribe before the first read so a write in between is not missed.
	var sub Subscription
	if watch != nil {
		s, err := watch.Subscribe()
		if err != nil {
			return nil, &ConstructionError{Source: strategy.String(), Err: err}
		}
		sub = s
	}

	value, err := l.reload(ctx)
	if err != nil {
		if sub != nil {
			sub.Close()
		}
		return nil, &ConstructionError{Source: strategy.String(), Err: err}
	}

	if watch != nil {
		m := newMonitor(l, watch, sub, cfg)
		m.notify(ctx, value)
		l.monitor = m
		runtime.AddCleanup(l, func(m *monitor[T]) { m.halt(ReasonUnreachable) }, m)
		go m.run(context.WithoutCancel(ctx))
	}

	l.created(ctx)
	return l, nil
}

// ID returns the unique identifier of the Loader, as found in its signals.
func (l *Loader[T]) ID() string {
	return l.id
}

// String describes the source of the Loader.
func (l *Loader[T]) String() string {
	return l.strategy.String()
}

// Get returns the current value and true, or the zero value and false if no
// value has ever been loaded. It never reports reload failures; see LastError.
func (l *Loader[T]) Get() (T, bool) {
	return l.GetContext(context.Background())
}

// GetContext is Get with a context for strategies that reload every time.
func (l *Loader[T]) GetContext(ctx context.Context) (T, bool) {
	if l.strategy.ReloadsEveryTime() && l.strategy.Exists(ctx) {
		_, _ = l.reload(ctx) //nolint:errcheck // Errors stored via setError
	}
	return l.value()
}

// State returns the current state of the Loader.
func (l *Loader[T]) State() State {
	return State(l.state.Load())
}

// LastError returns the error of the last failed reload, or nil if the last
// load succeeded.
func (l *Loader[T]) LastError() error {
	ptr := l.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns the reload failures since the last success, oldest
// first. Returns nil if error history is not enabled (see WithErrorHistory).
func (l *Loader[T]) ErrorHistory() []error {
	return l.history.snapshot()
}

// Watching reports whether a background watch is keeping the value fresh.
func (l *Loader[T]) Watching() bool {
	return l.monitor != nil && !l.monitor.stopped.Load()
}

// Close stops the background watch, if any, without waiting for it to
// release its subscription. Calling Close is optional: a Loader that is
// dropped releases its watch on its own. The cached value stays readable.
func (l *Loader[T]) Close() error {
	if l.monitor != nil {
		l.monitor.halt(ReasonClosed)
	}
	return nil
}

func (l *Loader[T]) value() (T, bool) {
	ptr := l.current.Load()
	if ptr == nil {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// reload loads the source once. On success the new value replaces the cached
// one; on failure the cached value is kept and the error is recorded.
func (l *Loader[T]) reload(ctx context.Context) (T, error) {
	start := l.clock.Now()

	var next T
	if err := l.strategy.Load(ctx, l.codec, &next); err != nil {
		stage := failureStage(err)
		l.setError(err)
		l.transitionState(ctx, l.failureState())
		capitan.Emit(ctx, LoaderReloadFailed,
			KeyLoaderID.Field(l.id),
			KeySource.Field(l.strategy.String()),
			KeyStage.Field(stage),
			KeyError.Field(err.Error()),
		)
		l.metrics.OnReloadFailure(stage, l.clock.Since(start))
		return next, err
	}

	l.current.Store(&next)
	l.lastError.Store(nil)
	l.history.reset()
	l.transitionState(ctx, StateHealthy)
	capitan.Emit(ctx, LoaderReloadSucceeded,
		KeyLoaderID.Field(l.id),
		KeySource.Field(l.strategy.String()),
	)
	l.metrics.OnReloadSuccess(l.clock.Since(start))

	return next, nil
}

// failureState keeps StateAbsent until a value has been loaded at least once.
func (l *Loader[T]) failureState() State {
	if l.current.Load() == nil {
		return StateAbsent
	}
	return StateDegraded
}

// transitionState updates the state and emits a state change event if changed.
// Each transition is reported once, from the state it actually replaced.
func (l *Loader[T]) transitionState(ctx context.Context, newState State) {
	oldState := State(l.state.Swap(int32(newState)))
	if oldState == newState {
		return
	}
	capitan.Emit(ctx, LoaderStateChanged,
		KeyLoaderID.Field(l.id),
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
	l.metrics.OnStateChange(oldState, newState)
}

// setError stores an error atomically and adds it to the error history.
func (l *Loader[T]) setError(err error) {
	e := err
	l.lastError.Store(&e)
	l.history.push(err)
}

func (l *Loader[T]) created(ctx context.Context) {
	capitan.Emit(ctx, LoaderCreated,
		KeyLoaderID.Field(l.id),
		KeySource.Field(l.strategy.String()),
		KeyState.Field(l.State().String()),
	)
}
