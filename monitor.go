package tether

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"
	"weak"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// monitor couples directory events to reloads of one Loader.
//
// It only holds a weak pointer to the Loader. Nothing reachable from a
// monitor may point back at its Loader, otherwise the Loader would never be
// reclaimed and the watch would run forever.
type monitor[T any] struct {
	ref       weak.Pointer[Loader[T]]
	id        string
	dir       string
	path      string
	sub       Subscription
	listeners []Listener[T]
	clock     clockz.Clock
	interval  time.Duration
	metrics   MetricsProvider
	onStop    func(StopReason)

	done    chan struct{}
	once    sync.Once
	reason  atomic.Int32
	stopped atomic.Bool
}

func newMonitor[T any](l *Loader[T], watch WatchStrategy[T], sub Subscription, cfg *config) *monitor[T] {
	dir, name := watch.Target()
	dir = filepath.Clean(dir)
	return &monitor[T]{
		ref:       weak.Make(l),
		id:        l.id,
		dir:       dir,
		path:      filepath.Join(dir, name),
		sub:       sub,
		listeners: slices.Clone(watch.Listeners()),
		clock:     cfg.clock,
		interval:  cfg.interval,
		metrics:   cfg.metrics,
		onStop:    cfg.onStop,
		done:      make(chan struct{}),
	}
}

// halt asks the watch loop to stop. Only the first reason is kept.
func (m *monitor[T]) halt(reason StopReason) {
	m.once.Do(func() {
		m.reason.Store(int32(reason))
		close(m.done)
	})
}

// run is the watch goroutine.
func (m *monitor[T]) run(ctx context.Context) {
	capitan.Emit(ctx, WatchStarted,
		KeyLoaderID.Field(m.id),
		KeyPath.Field(m.path),
		KeyInterval.Field(m.interval),
		KeyListeners.Field(len(m.listeners)),
	)

	reason := m.loop(ctx)
	m.release(ctx, reason)
}

func (m *monitor[T]) loop(ctx context.Context) StopReason {
	tick := m.clock.NewTimer(m.interval)
	defer tick.Stop()

	events := m.sub.Events()
	errs := m.sub.Errors()

	for {
		select {
		case <-m.done:
			return StopReason(m.reason.Load())

		case ev, ok := <-events:
			if !ok {
				return ReasonNotifierClosed
			}
			if reason, stop := m.handle(ctx, ev); stop {
				return reason
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			capitan.Emit(ctx, WatchError,
				KeyLoaderID.Field(m.id),
				KeyError.Field(err.Error()),
			)

		case <-tick.C():
			if m.ref.Value() == nil {
				return ReasonUnreachable
			}
			tick.Reset(m.interval)
		}
	}
}

// handle processes one directory event and reports whether the watch must stop.
// The strong reference to the Loader lives only in this frame.
func (m *monitor[T]) handle(ctx context.Context, ev Event) (StopReason, bool) {
	path := filepath.Clean(ev.Path)
	if path == m.dir && (ev.Op == OpRemove || ev.Op == OpRename) {
		return ReasonDirectoryRemoved, true
	}
	if path != m.path {
		return 0, false
	}

	capitan.Emit(ctx, WatchEventReceived,
		KeyLoaderID.Field(m.id),
		KeyPath.Field(path),
		KeyOp.Field(ev.Op.String()),
	)
	m.metrics.OnEventReceived()

	l := m.ref.Value()
	if l == nil {
		return ReasonUnreachable, true
	}

	switch ev.Op {
	case OpRemove:
		m.removed(ctx)
		return 0, false
	case OpRename:
		// Renamed away unless something already took its place.
		if !l.strategy.Exists(ctx) {
			m.removed(ctx)
			return 0, false
		}
	}

	value, err := l.reload(ctx)
	if err != nil {
		return 0, false
	}
	m.notify(ctx, value)
	return 0, false
}

func (m *monitor[T]) removed(ctx context.Context) {
	capitan.Emit(ctx, WatchSourceRemoved,
		KeyLoaderID.Field(m.id),
		KeyPath.Field(m.path),
	)
}

// notify calls every listener in registration order.
func (m *monitor[T]) notify(ctx context.Context, value T) {
	for _, listener := range m.listeners {
		m.deliver(ctx, listener, value)
	}
}

func (m *monitor[T]) deliver(ctx context.Context, listener Listener[T], value T) {
	defer func() {
		if r := recover(); r != nil {
			capitan.Emit(ctx, ListenerPanicked,
				KeyLoaderID.Field(m.id),
				KeyError.Field(fmt.Sprint(r)),
			)
		}
	}()
	listener.OnChanged(value)
}

// release closes the subscription and reports the stop.
func (m *monitor[T]) release(ctx context.Context, reason StopReason) {
	m.halt(reason)
	if err := m.sub.Close(); err != nil {
		capitan.Emit(ctx, WatchError,
			KeyLoaderID.Field(m.id),
			KeyError.Field(err.Error()),
		)
	}
	m.stopped.Store(true)

	capitan.Emit(ctx, WatchStopped,
		KeyLoaderID.Field(m.id),
		KeyPath.Field(m.path),
		KeyReason.Field(reason.String()),
	)
	m.metrics.OnWatchStopped(reason)
	if m.onStop != nil {
		m.onStop(reason)
	}
}
