package tether

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Op is the kind of change a filesystem event reports.
type Op uint8

const (
	// OpCreate reports a new file, including one renamed into the directory.
	OpCreate Op = iota + 1
	// OpWrite reports modified content.
	OpWrite
	// OpRemove reports a deleted file.
	OpRemove
	// OpRename reports a file renamed away from its path.
	OpRename
)

// String returns the string representation of the operation.
func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event is a single change inside a watched directory.
type Event struct {
	// Path is the full path of the changed entry.
	Path string
	Op   Op
}

// Notifier subscribes to change events of a directory.
//
// Directories are watched rather than files because editors and deployment
// tools often replace a file by renaming a new one over it; a watch on the
// old file would never see the replacement.
type Notifier interface {
	Subscribe(dir string) (Subscription, error)
}

// Subscription is a live directory watch. Close releases the underlying
// resources and may be called more than once.
type Subscription interface {
	// Events emits changes until the subscription is closed. The channel is
	// closed when the underlying facility stops.
	Events() <-chan Event

	// Errors emits non-fatal errors reported by the underlying facility.
	Errors() <-chan error

	Close() error
}

// FSNotifier watches directories with fsnotify. It is the default Notifier
// of WatchFile.
type FSNotifier struct{}

// Subscribe creates an fsnotify watcher for dir.
func (FSNotifier) Subscribe(dir string) (Subscription, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	s := &fsSubscription{
		watcher: watcher,
		events:  make(chan Event),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go s.forward()
	return s, nil
}

type fsSubscription struct {
	watcher *fsnotify.Watcher
	events  chan Event
	errors  chan error
	done    chan struct{}

	once     sync.Once
	closeErr error
}

func (s *fsSubscription) Events() <-chan Event { return s.events }
func (s *fsSubscription) Errors() <-chan error { return s.errors }

func (s *fsSubscription) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.closeErr = s.watcher.Close()
	})
	return s.closeErr
}

// forward translates fsnotify events until the watcher or the subscription closes.
func (s *fsSubscription) forward() {
	defer close(s.events)

	for {
		select {
		case <-s.done:
			return

		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			op, ok := translate(ev.Op)
			if !ok {
				continue
			}
			select {
			case s.events <- Event{Path: ev.Name, Op: op}:
			case <-s.done:
				return
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			// Drop errors nobody is reading; the watch keeps going.
			select {
			case s.errors <- err:
			default:
			}
		}
	}
}

// translate maps an fsnotify operation onto Op. Chmod-only events are dropped.
func translate(op fsnotify.Op) (Op, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpWrite, true
	case op.Has(fsnotify.Remove):
		return OpRemove, true
	case op.Has(fsnotify.Rename):
		return OpRename, true
	default:
		return 0, false
	}
}

var _ Notifier = FSNotifier{}
