package tether

import (
	"context"
	"fmt"
	"path/filepath"
)

// FileWatchStrategy loads a file and watches its directory for changes.
// Listeners receive the initial value and every successfully reloaded one.
type FileWatchStrategy[T any] struct {
	file      *FileStrategy
	dir       string
	name      string
	listeners []Listener[T]
	notifier  Notifier
}

// WatchFile creates a watching strategy for the file name inside dir.
//
// Listeners are called once with the initial value while the Loader is being
// created and then after every successful reload, on the Loader's own
// goroutine. A listener that captures the Loader keeps it alive, which also
// keeps the watch alive.
func WatchFile[T any](dir, name string, listeners ...Listener[T]) *FileWatchStrategy[T] {
	dir = filepath.Clean(dir)
	return &FileWatchStrategy[T]{
		file:      File(filepath.Join(dir, name)),
		dir:       dir,
		name:      name,
		listeners: listeners,
		notifier:  FSNotifier{},
	}
}

// Notifier replaces the notification facility. Default: FSNotifier.
func (s *FileWatchStrategy[T]) Notifier(n Notifier) *FileWatchStrategy[T] {
	if n != nil {
		s.notifier = n
	}
	return s
}

// Exists reports whether the watched file exists.
func (s *FileWatchStrategy[T]) Exists(ctx context.Context) bool {
	return s.file.Exists(ctx)
}

// ReloadsEveryTime is always false: changes arrive through the watch.
func (s *FileWatchStrategy[T]) ReloadsEveryTime() bool {
	return false
}

// Load reads the watched file and deserializes it into v.
func (s *FileWatchStrategy[T]) Load(ctx context.Context, codec Codec, v any) error {
	return s.file.Load(ctx, codec, v)
}

// String describes the watched file.
func (s *FileWatchStrategy[T]) String() string {
	return "watched " + s.file.String()
}

// Target returns the watched directory and file name.
func (s *FileWatchStrategy[T]) Target() (dir, name string) {
	return s.dir, s.name
}

// Subscribe starts watching the directory.
func (s *FileWatchStrategy[T]) Subscribe() (Subscription, error) {
	sub, err := s.notifier.Subscribe(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSubscribe, s.dir, err)
	}
	return sub, nil
}

// Listeners returns the registered listeners.
func (s *FileWatchStrategy[T]) Listeners() []Listener[T] {
	return s.listeners
}

var _ WatchStrategy[struct{}] = (*FileWatchStrategy[struct{}])(nil)
