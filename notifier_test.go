package tether

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tethertest "github.com/zoobzio/tether/testing"
)

func TestOp_String(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpCreate, "create"},
		{OpWrite, "write"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Op(0), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   fsnotify.Op
		want Op
		ok   bool
	}{
		{"create", fsnotify.Create, OpCreate, true},
		{"write", fsnotify.Write, OpWrite, true},
		{"remove", fsnotify.Remove, OpRemove, true},
		{"rename", fsnotify.Rename, OpRename, true},
		{"chmod is dropped", fsnotify.Chmod, 0, false},
		{"create wins over write", fsnotify.Create | fsnotify.Write, OpCreate, true},
		{"write wins over chmod", fsnotify.Write | fsnotify.Chmod, OpWrite, true},
		{"remove wins over rename", fsnotify.Remove | fsnotify.Rename, OpRemove, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFSNotifier_MissingDirectory(t *testing.T) {
	_, err := FSNotifier{}.Subscribe(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestFSNotifier_DeliversEvents(t *testing.T) {
	dir := t.TempDir()
	sub, err := FSNotifier{}.Subscribe(dir)
	require.NoError(t, err)
	defer sub.Close()

	path := filepath.Join(dir, beanName)
	tethertest.WriteFile(t, path, beanJSON("v1"))

	deadline := time.After(waitTimeout)
	for {
		select {
		case ev := <-sub.Events():
			if filepath.Clean(ev.Path) == path {
				assert.Contains(t, []Op{OpCreate, OpWrite}, ev.Op)
				return
			}
		case <-deadline:
			t.Fatal("timeout waiting for create event")
		}
	}
}

func TestFSNotifier_CloseEndsEvents(t *testing.T) {
	sub, err := FSNotifier{}.Subscribe(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	assert.NoError(t, sub.Close(), "close must be idempotent")

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok)
	case <-time.After(waitTimeout):
		t.Fatal("events channel was not closed")
	}
}

func TestChannelNotifier(t *testing.T) {
	events := make(chan Event, 1)
	errs := make(chan error, 1)
	n := NewChannelNotifier(events).WithErrors(errs)

	a, err := n.Subscribe("/a")
	require.NoError(t, err)
	b, err := n.Subscribe("/b")
	require.NoError(t, err)
	assert.Equal(t, 2, n.Active())

	events <- Event{Path: "/a/x", Op: OpWrite}
	assert.Equal(t, Event{Path: "/a/x", Op: OpWrite}, <-b.Events())

	errs <- errors.New("overflow")
	assert.EqualError(t, <-a.Errors(), "overflow")

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	assert.Equal(t, 1, n.Active())
	require.NoError(t, b.Close())
	assert.Zero(t, n.Active())
}

func TestChannelNotifier_Failures(t *testing.T) {
	_, err := NewChannelNotifier(nil).Subscribe("/a")
	assert.Error(t, err)

	cause := errors.New("no watches left")
	n := NewChannelNotifier(make(chan Event)).FailWith(cause)
	_, err = n.Subscribe("/a")
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, n.Active())
}
