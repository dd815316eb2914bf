package tether

import (
	"context"
	"io/fs"
)

// ResourceStrategy loads a named resource from an fs.FS, typically an
// embed.FS compiled into the binary.
type ResourceStrategy struct {
	fsys   fs.FS
	name   string
	reload bool
}

// Resource creates a strategy for the resource name inside fsys.
func Resource(fsys fs.FS, name string) *ResourceStrategy {
	return &ResourceStrategy{fsys: fsys, name: name}
}

// Reload makes every Loader.Get read the resource again.
func (s *ResourceStrategy) Reload() *ResourceStrategy {
	s.reload = true
	return s
}

// Exists reports whether the resource is present and not a directory.
func (s *ResourceStrategy) Exists(_ context.Context) bool {
	if s.fsys == nil || !fs.ValidPath(s.name) {
		return false
	}
	info, err := fs.Stat(s.fsys, s.name)
	return err == nil && !info.IsDir()
}

// ReloadsEveryTime reports whether Reload was requested.
func (s *ResourceStrategy) ReloadsEveryTime() bool {
	return s.reload
}

// Load reads the resource and deserializes it into v.
func (s *ResourceStrategy) Load(_ context.Context, codec Codec, v any) error {
	if s.fsys == nil {
		return unavailable(s.String(), fs.ErrNotExist)
	}
	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return unavailable(s.String(), err)
	}
	return decode(codec, s.String(), data, v)
}

// String describes the resource.
func (s *ResourceStrategy) String() string {
	return "resource " + s.name
}

var _ Strategy = (*ResourceStrategy)(nil)
