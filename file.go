package tether

import (
	"context"
	"os"
)

// FileStrategy loads a file from the local filesystem.
type FileStrategy struct {
	path   string
	reload bool
}

// File creates a strategy for the file at path.
func File(path string) *FileStrategy {
	return &FileStrategy{path: path}
}

// Reload makes every Loader.Get read the file again.
func (s *FileStrategy) Reload() *FileStrategy {
	s.reload = true
	return s
}

// Path returns the file path.
func (s *FileStrategy) Path() string {
	return s.path
}

// Exists reports whether path names an existing file that is not a directory.
func (s *FileStrategy) Exists(_ context.Context) bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// ReloadsEveryTime reports whether Reload was requested.
func (s *FileStrategy) ReloadsEveryTime() bool {
	return s.reload
}

// Load reads the file and deserializes it into v.
func (s *FileStrategy) Load(_ context.Context, codec Codec, v any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return unavailable(s.String(), err)
	}
	return decode(codec, s.String(), data, v)
}

// String describes the file.
func (s *FileStrategy) String() string {
	return "file " + s.path
}

var _ Strategy = (*FileStrategy)(nil)
