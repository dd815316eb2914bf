package integration

import (
	"os"
	"path/filepath"
	"testing"

	tethertest "github.com/zoobzio/tether/testing"
)

type bean = tethertest.Bean

const beanName = "bean.json"

func beanJSON(value string) []byte {
	return []byte(`{"value": "` + value + `"}`)
}

// writeBean writes an initial bean file into a fresh directory.
func writeBean(t *testing.T, value string) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, beanName)
	if err := os.WriteFile(path, beanJSON(value), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return dir, path
}

// lastIs reports whether the most recent notification carried value.
func lastIs(rec *tethertest.Recorder[bean], value string) func() bool {
	return func() bool {
		v, ok := rec.Last()
		return ok && v.Value == value
	}
}
