package benchmarks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/zoobzio/tether"
)

type benchConfig struct {
	Value int    `yaml:"value" json:"value"`
	Name  string `yaml:"name" json:"name"`
}

func writeConfig(b *testing.B) (dir, name string) {
	b.Helper()
	dir = b.TempDir()
	name = "config.json"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(`{"value": 1, "name": "bench"}`), 0o600); err != nil {
		b.Fatalf("failed to write config: %v", err)
	}
	return dir, name
}

func BenchmarkLoader_GetCached(b *testing.B) {
	dir, name := writeConfig(b)
	loader, err := tether.New[benchConfig](context.Background(), tether.File(filepath.Join(dir, name)))
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		loader.Get()
	}
}

func BenchmarkLoader_GetCachedParallel(b *testing.B) {
	dir, name := writeConfig(b)
	loader, err := tether.New[benchConfig](context.Background(), tether.File(filepath.Join(dir, name)))
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			loader.Get()
		}
	})
}

func BenchmarkLoader_GetWatched(b *testing.B) {
	dir, name := writeConfig(b)
	loader, err := tether.New[benchConfig](context.Background(), tether.WatchFile[benchConfig](dir, name))
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	defer loader.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		loader.Get()
	}
}

func BenchmarkLoader_GetReloadEveryTime(b *testing.B) {
	dir, name := writeConfig(b)
	loader, err := tether.New[benchConfig](context.Background(), tether.File(filepath.Join(dir, name)).Reload())
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		loader.Get()
	}
}

func BenchmarkCodecs(b *testing.B) {
	inputs := map[string][]byte{
		"json": []byte(`{"value": 1, "name": "bench"}`),
		"yaml": []byte("value: 1\nname: bench\n"),
	}
	codecs := map[string]tether.Codec{
		"json": tether.JSONCodec{},
		"yaml": tether.YAMLCodec{},
		"auto": tether.AutoCodec{},
	}

	for codecName, codec := range codecs {
		for inputName, data := range inputs {
			if codecName == "json" && inputName == "yaml" {
				continue
			}
			b.Run(fmt.Sprintf("%s/%s", codecName, inputName), func(b *testing.B) {
				var cfg benchConfig
				for i := 0; i < b.N; i++ {
					if err := codec.Unmarshal(data, &cfg); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkNew_Resource(b *testing.B) {
	fsys := fstest.MapFS{"config.yaml": {Data: []byte("value: 1\nname: bench\n")}}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tether.New[benchConfig](ctx, tether.Resource(fsys, "config.yaml")); err != nil {
			b.Fatal(err)
		}
	}
}
