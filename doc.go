/*
Package tether provides typed, hot-reloadable values backed by pluggable sources.

A Loader owns one value of type T. It obtains the value through a Strategy,
which decides whether the source exists, whether it must be read on every
access, and how to read it. Bytes are turned into T by a Codec.

# Strategies

	tether.Resource(embedded, "defaults.yaml")     // fs.FS, e.g. embed.FS
	tether.File("/etc/myapp/config.json")          // read once
	tether.File("/etc/myapp/config.json").Reload() // read on every Get
	tether.WatchFile[Config]("/etc/myapp", "config.yaml", listeners...)

URL validates its argument, so it also returns an error:

	remote, err := tether.URL("https://config.internal/app.json") // http, https or file URLs
	if err != nil {
	    return err
	}
	loader, err := tether.New[Config](ctx, remote.Reload())

A missing source is not an error. The Loader starts in StateAbsent and Get
returns the zero value and false. An empty source is a parse failure, so a
file caught mid-write never replaces the value.

# Watching

A Loader built on WatchFile subscribes to the file's directory, not the file
itself, so replacements done by renaming a new file over the old one are seen.
Every create or write event for the file triggers a reload. A successful
reload swaps the value and calls the listeners, in registration order, on the
Loader's own goroutine. A failed reload keeps the previous value, moves the
Loader to StateDegraded and is reported through signals; Get never returns it.

Listeners are called once with the initial value before New returns.

# Lifetime

There is nothing to stop. The watch goroutine only holds a weak pointer to its
Loader; once the application drops the Loader the watch releases its
subscription, at the latest one liveness interval after the garbage collector
reclaimed it (see WithLivenessInterval). Close is available for callers that
want the release to happen at a known point.

# Observability

Loaders emit capitan signals (LoaderReloadFailed, WatchStopped, ...) and
accept a MetricsProvider. Hook a signal to log it:

	capitan.Hook(tether.LoaderReloadFailed, func(_ context.Context, e *capitan.Event) {
	    msg, _ := tether.KeyError.From(e)
	    log.Printf("reload failed: %s", msg)
	})

# Example

	type Config struct {
	    Port int    `yaml:"port"`
	    Host string `yaml:"host"`
	}

	loader, err := tether.New[Config](ctx,
	    tether.WatchFile[Config]("/etc/myapp", "config.yaml",
	        tether.ListenerFunc[Config](func(cfg Config) {
	            server.Reconfigure(cfg)
	        }),
	    ),
	)
	if err != nil {
	    log.Fatalf("initial config failed: %v", err)
	}

	cfg, ok := loader.Get()
*/
package tether
