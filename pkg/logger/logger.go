// Package logger holds the process-wide zerolog instance. Call Init once
// from main, then Get (or With for a component-tagged child) everywhere else.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu    sync.Mutex
	root  zerolog.Logger
	ready bool
)

// Init builds the root logger. level is one of trace, debug, info, warn or
// error (anything else falls back to info). When pretty is true output is
// rendered for a terminal instead of JSON. Calling Init again replaces the
// root logger, which tests rely on.
func Init(level string, pretty bool, out io.Writer) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	zerolog.TimeFieldFormat = time.RFC3339Nano

	if out == nil {
		out = os.Stdout
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	root = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	ready = true
	return root
}

// Get returns the root logger. Panics when Init has not run yet so that a
// missing call fails loudly at startup rather than logging into the void.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		panic("logger: Get called before Init")
	}
	return root
}

// With returns a child of the root logger tagged with a component name,
// e.g. logger.With("button_service").
func With(component string) zerolog.Logger {
	return Get().With().Str("component", component).Logger()
}

// Reset clears the root logger. Test helper.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	root = zerolog.Logger{}
	ready = false
}
