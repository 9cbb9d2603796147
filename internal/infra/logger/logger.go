package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DirName is the per-project state directory holding logs.
const DirName = ".unitconv"

const fileName = "unitconv.log"

// Config controls where the log file lives and how verbose it is.
type Config struct {
	Root  string
	Debug bool
}

// Status describes the active sink. Path is empty while output is discarded.
type Status struct {
	Path     string
	Debug    bool
	OpenedAt time.Time
}

type sink struct {
	log    *slog.Logger
	file   *os.File
	status Status
}

var (
	mu      sync.RWMutex
	current = discardSink()
)

func discardSink() sink {
	return sink{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// FilePath is the log file Setup opens for root.
func FilePath(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(filepath.Clean(root), DirName, "logs", fileName)
}

// Setup opens the log file under cfg.Root and installs a JSON slog logger.
// A previous sink is closed. The returned cleanup restores the discard logger;
// it is a no-op once another Setup has replaced this sink.
func Setup(cfg Config) (func() error, error) {
	path := FilePath(cfg.Root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	next := sink{
		log:  slog.New(newHandler(f, cfg.Debug)),
		file: f,
		status: Status{
			Path:     path,
			Debug:    cfg.Debug,
			OpenedAt: time.Now().UTC(),
		},
	}

	mu.Lock()
	prev := current
	current = next
	mu.Unlock()

	if prev.file != nil {
		_ = prev.file.Close()
	}

	next.log.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		if current.file != f {
			return nil
		}
		current = discardSink()
		return f.Close()
	}
	return cleanup, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.NewJSONHandler(w, opts)
}

// L returns the process logger. It discards output until Setup succeeds.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current.log
}

// Current reports the active sink.
func Current() Status {
	mu.RLock()
	defer mu.RUnlock()
	return current.status
}
