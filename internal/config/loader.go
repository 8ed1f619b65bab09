package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// watchDebounce coalesces the burst of events a single save produces
// (truncate, write, rename) into one reload.
const watchDebounce = 100 * time.Millisecond

// Loader reads a YAML run config and watches it for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *RunConfig
	onChange []func(*RunConfig)
	onError  func(error)
}

// NewLoader creates a Loader and performs the initial load.
// The initial config is validated; an invalid file is an error.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path, onError: func(error) {}}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg
	return l, nil
}

// Path returns the file the loader reads.
func (l *Loader) Path() string { return l.path }

// Config returns the current (latest) configuration.
func (l *Loader) Config() *RunConfig {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the config reloads.
func (l *Loader) OnChange(fn func(*RunConfig)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// OnError registers a callback for reloads that fail while watching.
// The previous config stays current after such a failure.
func (l *Loader) OnError(fn func(error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onError = fn
}

// Watch starts a background goroutine that hot-reloads the config on file changes.
// It watches the parent directory and filters on the file name, so saves that
// replace the file by rename keep being observed. Events are debounced by
// watchDebounce. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	target := filepath.Clean(l.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", filepath.Dir(target), err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
				} else {
					timer.Reset(watchDebounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				if _, err := l.Reload(); err != nil {
					l.reportError(err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.reportError(fmt.Errorf("config watcher: %w", err))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}

func (l *Loader) reportError(err error) {
	l.mu.RLock()
	report := l.onError
	l.mu.RUnlock()
	report(err)
}

// Reload forces an immediate re-read of the config file.
// On failure the current config is left untouched.
func (l *Loader) Reload() (*RunConfig, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*RunConfig), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}
	return cfg, nil
}

func (l *Loader) load() (*RunConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", l.path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into a RunConfig, applies defaults, and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*RunConfig, error) {
	var cfg RunConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to the zero config; Validate rejects it.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills zero-valued fields with their defaults.
func ApplyDefaults(cfg *RunConfig) {
	if cfg.Topology == "" {
		cfg.Topology = DefaultTopology
	}
	if cfg.Topology == TopologyRandomSparse && cfg.Probability == 0 {
		cfg.Probability = DefaultProbability
	}
	if cfg.Method == "" {
		cfg.Method = DefaultMethod
	}
	if cfg.Weights.Min == 0 && cfg.Weights.Max == 0 {
		cfg.Weights.Max = DefaultWeightMax
	}
}
