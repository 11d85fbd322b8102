package registry

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/gridgarden/landing/internal/config"
)

// Key names a shared service and carries its type, so lookups need no
// assertions at the call site. Use "module.service" style names.
type Key[T any] string

// Registry lets modules publish services during Register and look them up
// during Boot. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	services map[string]any
	cfg      config.Provider
}

// New creates an empty registry carrying the application configuration.
func New(cfg config.Provider) *Registry {
	return &Registry{
		services: make(map[string]any),
		cfg:      cfg,
	}
}

// Config returns the configuration provider the registry was created with.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Names lists the registered keys, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Set stores value under key, replacing any previous value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.services[string(key)]; exists {
		slog.Debug("Replacing registered service", "key", string(key))
	}
	r.services[string(key)] = value
}

// Get returns the value stored under key. A missing key or a value of the
// wrong type reports false.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	r.mu.RLock()
	val, ok := r.services[string(key)]
	r.mu.RUnlock()

	result, ok := val.(T)
	return result, ok
}

// MustGet is Get for services the caller cannot run without. It panics when
// the key is missing, which surfaces wiring mistakes at startup.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("registry: no %s registered under %q", reflect.TypeFor[T](), string(key)))
	}
	return val
}
