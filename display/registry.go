// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/kitdemo"
)

// Options configures a view created through the registry.
type Options struct {
	// Output is the destination file for file-backed views.
	Output string

	// Scale resizes images before they are shown. Zero means 1.
	Scale float64

	// Title is the window title for windowed views.
	Title string
}

// ViewFactory creates a new View with the given options.
type ViewFactory func(opts Options) (View, error)

// RegistryEntry represents a registered view backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates view instances.
	Factory ViewFactory

	// Available reports if the backend can be used on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered view backends.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewView.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory ViewFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// NewView creates a view using the best available backend.
func NewView(opts Options) (View, error) {
	return globalRegistry.NewView(opts)
}

// NewViewByName creates a view using a specific named backend.
func NewViewByName(name string, opts Options) (View, error) {
	return globalRegistry.NewViewByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory ViewFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of the entry registered under name.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// NewView creates a view using the best available backend, falling back
// to lower priorities when a factory fails.
func (r *Registry) NewView(opts Options) (View, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoViewAvailable
	}

	var lastErr error
	for _, name := range available {
		v, err := r.NewViewByName(name, opts)
		if err == nil {
			return v, nil
		}
		kitdemo.Logger().Debug("display: view backend failed", "name", name, "err", err)
		lastErr = err
	}
	return nil, lastErr
}

// NewViewByName creates a view using a specific backend. A non-zero,
// non-unit Scale wraps the result in a ScaledView.
func (r *Registry) NewViewByName(name string, opts Options) (View, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &ViewNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &ViewUnavailableError{Name: name}
	}

	v, err := entry.Factory(opts)
	if err != nil {
		return nil, err
	}
	if opts.Scale == 0 || opts.Scale == 1 {
		return v, nil
	}
	return NewScaledView(v, opts.Scale, nil)
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoViewAvailable is returned when no view backends are registered
	// or available on the current system.
	ErrNoViewAvailable = errors.New("display: no view available")
)

// ViewNotFoundError indicates a named backend is not registered.
type ViewNotFoundError struct {
	Name string
}

func (e *ViewNotFoundError) Error() string {
	return "display: view not found: " + e.Name
}

// ViewUnavailableError indicates a backend exists but is not available.
type ViewUnavailableError struct {
	Name string
}

func (e *ViewUnavailableError) Error() string {
	return "display: view unavailable: " + e.Name
}

// init registers the built-in views.
func init() {
	Register("file", 10, func(opts Options) (View, error) {
		out := opts.Output
		if out == "" {
			out = "kitdemo.png"
		}
		return NewFileView(out)
	}, nil)
	Register("memory", 0, func(Options) (View, error) {
		return NewMemoryView(), nil
	}, nil)
}
