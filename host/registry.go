// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"sort"
	"sync"
)

// Options configures host creation.
type Options struct {
	// Width and Height are the requested client area in pixels. Hosts that
	// cannot choose their size (a terminal) ignore them.
	Width, Height int

	// FrameRate caps presents per second for hosts that pace themselves.
	// Zero selects the host's default.
	FrameRate int
}

// Factory creates a new Host with the given options.
type Factory func(opts Options) (Host, error)

// RegistryEntry represents a registered host backend.
type RegistryEntry struct {
	// Name is the unique identifier for this host.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates host instances.
	Factory Factory

	// Available reports if the host can run in the current environment.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry manages registered hosts.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a host to the global registry.
// If available is nil, the host is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a host from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered host names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available hosts sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// New creates a host using the best available backend.
func New(opts Options) (Host, error) {
	return globalRegistry.New(opts)
}

// NewByName creates a host using a specific named backend.
func NewByName(name string, opts Options) (Host, error) {
	return globalRegistry.NewByName(name, opts)
}

// Register adds a host to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

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

// Unregister removes a host from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered host names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available hosts sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// New creates a host using the best available backend, trying each in
// priority order until one succeeds.
func (r *Registry) New(opts Options) (Host, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoHostAvailable
	}

	var errs []error
	for _, name := range available {
		h, err := r.NewByName(name, opts)
		if err == nil {
			return h, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewByName creates a host using a specific backend.
func (r *Registry) NewByName(name string, opts Options) (Host, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &UnavailableError{Name: name}
	}
	return entry.Factory(opts)
}

// sortedNames returns host names sorted by priority (highest first), ties
// broken by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ErrNoHostAvailable is returned when no host is registered or available.
var ErrNoHostAvailable = errors.New("host: no host available")

// NotFoundError indicates a named host is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "host: not found: " + e.Name
}

// UnavailableError indicates a host exists but cannot run here.
type UnavailableError struct {
	Name string
}

func (e *UnavailableError) Error() string {
	return "host: unavailable: " + e.Name
}

// init registers the built-in headless image host.
func init() {
	Register("image", 10, func(opts Options) (Host, error) {
		return NewImageHost(opts.Width, opts.Height), nil
	}, nil)
}
