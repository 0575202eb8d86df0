package provider

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Provider)
	current    Provider
)

// Register adds p to the process-wide registry. Registering a second
// provider under the same name is rejected so a test run cannot silently
// swap implementations.
func Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("register: provider is nil")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("register: provider has empty name")
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if existing, ok := registry[name]; ok && existing != p {
		return fmt.Errorf("register: provider %q already registered", name)
	}
	registry[name] = p
	return nil
}

// Get returns the registered provider with the given name.
func Get(name string) (Provider, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("provider %q is not registered", name)
	}
	return p, nil
}

// Names returns the names of all registered providers in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Install makes the named registered provider current. The current
// provider is the default implementation conformance runs exercise; it is
// meant to be set once before a run, not mutated while suites execute.
func Install(name string) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	p, ok := registry[name]
	if !ok {
		return fmt.Errorf("install: provider %q is not registered", name)
	}
	current = p
	return nil
}

// Current returns the current provider, or nil if none has been installed.
func Current() Provider {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return current
}

// Swap makes p current and returns a function restoring the previous
// selection. It is the scoped form of Install for test groups that need a
// different provider for their duration:
//
//	restore := provider.Swap(p)
//	defer restore()
//
// Swaps must not overlap; the harness runs test groups sequentially.
func Swap(p Provider) (restore func()) {
	registryMu.Lock()
	previous := current
	current = p
	registryMu.Unlock()

	return func() {
		registryMu.Lock()
		current = previous
		registryMu.Unlock()
	}
}
