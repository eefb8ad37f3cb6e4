package glyph

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = map[string]Set{}
	builtin  = map[string]bool{}
)

func init() {
	for _, p := range Presets() {
		s, _ := p.Resolve()
		registry[p.String()] = s
		builtin[p.String()] = true
	}
}

// Register adds a custom set under name. The name is matched
// case-insensitively and may not shadow a built-in preset. Registering the
// same custom name twice replaces the earlier set.
func Register(name string, s Set) error {
	key := glRegistryKey(name)
	if key == "" {
		return fmt.Errorf("glyph: register: empty style name")
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("glyph: register %q: %w", name, err)
	}
	mu.Lock()
	defer mu.Unlock()
	if builtin[key] {
		return fmt.Errorf("glyph: register %q: name is reserved for a built-in preset", name)
	}
	registry[key] = s
	return nil
}

// Lookup returns the set registered under name.
func Lookup(name string) (Set, bool) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[glRegistryKey(name)]
	return s, ok
}

// Names returns every registered style name sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unregister removes a custom style. Only tests need it.
func unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	key := glRegistryKey(name)
	if !builtin[key] {
		delete(registry, key)
	}
}

// glRegistryKey normalizes a style name so "Single-Double" and
// "single_double" address the same entry.
// CanonicalName returns the form under which name is registered: trimmed,
// lower case, with "-" folded to "_". Two names that canonicalize alike
// refer to the same style.
func CanonicalName(name string) string {
	return glRegistryKey(name)
}

func glRegistryKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}
