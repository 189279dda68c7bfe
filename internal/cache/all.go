package cache

import "fmt"

// registry maps policy names to their factory functions.
var registry = map[string]Factory{
	"lru":           NewLRU,
	"fifo":          NewFIFO,
	"lifo":          NewLIFO,
	"hashicorp-lru": NewHashicorpLRU,
	"2q":            NewTwoQueue,
	"sieve":         NewSieve,
	"s3-fifo":       NewS3FIFO,
	"clock":         NewClock,
	"lfu":           NewLFU,
	"otter":         NewOtter,
	"theine":        NewTheine,
	"ttlcache":      NewTTLCache,
	"ristretto":     NewRistretto,
	"tinylfu":       NewTinyLFU,
	"s4lru":         NewS4LRU,
	"freelru":       NewFreeLRU,
}

// defaultOrder defines the display order: the built-in policies first,
// then the wrapped third-party implementations.
var defaultOrder = []string{
	"lru", "fifo", "lifo",
	"hashicorp-lru", "2q", "sieve", "s3-fifo", "clock", "lfu",
	"otter", "theine", "ttlcache", "ristretto", "tinylfu", "s4lru", "freelru",
}

// Register adds an externally supplied implementation to the registry so it
// becomes runnable by name without evaluator changes. Registering an
// existing name replaces its factory. Not safe for concurrent use; call
// before trials start.
func Register(name string, f Factory) {
	if _, ok := registry[name]; !ok {
		defaultOrder = append(defaultOrder, name)
	}
	registry[name] = f
}

// New constructs the named policy at the given capacity.
func New(name string, capacity int) (Cache, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown policy %q", name)
	}
	return f(capacity)
}

// Known reports whether a policy name is registered.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns all registered policy names in display order.
func Names() []string {
	names := make([]string, len(defaultOrder))
	copy(names, defaultOrder)
	return names
}
