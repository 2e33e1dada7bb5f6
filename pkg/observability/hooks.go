// Package observability provides hooks for metrics and logging around the
// snapshot store and the codec surfaces.
//
// The package keeps the libraries free of hard dependencies on any metrics
// backend: hook interfaces have no-op defaults, and an application registers
// concrete implementations once at startup. Libraries emit events through the
// registry without knowing who listens.
//
//	func main() {
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// StoreHooks receives events from snapshot store operations.
type StoreHooks interface {
	// OnSave records a completed save, with the encoded size in bytes.
	OnSave(ctx context.Context, backend, name string, size int, duration time.Duration, err error)

	// OnLoad records a completed load. A not-found lookup reports its
	// sentinel error here like any other failure.
	OnLoad(ctx context.Context, backend, name string, duration time.Duration, err error)

	// OnDelete records a completed delete.
	OnDelete(ctx context.Context, backend, name string, err error)
}

// CodecHooks receives events from graph encode/decode operations.
type CodecHooks interface {
	// OnEncode records a completed encode with entity counts.
	OnEncode(ctx context.Context, vertices, edges int, duration time.Duration, err error)

	// OnDecode records a completed decode.
	OnDecode(ctx context.Context, vertices, edges int, duration time.Duration, err error)
}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnSave(context.Context, string, string, int, time.Duration, error) {}
func (NoopStoreHooks) OnLoad(context.Context, string, string, time.Duration, error)      {}
func (NoopStoreHooks) OnDelete(context.Context, string, string, error)                   {}

// NoopCodecHooks is a no-op implementation of CodecHooks.
type NoopCodecHooks struct{}

func (NoopCodecHooks) OnEncode(context.Context, int, int, time.Duration, error) {}
func (NoopCodecHooks) OnDecode(context.Context, int, int, time.Duration, error) {}

var (
	storeHooks StoreHooks = NoopStoreHooks{}
	codecHooks CodecHooks = NoopCodecHooks{}
	hooksMu    sync.RWMutex
)

// SetStoreHooks registers custom store hooks. Call once at application
// startup before any store operations; a nil argument is ignored.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetCodecHooks registers custom codec hooks.
func SetCodecHooks(h CodecHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		codecHooks = h
	}
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Codec returns the registered codec hooks.
func Codec() CodecHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return codecHooks
}

// Reset restores all hooks to their no-op defaults. Primarily for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	storeHooks = NoopStoreHooks{}
	codecHooks = NoopCodecHooks{}
}
