// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about graph operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for operation events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps pkg/graphop dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetOpHooks(&myOpHooks{})
//	    // ... run application
//	}
//
// Callers emit events around operations:
//
//	observability.Ops().OnOpStart(ctx, "union", inputs)
//	// ... run the operation ...
//	observability.Ops().OnOpComplete(ctx, "union", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// OpHooks receives events from graph operations.
type OpHooks interface {
	// OnOpStart records the start of an operation with its input count
	// (graphs for batching, partitions for splitting, queries for lookups).
	OnOpStart(ctx context.Context, op string, inputs int)

	// OnOpComplete records completion, successful or not.
	OnOpComplete(ctx context.Context, op string, duration time.Duration, err error)
}

// NoopOpHooks is a no-op implementation of OpHooks.
type NoopOpHooks struct{}

func (NoopOpHooks) OnOpStart(context.Context, string, int)                      {}
func (NoopOpHooks) OnOpComplete(context.Context, string, time.Duration, error) {}

var (
	opHooks OpHooks = NoopOpHooks{}
	hooksMu sync.RWMutex
)

// SetOpHooks registers custom operation hooks.
// This should be called once at application startup before any operations.
func SetOpHooks(h OpHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		opHooks = h
	}
}

// Ops returns the registered operation hooks.
func Ops() OpHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return opHooks
}

// Reset restores the no-op default. Intended for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	opHooks = NoopOpHooks{}
}
