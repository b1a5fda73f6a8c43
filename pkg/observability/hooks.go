// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about embedding runs, validation, and
// rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEmbedHooks(&myEmbedHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Embed().OnEmbedStart(ctx, n, m)
//	// ... embed ...
//	observability.Embed().OnEmbedComplete(ctx, n, m, kase, k, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Embed Hooks
// =============================================================================

// EmbedHooks receives events from embedding and validation runs.
type EmbedHooks interface {
	// OnEmbedStart records the start of an embedding run for a graph with
	// n countries and m required borders.
	OnEmbedStart(ctx context.Context, n, m int)

	// OnEmbedComplete records a finished embedding run. kase is the
	// classified construction family and k the larger grid dimension.
	OnEmbedComplete(ctx context.Context, n, m int, kase string, k int, duration time.Duration)

	// OnValidateComplete records a validation verdict along with the
	// number of diagnostics produced.
	OnValidateComplete(ctx context.Context, pass bool, diagnostics int, duration time.Duration)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from artifact rendering.
type RenderHooks interface {
	// OnRenderStart records the start of a render for the given formats.
	OnRenderStart(ctx context.Context, formats []string)

	// OnRenderComplete records a finished render.
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEmbedHooks is a no-op implementation of EmbedHooks.
type NoopEmbedHooks struct{}

func (NoopEmbedHooks) OnEmbedStart(context.Context, int, int)                                  {}
func (NoopEmbedHooks) OnEmbedComplete(context.Context, int, int, string, int, time.Duration)   {}
func (NoopEmbedHooks) OnValidateComplete(context.Context, bool, int, time.Duration)            {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	embedHooks  EmbedHooks  = NoopEmbedHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetEmbedHooks registers custom embed hooks.
// This should be called once at application startup before any embedding runs.
func SetEmbedHooks(h EmbedHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		embedHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Embed returns the registered embed hooks.
func Embed() EmbedHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return embedHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	embedHooks = NoopEmbedHooks{}
	renderHooks = NoopRenderHooks{}
}
