// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about definitions requests and response decoding.
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
//	    observability.SetRequestHooks(&myRequestHooks{})
//	    observability.SetDecodeHooks(&myDecodeHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Request().OnRequestStart(ctx, id, len(chunk))
//	// ... round trip ...
//	observability.Request().OnRequestComplete(ctx, id, status, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Request Hooks
// =============================================================================

// RequestHooks receives events from definitions request dispatch.
type RequestHooks interface {
	// OnRequestStart records an outgoing definitions request.
	// id is the correlation ID of the request; coordinates is the chunk size.
	OnRequestStart(ctx context.Context, id string, coordinates int)

	// OnRequestComplete records the outcome of a definitions request.
	// statusCode is zero when the request never reached the service.
	OnRequestComplete(ctx context.Context, id string, statusCode int, duration time.Duration, err error)
}

// =============================================================================
// Decode Hooks
// =============================================================================

// DecodeHooks receives events from response decoding.
type DecodeHooks interface {
	// OnFieldTolerated records an optional sub-object (described, licensed)
	// whose value failed structural decode and was downgraded to absent.
	OnFieldTolerated(field string)

	// OnBatchDecoded records a successfully decoded batch response.
	OnBatchDecoded(definitions int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRequestHooks is a no-op implementation of RequestHooks.
type NoopRequestHooks struct{}

func (NoopRequestHooks) OnRequestStart(context.Context, string, int) {}
func (NoopRequestHooks) OnRequestComplete(context.Context, string, int, time.Duration, error) {
}

// NoopDecodeHooks is a no-op implementation of DecodeHooks.
type NoopDecodeHooks struct{}

func (NoopDecodeHooks) OnFieldTolerated(string) {}
func (NoopDecodeHooks) OnBatchDecoded(int)      {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	requestHooks RequestHooks = NoopRequestHooks{}
	decodeHooks  DecodeHooks  = NoopDecodeHooks{}
	hooksMu      sync.RWMutex
)

// SetRequestHooks registers custom request hooks.
// This should be called once at application startup before any requests.
func SetRequestHooks(h RequestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		requestHooks = h
	}
}

// SetDecodeHooks registers custom decode hooks.
// This should be called once at application startup before any decoding.
func SetDecodeHooks(h DecodeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		decodeHooks = h
	}
}

// Request returns the registered request hooks.
func Request() RequestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return requestHooks
}

// Decode returns the registered decode hooks.
func Decode() DecodeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return decodeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	requestHooks = NoopRequestHooks{}
	decodeHooks = NoopDecodeHooks{}
}
