// Package observability provides hooks for instrumenting the search.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific frontends. Consumers register hooks at startup to
// receive events about search progress and catalog operations; the search
// core calls the hooks and stays free of UI and storage imports.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This avoids import cycles (hooks are registered by main, not by
// libraries) and lets different frontends attach: the terminal progress
// view, the HTTP status endpoint, or nothing at all in tests.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetSearchHooks(&myProgressView{})
//	// ... run the search
//
// Libraries call hooks to emit events:
//
//	observability.Search().OnTaskComplete(index, found)
package observability

import "sync"

// =============================================================================
// Search Hooks
// =============================================================================

// SearchHooks receives events from a running search. Implementations must be
// safe for concurrent use: task events arrive from worker goroutines.
type SearchHooks interface {
	// OnSearchStart fires once, after the layer-2 candidates are known.
	OnSearchStart(width, depth, candidates, workers int)

	// OnTaskComplete fires when one layer-2 candidate has been fully
	// explored, with the number of sorters that task found.
	OnTaskComplete(index int, found uint64)

	// OnNetworkFound fires for every sorting network discovered.
	OnNetworkFound(index int, seq uint64)

	// OnSearchComplete fires once, after all tasks have joined.
	OnSearchComplete(total uint64)
}

// =============================================================================
// Catalog Hooks
// =============================================================================

// CatalogHooks receives events from catalog operations.
type CatalogHooks interface {
	// OnRunSaved records a run record written to the catalog.
	OnRunSaved(backend string)

	// OnError records a catalog failure. Catalog failures never abort a
	// search; they are surfaced here and otherwise ignored.
	OnError(backend string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(int, int, int, int) {}
func (NoopSearchHooks) OnTaskComplete(int, uint64)       {}
func (NoopSearchHooks) OnNetworkFound(int, uint64)       {}
func (NoopSearchHooks) OnSearchComplete(uint64)          {}

// NoopCatalogHooks is a no-op implementation of CatalogHooks.
type NoopCatalogHooks struct{}

func (NoopCatalogHooks) OnRunSaved(string)     {}
func (NoopCatalogHooks) OnError(string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	searchHooks  SearchHooks  = NoopSearchHooks{}
	catalogHooks CatalogHooks = NoopCatalogHooks{}
	hooksMu      sync.RWMutex
)

// SetSearchHooks registers custom search hooks.
// This should be called once at application startup, before the search runs.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetCatalogHooks registers custom catalog hooks.
// This should be called once at application startup.
func SetCatalogHooks(h CatalogHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		catalogHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Catalog returns the registered catalog hooks.
func Catalog() CatalogHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return catalogHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	catalogHooks = NoopCatalogHooks{}
}
