// Package dealsource decides, at read time, where deal records come from: a
// primary store read first, with the bundled CSV asset as the bootstrap
// fallback. Read-path failures are absorbed and degraded, never surfaced;
// callers treat an empty slice as a legitimate, displayable state.
package dealsource

import (
	"context"
	"log"
	"sync"
	"time"

	"dealtrack/internal/csvimport"
	"dealtrack/internal/domain/deal"
)

// RemoteLister reads the deals collection from the primary store.
type RemoteLister interface {
	ListDeals(ctx context.Context) ([]deal.Deal, error)
}

// AssetFetcher retrieves the raw CSV asset text.
type AssetFetcher interface {
	FetchCSV(ctx context.Context) (string, error)
}

// Loader orchestrates the primary/fallback read paths and memoizes the CSV
// result for its own lifetime. Construct one per process (or per test).
type Loader struct {
	remote RemoteLister
	assets AssetFetcher
	now    func() time.Time

	mu sync.Mutex
	// cached is non-nil once the CSV asset has been fetched and parsed;
	// cleared only by InvalidateCache.
	cached []deal.Deal
}

func NewLoader(remote RemoteLister, assets AssetFetcher) *Loader {
	return &Loader{remote: remote, assets: assets, now: time.Now}
}

// LoadDeals reads from the primary store, falling back to the CSV asset on
// transport failure or when the store is empty. The primary path is never
// cached; every call issues a fresh remote read.
func (l *Loader) LoadDeals(ctx context.Context) []deal.Deal {
	deals, err := l.remote.ListDeals(ctx)
	if err != nil {
		log.Printf("dealsource: remote read failed, falling back to CSV: %v", err)
		return l.LoadFromCSV(ctx)
	}
	if len(deals) == 0 {
		// An empty store bootstraps from the CSV asset, same as an
		// unreachable one.
		return l.LoadFromCSV(ctx)
	}
	for i := range deals {
		if deals[i].WeeklyHistory == nil {
			deals[i].WeeklyHistory = deal.WeeklyHistory{}
		}
	}
	return deals
}

// LoadFromCSV fetches and parses the CSV asset at most once, serving every
// later call from memory until InvalidateCache. Fetch or parse failure
// yields an empty slice, not an error.
func (l *Loader) LoadFromCSV(ctx context.Context) []deal.Deal {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cached != nil {
		return l.cached
	}

	text, err := l.assets.FetchCSV(ctx)
	if err != nil {
		log.Printf("dealsource: CSV fetch failed: %v", err)
		return []deal.Deal{}
	}

	deals := csvimport.ParseDeals(text, l.now())
	if deals == nil {
		deals = []deal.Deal{}
	}
	l.cached = deals
	return deals
}

// InvalidateCache forces the next CSV load to re-fetch and re-parse.
func (l *Loader) InvalidateCache() {
	l.mu.Lock()
	l.cached = nil
	l.mu.Unlock()
}
