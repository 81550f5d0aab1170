// Package history lazily loads per-campaign donation history. Each campaign
// has an open/closed panel flag and a cached snapshot, fetched on every
// closed-to-open transition and replaced wholesale.
package history

import (
	"context"
	"sync"

	"github.com/chris/campaign-ledger/pkg/ledger"
	"github.com/chris/campaign-ledger/pkg/models"
)

type entry struct {
	open      bool
	donations []models.Donation
}

// Loader owns the history cache. Campaigns are independent: a failed fetch
// for one never touches another's entry.
type Loader struct {
	Ledger ledger.Reader

	mu      sync.Mutex
	entries map[uint64]*entry
}

// NewLoader creates a Loader with an empty cache; every panel starts closed.
func NewLoader(l ledger.Reader) *Loader {
	return &Loader{Ledger: l, entries: make(map[uint64]*entry)}
}

// Toggle flips the campaign's panel. Opening always refetches the donation
// history and fully replaces the cached snapshot, so a re-synced shorter view
// never leaves stale rows behind. Closing is local only and keeps the cache.
//
// When the open fetch fails the panel stays open with no data; the caller
// renders the error and a reopen retries the fetch.
func (l *Loader) Toggle(ctx context.Context, campaignID uint64) (open bool, donations []models.Donation, err error) {
	l.mu.Lock()
	e, exists := l.entries[campaignID]
	if !exists {
		e = &entry{}
		l.entries[campaignID] = e
	}

	if e.open {
		e.open = false
		l.mu.Unlock()
		return false, nil, nil
	}
	e.open = true
	l.mu.Unlock()

	fetched, err := l.Ledger.GetDonators(ctx, campaignID)
	if err != nil {
		l.mu.Lock()
		e.donations = nil
		l.mu.Unlock()
		return true, nil, err
	}

	l.mu.Lock()
	e.donations = fetched
	l.mu.Unlock()
	return true, fetched, nil
}

// Cached returns the campaign's panel state and the most recently fetched
// donations without touching the network.
func (l *Loader) Cached(campaignID uint64) (open bool, donations []models.Donation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, exists := l.entries[campaignID]
	if !exists {
		return false, nil
	}
	return e.open, e.donations
}
