package orchestrator

import "sync"

// pendingSet tracks which campaigns have a submitted-but-unsettled write.
// A campaign appears at most once: acquire is an atomic check-and-insert, so
// the orchestrator never has two outstanding donations for the same campaign.
// Membership is transient and never persisted.
type pendingSet struct {
	mu  sync.Mutex
	ids map[uint64]struct{}
}

func newPendingSet() *pendingSet {
	return &pendingSet{ids: make(map[uint64]struct{})}
}

// acquire reserves the campaign for a write attempt. It returns false when
// the campaign already has one in flight; otherwise it returns a release
// function that must run on every exit path of the attempt, success or not.
// Release is idempotent.
func (p *pendingSet) acquire(campaignID uint64) (release func(), ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.ids[campaignID]; exists {
		return nil, false
	}
	p.ids[campaignID] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.ids, campaignID)
		})
	}, true
}

// snapshot returns the campaign IDs currently in flight.
func (p *pendingSet) snapshot() []uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := make([]uint64, 0, len(p.ids))
	for id := range p.ids {
		ids = append(ids, id)
	}
	return ids
}
