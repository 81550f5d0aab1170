package orchestrator

import (
	"sync"

	"github.com/chris/campaign-ledger/pkg/models"
)

// draftStore owns the transient user input: one create-campaign form draft
// and a per-campaign donation amount. Drafts survive failed submissions so
// the user can retry without re-entering data, and are discarded only when
// the corresponding write settles.
type draftStore struct {
	mu        sync.Mutex
	campaign  models.CampaignDraft
	donations map[uint64]string
}

func newDraftStore() *draftStore {
	return &draftStore{donations: make(map[uint64]string)}
}

func (d *draftStore) setCampaignDraft(draft models.CampaignDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.campaign = draft
}

func (d *draftStore) campaignDraft() models.CampaignDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.campaign
}

func (d *draftStore) clearCampaignDraft() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.campaign = models.CampaignDraft{}
}

func (d *draftStore) setDonationAmount(campaignID uint64, amount string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.donations[campaignID] = amount
}

func (d *draftStore) donationAmount(campaignID uint64) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.donations[campaignID]
}

func (d *draftStore) clearDonationAmount(campaignID uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.donations, campaignID)
}
