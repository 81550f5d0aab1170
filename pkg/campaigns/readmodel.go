// Package campaigns exposes the campaign registry as observed on the ledger.
package campaigns

import (
	"context"

	"github.com/chris/campaign-ledger/pkg/ledger"
	"github.com/chris/campaign-ledger/pkg/models"
)

// ReadModel fetches the current campaign registry. It holds no cache and no
// retry policy: every Fetch is a fresh read, and results are eventually
// consistent with in-flight writes. Each snapshot is independent; consumers
// must not mutate it in place.
type ReadModel struct {
	Ledger ledger.Reader
}

// NewReadModel creates a ReadModel over the given ledger reader.
func NewReadModel(l ledger.Reader) *ReadModel {
	return &ReadModel{Ledger: l}
}

// Fetch returns the latest observed campaign registry in ordinal order.
func (rm *ReadModel) Fetch(ctx context.Context) ([]models.Campaign, error) {
	return rm.Ledger.GetCampaigns(ctx)
}
