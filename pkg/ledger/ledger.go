// Package ledger defines the boundary to the campaign ledger contract.
// Implementations live in subpackages; components depend on the granular
// Reader/Writer interfaces rather than a concrete client.
package ledger

import (
	"context"
	"math/big"

	"github.com/chris/campaign-ledger/pkg/models"
)

// Reader defines the read-only view of the ledger. Results reflect the
// ledger's latest observed state at call time; there is no caching and no
// ordering guarantee relative to in-flight writes.
type Reader interface {
	// GetCampaigns retrieves every campaign in ordinal order. Position 0 is
	// the first campaign ever created.
	GetCampaigns(ctx context.Context) ([]models.Campaign, error)

	// GetDonators retrieves a campaign's full donation history in submission
	// order.
	GetDonators(ctx context.Context, campaignID uint64) ([]models.Donation, error)
}

// Writer defines the write operations against the ledger. Each call submits a
// single signed transaction and blocks until the ledger accepts or rejects it.
type Writer interface {
	// AddCampaign registers a new campaign. The ledger assigns its ordinal
	// index; target is in minor units, deadline in unix seconds.
	AddCampaign(ctx context.Context, owner, title, description string, target *big.Int, deadline int64, image string) error

	// DonateToCampaign sends a value-bearing transaction of amount minor
	// units to the campaign at campaignID.
	DonateToCampaign(ctx context.Context, campaignID uint64, amount *big.Int) error
}

// Ledger composes the full boundary. Components should depend on Reader or
// Writer instead of this.
type Ledger interface {
	Reader
	Writer
}
