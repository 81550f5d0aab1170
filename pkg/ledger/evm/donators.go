package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chris/campaign-ledger/pkg/ledger"
	"github.com/chris/campaign-ledger/pkg/models"
)

// GetDonators retrieves a campaign's donation history. The contract returns
// two parallel arrays (donor addresses, amounts) which are zipped into typed
// donations here; a length mismatch is a decode failure.
func (c *Client) GetDonators(ctx context.Context, campaignID uint64) ([]models.Donation, error) {
	out, err := c.call(ctx, "getDonators", new(big.Int).SetUint64(campaignID))
	if err != nil {
		return nil, err
	}
	if len(out) != 2 {
		return nil, &ledger.DecodeError{What: "getDonators result", Err: fmt.Errorf("expected 2 outputs, got %d", len(out))}
	}

	donors, ok := out[0].([]common.Address)
	if !ok {
		return nil, &ledger.DecodeError{What: "donator addresses", Err: fmt.Errorf("unexpected type %T", out[0])}
	}
	amounts, ok := out[1].([]*big.Int)
	if !ok {
		return nil, &ledger.DecodeError{What: "donation amounts", Err: fmt.Errorf("unexpected type %T", out[1])}
	}
	if len(donors) != len(amounts) {
		return nil, &ledger.DecodeError{What: "donation arrays", Err: fmt.Errorf("%d donors vs %d amounts", len(donors), len(amounts))}
	}

	donations := make([]models.Donation, len(donors))
	for i := range donors {
		if amounts[i] == nil {
			return nil, &ledger.DecodeError{What: "donation amounts", Err: fmt.Errorf("donation %d has no amount", i)}
		}
		donations[i] = models.Donation{Donor: donors[i].Hex(), Amount: amounts[i]}
	}
	return donations, nil
}
