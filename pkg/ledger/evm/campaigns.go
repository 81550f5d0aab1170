package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chris/campaign-ledger/pkg/ledger"
	"github.com/chris/campaign-ledger/pkg/models"
)

// rawCampaign mirrors the contract's campaign tuple layout.
type rawCampaign struct {
	Owner           common.Address
	Title           string
	Description     string
	Target          *big.Int
	Deadline        *big.Int
	AmountCollected *big.Int
	Image           string
}

// GetCampaigns retrieves every campaign in ordinal order. The ordinal index
// of each campaign is its position in the returned slice.
func (c *Client) GetCampaigns(ctx context.Context) ([]models.Campaign, error) {
	out, err := c.call(ctx, "getCampaigns")
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, &ledger.DecodeError{What: "getCampaigns result", Err: fmt.Errorf("expected 1 output, got %d", len(out))}
	}

	raw, err := convertSlice[rawCampaign](out[0])
	if err != nil {
		return nil, &ledger.DecodeError{What: "campaign tuple", Err: err}
	}

	campaigns := make([]models.Campaign, len(raw))
	for i, rc := range raw {
		if rc.Target == nil || rc.AmountCollected == nil || rc.Deadline == nil {
			return nil, &ledger.DecodeError{What: "campaign tuple", Err: fmt.Errorf("campaign %d has missing numeric fields", i)}
		}
		if !rc.Deadline.IsInt64() {
			return nil, &ledger.DecodeError{What: "campaign deadline", Err: fmt.Errorf("campaign %d deadline %s overflows unix seconds", i, rc.Deadline)}
		}
		campaigns[i] = models.Campaign{
			ID:              uint64(i),
			Owner:           rc.Owner.Hex(),
			Title:           rc.Title,
			Description:     rc.Description,
			Target:          rc.Target,
			AmountCollected: rc.AmountCollected,
			Deadline:        rc.Deadline.Int64(),
			Image:           rc.Image,
		}
	}
	return campaigns, nil
}

// convertSlice reshapes an ABI-decoded anonymous struct slice into T, in the
// same way abigen bindings do. A shape mismatch comes back as an error rather
// than a panic.
func convertSlice[T any](v interface{}) (out []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected shape: %v", r)
		}
	}()
	out = *abi.ConvertType(v, new([]T)).(*[]T)
	return out, nil
}
