package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// AddCampaign submits the create-campaign write. Title, description and image
// pass through as-is; target is wei, deadline unix seconds.
func (c *Client) AddCampaign(ctx context.Context, owner, title, description string, target *big.Int, deadline int64, image string) error {
	if !common.IsHexAddress(owner) {
		return fmt.Errorf("invalid owner address %q", owner)
	}
	return c.submit(ctx, "addCampaign", nil,
		common.HexToAddress(owner), title, description, target, big.NewInt(deadline), image)
}

// DonateToCampaign submits a value-bearing write referencing the campaign by
// its ordinal index. The donation amount rides as the transaction value.
func (c *Client) DonateToCampaign(ctx context.Context, campaignID uint64, amount *big.Int) error {
	return c.submit(ctx, "donateToCampaign", amount, new(big.Int).SetUint64(campaignID))
}
