// Package mapping converts between domain models and API models.
package mapping

import (
	"math/big"

	"github.com/chris/campaign-ledger/pkg/api"
	"github.com/chris/campaign-ledger/pkg/models"
	"github.com/chris/campaign-ledger/pkg/units"
)

// ToApiCampaign converts a domain Campaign to its display-ready API form.
// pending and donationDraft are this client's transient per-campaign state.
func ToApiCampaign(c *models.Campaign, pending bool, donationDraft string) *api.Campaign {
	return &api.Campaign{
		Id:              c.ID,
		Owner:           c.Owner,
		Title:           c.Title,
		Description:     c.Description,
		Target:          units.ToDisplayAmount(c.Target),
		AmountCollected: units.ToDisplayAmount(c.AmountCollected),
		PercentRaised:   PercentRaised(c.AmountCollected, c.Target),
		Deadline:        units.ToDisplayDate(c.Deadline),
		DeadlineUnix:    c.Deadline,
		Image:           c.Image,
		Pending:         pending,
		DonationDraft:   donationDraft,
	}
}

// PercentRaised computes the raised fraction as a percentage. A zero or
// missing target yields 0 rather than dividing by zero.
func PercentRaised(collected, target *big.Int) float64 {
	if collected == nil || target == nil || target.Sign() == 0 {
		return 0
	}
	ratio := new(big.Float).Quo(new(big.Float).SetInt(collected), new(big.Float).SetInt(target))
	pct, _ := new(big.Float).Mul(ratio, big.NewFloat(100)).Float64()
	return pct
}

// ToApiDonation converts a domain Donation to its API form.
func ToApiDonation(d *models.Donation) api.Donation {
	return api.Donation{
		Donor:  d.Donor,
		Amount: units.ToDisplayAmount(d.Amount),
	}
}

// ToApiDonations converts a donation history snapshot.
func ToApiDonations(donations []models.Donation) []api.Donation {
	out := make([]api.Donation, len(donations))
	for i := range donations {
		out[i] = ToApiDonation(&donations[i])
	}
	return out
}

// ToApiTransactionResult converts a write attempt outcome.
func ToApiTransactionResult(r *models.TransactionResult) *api.TransactionResult {
	return &api.TransactionResult{
		AttemptId:  r.AttemptID,
		Status:     string(r.Status),
		CampaignId: r.CampaignID,
		Message:    r.Message,
	}
}

// ToDomainDraft converts the create-campaign form payload to a domain draft.
func ToDomainDraft(n *api.NewCampaign) models.CampaignDraft {
	return models.CampaignDraft{
		Title:       n.Title,
		Description: n.Description,
		Target:      n.Target,
		Deadline:    n.Deadline,
		Image:       n.Image,
	}
}

// ToApiDraft converts a stored domain draft back to its API form.
func ToApiDraft(d models.CampaignDraft) *api.NewCampaign {
	return &api.NewCampaign{
		Title:       d.Title,
		Description: d.Description,
		Target:      d.Target,
		Deadline:    d.Deadline,
		Image:       d.Image,
	}
}
