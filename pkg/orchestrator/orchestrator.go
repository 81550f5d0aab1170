// Package orchestrator is the only writer against the ledger. It validates
// and converts user input before any network call, serializes writes per
// campaign through a pending-set guard, and keeps transient drafts so failed
// attempts lose no data.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chris/campaign-ledger/pkg/ledger"
	"github.com/chris/campaign-ledger/pkg/models"
	"github.com/chris/campaign-ledger/pkg/units"
	"github.com/chris/campaign-ledger/pkg/wallet"
	"github.com/chris/campaign-ledger/pkg/websockets"
)

// ErrAlreadyPending is returned when a donation is attempted against a
// campaign that already has one in flight from this client. Detected locally;
// the ledger is never contacted.
var ErrAlreadyPending = errors.New("campaign already has a pending transaction")

// DefaultDonationAmount is used when a donation is submitted with no amount
// and no saved draft.
const DefaultDonationAmount = "0.1"

// Orchestrator submits create-campaign and donation writes and tracks their
// per-campaign pending state. All of its state is in-memory and transient;
// the ledger is the only durable store.
type Orchestrator struct {
	Ledger    ledger.Writer
	Wallet    wallet.Wallet
	Publisher websockets.Publisher

	// DefaultDonation overrides DefaultDonationAmount when non-empty.
	DefaultDonation string

	pending *pendingSet
	drafts  *draftStore
	now     func() time.Time
}

// New creates an Orchestrator with empty pending state and drafts.
func New(l ledger.Writer, w wallet.Wallet, pub websockets.Publisher) *Orchestrator {
	return &Orchestrator{
		Ledger:    l,
		Wallet:    w,
		Publisher: pub,
		pending:   newPendingSet(),
		drafts:    newDraftStore(),
		now:       time.Now,
	}
}

// CreateCampaign converts and submits a new campaign from the draft. The
// draft is stored before submission and discarded only on settlement, so a
// failed attempt keeps every field for retry.
func (o *Orchestrator) CreateCampaign(ctx context.Context, draft models.CampaignDraft) (*models.TransactionResult, error) {
	result := o.newResult(nil)

	account, connected := o.Wallet.ActiveAccount()
	if !connected {
		return o.fail(result, wallet.ErrNoWalletConnected)
	}
	owner := account.Hex()

	o.drafts.setCampaignDraft(draft)

	// Convert before any network call: invalid input must never reach the
	// ledger.
	target, err := units.ToLedgerAmount(draft.Target)
	if err != nil {
		return o.fail(result, err)
	}
	deadline, err := units.ToLedgerTimestamp(draft.Deadline, o.now())
	if err != nil {
		return o.fail(result, err)
	}

	result.Status = models.SUBMITTING
	slog.Info("submitting campaign", "attemptId", result.AttemptID, "owner", owner, "title", draft.Title)

	if err := o.Ledger.AddCampaign(ctx, owner, draft.Title, draft.Description, target, deadline, draft.Image); err != nil {
		return o.fail(result, err)
	}

	o.drafts.clearCampaignDraft()
	o.settle(result)
	o.publish(ctx, websockets.Message{
		Type: websockets.MessageTypeCampaignCreated,
		Payload: websockets.CampaignCreatedPayload{
			AttemptID: result.AttemptID,
			Owner:     owner,
			Title:     draft.Title,
		},
	})
	return result, nil
}

// Donate converts and submits a donation to the campaign at campaignID. An
// empty amount falls back to the saved draft for that campaign, then to the
// configured default. The campaign's pending-set slot is held for the whole
// attempt and released on every exit path.
func (o *Orchestrator) Donate(ctx context.Context, campaignID uint64, amount string) (*models.TransactionResult, error) {
	result := o.newResult(&campaignID)

	if _, connected := o.Wallet.ActiveAccount(); !connected {
		return o.fail(result, wallet.ErrNoWalletConnected)
	}

	if amount == "" {
		amount = o.drafts.donationAmount(campaignID)
	}
	if amount == "" {
		amount = o.defaultDonation()
	}

	// Conversion failures must never enter the pending set.
	wei, err := units.ToLedgerAmount(amount)
	if err != nil {
		return o.fail(result, err)
	}

	release, ok := o.pending.acquire(campaignID)
	if !ok {
		return o.fail(result, ErrAlreadyPending)
	}
	defer release()

	result.Status = models.SUBMITTING
	slog.Info("submitting donation", "attemptId", result.AttemptID, "campaignId", campaignID, "amount", amount)

	if err := o.Ledger.DonateToCampaign(ctx, campaignID, wei); err != nil {
		return o.fail(result, err)
	}

	o.drafts.clearDonationAmount(campaignID)
	o.settle(result)
	o.publish(ctx, websockets.Message{
		Type: websockets.MessageTypeDonationSettled,
		Payload: websockets.DonationSettledPayload{
			AttemptID:  result.AttemptID,
			CampaignID: campaignID,
			Amount:     units.ToDisplayAmount(wei),
		},
	})
	return result, nil
}

// Pending returns the campaign IDs with an in-flight donation.
func (o *Orchestrator) Pending() []uint64 {
	return o.pending.snapshot()
}

// SetDonationDraft saves the amount the user typed for a campaign's donation
// field.
func (o *Orchestrator) SetDonationDraft(campaignID uint64, amount string) {
	o.drafts.setDonationAmount(campaignID, amount)
}

// DonationDraft returns the saved donation amount for a campaign, if any.
func (o *Orchestrator) DonationDraft(campaignID uint64) string {
	return o.drafts.donationAmount(campaignID)
}

// SetCampaignDraft replaces the create-campaign form draft.
func (o *Orchestrator) SetCampaignDraft(draft models.CampaignDraft) {
	o.drafts.setCampaignDraft(draft)
}

// CampaignDraft returns the current create-campaign form draft.
func (o *Orchestrator) CampaignDraft() models.CampaignDraft {
	return o.drafts.campaignDraft()
}

func (o *Orchestrator) defaultDonation() string {
	if o.DefaultDonation != "" {
		return o.DefaultDonation
	}
	return DefaultDonationAmount
}

func (o *Orchestrator) newResult(campaignID *uint64) *models.TransactionResult {
	return &models.TransactionResult{
		AttemptID:  uuid.New().String(),
		Status:     models.IDLE,
		CampaignID: campaignID,
		CreatedAt:  o.now(),
	}
}

func (o *Orchestrator) settle(result *models.TransactionResult) {
	result.Status = models.SETTLED
	result.SettledAt = o.now()
}

func (o *Orchestrator) fail(result *models.TransactionResult, err error) (*models.TransactionResult, error) {
	result.Status = models.FAILED
	result.SettledAt = o.now()

	var revert *ledger.RevertError
	if errors.As(err, &revert) {
		result.Message = revert.Message
	} else {
		result.Message = err.Error()
	}

	slog.Info("write attempt failed", "attemptId", result.AttemptID, "error", err)
	return result, err
}

func (o *Orchestrator) publish(ctx context.Context, msg websockets.Message) {
	if o.Publisher == nil {
		return
	}
	if err := o.Publisher.Publish(ctx, msg); err != nil {
		slog.Error("failed to publish settlement message", "error", err)
	}
}
