package models

import (
	"math/big"
	"time"
)

// TransactionStatus defines the possible states of a write attempt.
type TransactionStatus string

const (
	IDLE       TransactionStatus = "IDLE"
	SUBMITTING TransactionStatus = "SUBMITTING"
	SETTLED    TransactionStatus = "SETTLED"
	FAILED     TransactionStatus = "FAILED"
)

// Campaign represents the internal domain model for a fundraising campaign.
// The ledger assigns each campaign a stable ordinal index at creation; the
// index is never reused or reassigned.
type Campaign struct {
	ID              uint64
	Owner           string
	Title           string
	Description     string
	Target          *big.Int // minor units (wei)
	AmountCollected *big.Int // minor units (wei), mutated only by the ledger
	Deadline        int64    // unix seconds
	Image           string
}

// Donation is a single recorded contribution to a campaign, ordered by the
// ledger's submission sequence.
type Donation struct {
	Donor  string
	Amount *big.Int // minor units (wei)
}

// CampaignDraft is the in-progress create-campaign input. All fields are
// display-unit strings exactly as the user typed them; conversion to ledger
// units happens at submission time.
type CampaignDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Deadline    string `json:"deadline"`
	Image       string `json:"image"`
}

// TransactionResult is the outcome of a single write attempt.
type TransactionResult struct {
	AttemptID  string
	Status     TransactionStatus
	CampaignID *uint64 // set for donations
	Message    string  // ledger-supplied short message on failure, if any
	CreatedAt  time.Time
	SettledAt  time.Time
}
