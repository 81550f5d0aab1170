// Package api holds the request and response types of the HTTP surface.
// Amounts and dates are display units here; conversion to ledger units
// happens behind the handlers.
package api

// Campaign is the display-ready view of a ledger campaign.
type Campaign struct {
	Id              uint64  `json:"id"`
	Owner           string  `json:"owner"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Target          string  `json:"target"`
	AmountCollected string  `json:"amount_collected"`
	PercentRaised   float64 `json:"percent_raised"`
	Deadline        string  `json:"deadline"`
	DeadlineUnix    int64   `json:"deadline_unix"`
	Image           string  `json:"image"`
	Pending         bool    `json:"pending"`
	DonationDraft   string  `json:"donation_draft,omitempty"`
}

// NewCampaign is the create-campaign form payload. All fields are free-text
// display strings, validated and converted at submission.
type NewCampaign struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Deadline    string `json:"deadline"`
	Image       string `json:"image"`
}

// NewDonation is the donate payload. An empty amount falls back to the saved
// draft, then to the configured default.
type NewDonation struct {
	Amount string `json:"amount"`
}

// Donation is one display-ready donation record.
type Donation struct {
	Donor  string `json:"donor"`
	Amount string `json:"amount"`
}

// DonationHistory is the state of one campaign's history panel.
type DonationHistory struct {
	CampaignId uint64     `json:"campaign_id"`
	Open       bool       `json:"open"`
	Donations  []Donation `json:"donations"`
	Error      string     `json:"error,omitempty"`
}

// TransactionResult reports the outcome of a write attempt.
type TransactionResult struct {
	AttemptId  string  `json:"attempt_id"`
	Status     string  `json:"status"`
	CampaignId *uint64 `json:"campaign_id,omitempty"`
	Message    string  `json:"message,omitempty"`
}

// Error is the generic error envelope.
type Error struct {
	Error string `json:"error"`
}
