package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeCampaignCreated is sent when a create-campaign write settles.
	MessageTypeCampaignCreated MessageType = "campaignCreated"
	// MessageTypeDonationSettled is sent when a donation write settles.
	MessageTypeDonationSettled MessageType = "donationSettled"
)

// Message represents a generic WebSocket message. Both message types tell the
// UI the ledger has moved on and the campaign registry should be refetched.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// CampaignCreatedPayload is the payload for a campaignCreated message.
type CampaignCreatedPayload struct {
	AttemptID string `json:"attempt_id"`
	Owner     string `json:"owner"`
	Title     string `json:"title"`
}

// DonationSettledPayload is the payload for a donationSettled message.
type DonationSettledPayload struct {
	AttemptID  string `json:"attempt_id"`
	CampaignID uint64 `json:"campaign_id"`
	Amount     string `json:"amount"` // display units
}
