package donations

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chris/campaign-ledger/pkg/api"
	"github.com/chris/campaign-ledger/pkg/handlers"
	"github.com/chris/campaign-ledger/pkg/mapping"
	"github.com/chris/campaign-ledger/pkg/orchestrator"
)

// DonationsHandler holds the dependencies for donation-related handlers.
type DonationsHandler struct {
	Orchestrator *orchestrator.Orchestrator
}

// NewDonationsHandler creates a new DonationsHandler.
func NewDonationsHandler(o *orchestrator.Orchestrator) *DonationsHandler {
	return &DonationsHandler{Orchestrator: o}
}

// Donate submits a donation to the campaign in the URL. The body is optional;
// an absent or empty amount falls back to the saved draft, then the default.
func (h *DonationsHandler) Donate(w http.ResponseWriter, r *http.Request) {
	campaignID, err := campaignIDParam(r)
	if err != nil {
		handlers.RespondJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	// An empty body means "use the draft or default"; anything else
	// malformed is the caller's error.
	var newDonation api.NewDonation
	if err := handlers.DecodeBody(r, &newDonation); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	result, err := h.Orchestrator.Donate(r.Context(), campaignID, newDonation.Amount)
	if err != nil {
		handlers.RespondJSON(w, handlers.StatusFromError(err), mapping.ToApiTransactionResult(result))
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, mapping.ToApiTransactionResult(result))
}

// PutDraft saves the donation amount the user typed for a campaign.
func (h *DonationsHandler) PutDraft(w http.ResponseWriter, r *http.Request) {
	campaignID, err := campaignIDParam(r)
	if err != nil {
		handlers.RespondJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	var draft api.NewDonation
	if err := handlers.DecodeBody(r, &draft); err != nil {
		handlers.RespondJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	h.Orchestrator.SetDonationDraft(campaignID, draft.Amount)
	w.WriteHeader(http.StatusNoContent)
}

func campaignIDParam(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "campaignID"), 10, 64)
}
