package history

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chris/campaign-ledger/pkg/api"
	"github.com/chris/campaign-ledger/pkg/handlers"
	"github.com/chris/campaign-ledger/pkg/history"
	"github.com/chris/campaign-ledger/pkg/mapping"
)

// HistoryHandler holds the dependencies for donation-history handlers.
type HistoryHandler struct {
	Loader *history.Loader
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(l *history.Loader) *HistoryHandler {
	return &HistoryHandler{Loader: l}
}

// Toggle flips the campaign's history panel. Opening refetches the donation
// list; a failed fetch still opens the panel and reports the error in place
// of the list.
func (h *HistoryHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	campaignID, err := campaignIDParam(r)
	if err != nil {
		handlers.RespondJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	open, donations, err := h.Loader.Toggle(r.Context(), campaignID)
	result := api.DonationHistory{
		CampaignId: campaignID,
		Open:       open,
		Donations:  mapping.ToApiDonations(donations),
	}
	if err != nil {
		result.Error = err.Error()
		handlers.RespondJSON(w, handlers.StatusFromError(err), result)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get returns the cached panel state without touching the ledger.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	campaignID, err := campaignIDParam(r)
	if err != nil {
		handlers.RespondJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	open, donations := h.Loader.Cached(campaignID)
	handlers.RespondJSON(w, http.StatusOK, api.DonationHistory{
		CampaignId: campaignID,
		Open:       open,
		Donations:  mapping.ToApiDonations(donations),
	})
}

func campaignIDParam(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "campaignID"), 10, 64)
}
