package campaigns

import (
	"net/http"

	"github.com/chris/campaign-ledger/pkg/api"
	"github.com/chris/campaign-ledger/pkg/campaigns"
	"github.com/chris/campaign-ledger/pkg/handlers"
	"github.com/chris/campaign-ledger/pkg/mapping"
	"github.com/chris/campaign-ledger/pkg/orchestrator"
)

// CampaignsHandler holds the dependencies for campaign-related handlers.
type CampaignsHandler struct {
	ReadModel    *campaigns.ReadModel
	Orchestrator *orchestrator.Orchestrator
}

// NewCampaignsHandler creates a new CampaignsHandler.
func NewCampaignsHandler(rm *campaigns.ReadModel, o *orchestrator.Orchestrator) *CampaignsHandler {
	return &CampaignsHandler{ReadModel: rm, Orchestrator: o}
}

// ListCampaigns returns the latest observed campaign registry, annotated with
// this client's transient per-campaign state (pending flag, donation draft).
func (h *CampaignsHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	domainCampaigns, err := h.ReadModel.Fetch(r.Context())
	if err != nil {
		handlers.RespondError(w, err)
		return
	}

	pending := make(map[uint64]bool)
	for _, id := range h.Orchestrator.Pending() {
		pending[id] = true
	}

	apiCampaigns := make([]*api.Campaign, len(domainCampaigns))
	for i, c := range domainCampaigns {
		apiCampaigns[i] = mapping.ToApiCampaign(&c, pending[c.ID], h.Orchestrator.DonationDraft(c.ID))
	}

	handlers.RespondJSON(w, http.StatusOK, apiCampaigns)
}

// CreateCampaign submits a new campaign from the posted form draft. The
// outcome is always a structured result: 201 on settlement, the mapped error
// status with the failed result otherwise — the draft is preserved server
// side for retry.
func (h *CampaignsHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var newCampaign api.NewCampaign
	if err := handlers.DecodeBody(r, &newCampaign); err != nil {
		handlers.RespondJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	result, err := h.Orchestrator.CreateCampaign(r.Context(), mapping.ToDomainDraft(&newCampaign))
	if err != nil {
		handlers.RespondJSON(w, handlers.StatusFromError(err), mapping.ToApiTransactionResult(result))
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, mapping.ToApiTransactionResult(result))
}

// GetDraft returns the stored create-campaign form draft.
func (h *CampaignsHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, mapping.ToApiDraft(h.Orchestrator.CampaignDraft()))
}

// PutDraft replaces the stored create-campaign form draft.
func (h *CampaignsHandler) PutDraft(w http.ResponseWriter, r *http.Request) {
	var draft api.NewCampaign
	if err := handlers.DecodeBody(r, &draft); err != nil {
		handlers.RespondJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	h.Orchestrator.SetCampaignDraft(mapping.ToDomainDraft(&draft))
	w.WriteHeader(http.StatusNoContent)
}
