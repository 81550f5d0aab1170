package donations

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chris/campaign-ledger/pkg/api"
	"github.com/chris/campaign-ledger/pkg/ledger"
	ledgermocks "github.com/chris/campaign-ledger/pkg/ledger/mocks"
	"github.com/chris/campaign-ledger/pkg/models"
	"github.com/chris/campaign-ledger/pkg/orchestrator"
	"github.com/chris/campaign-ledger/pkg/units"
	walletmocks "github.com/chris/campaign-ledger/pkg/wallet/mocks"
)

func connectedWallet() *walletmocks.Wallet {
	w := new(walletmocks.Wallet)
	w.On("ActiveAccount").Return(common.HexToAddress("0x1111111111111111111111111111111111111111"), true)
	return w
}

// donateRequest builds a request with the chi URL param wired in.
func donateRequest(campaignID, body string) *http.Request {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(http.MethodPost, "/campaigns/"+campaignID+"/donations", reader)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("campaignID", campaignID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDonate(t *testing.T) {
	t.Run("Explicit Amount", func(t *testing.T) {
		quarter, _ := units.ToLedgerAmount("0.25")
		mockLedger := new(ledgermocks.Ledger)
		mockLedger.On("DonateToCampaign", mock.Anything, uint64(2), quarter).Once().Return(nil)

		h := NewDonationsHandler(orchestrator.New(mockLedger, connectedWallet(), nil))
		rr := httptest.NewRecorder()

		h.Donate(rr, donateRequest("2", `{"amount":"0.25"}`))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var result api.TransactionResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, string(models.SETTLED), result.Status)
		require.NotNil(t, result.CampaignId)
		assert.Equal(t, uint64(2), *result.CampaignId)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Empty Body Falls Back To Default", func(t *testing.T) {
		tenth, _ := units.ToLedgerAmount("0.1")
		mockLedger := new(ledgermocks.Ledger)
		mockLedger.On("DonateToCampaign", mock.Anything, uint64(0), tenth).Once().Return(nil)

		h := NewDonationsHandler(orchestrator.New(mockLedger, connectedWallet(), nil))
		rr := httptest.NewRecorder()

		h.Donate(rr, donateRequest("0", ""))

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Already Pending Is A Conflict", func(t *testing.T) {
		mockLedger := new(ledgermocks.Ledger)
		inFlight := make(chan struct{})
		release := make(chan struct{})
		mockLedger.On("DonateToCampaign", mock.Anything, uint64(2), mock.Anything).Once().Run(func(mock.Arguments) {
			close(inFlight)
			<-release
		}).Return(nil)

		h := NewDonationsHandler(orchestrator.New(mockLedger, connectedWallet(), nil))

		done := make(chan struct{})
		go func() {
			defer close(done)
			rr := httptest.NewRecorder()
			h.Donate(rr, donateRequest("2", `{"amount":"0.1"}`))
			assert.Equal(t, http.StatusCreated, rr.Code)
		}()

		<-inFlight
		rr := httptest.NewRecorder()
		h.Donate(rr, donateRequest("2", `{"amount":"0.1"}`))
		assert.Equal(t, http.StatusConflict, rr.Code)

		close(release)
		<-done
		mockLedger.AssertNumberOfCalls(t, "DonateToCampaign", 1)
	})

	t.Run("User Rejection Surfaces", func(t *testing.T) {
		mockLedger := new(ledgermocks.Ledger)
		mockLedger.On("DonateToCampaign", mock.Anything, mock.Anything, mock.Anything).Return(ledger.ErrUserRejected)

		h := NewDonationsHandler(orchestrator.New(mockLedger, connectedWallet(), nil))
		rr := httptest.NewRecorder()

		h.Donate(rr, donateRequest("1", `{"amount":"0.1"}`))

		assert.Equal(t, http.StatusConflict, rr.Code)
		var result api.TransactionResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, string(models.FAILED), result.Status)
	})

	t.Run("Invalid Campaign ID", func(t *testing.T) {
		h := NewDonationsHandler(orchestrator.New(new(ledgermocks.Ledger), connectedWallet(), nil))
		rr := httptest.NewRecorder()

		h.Donate(rr, donateRequest("not-a-number", ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPutDraft(t *testing.T) {
	mockLedger := new(ledgermocks.Ledger)
	o := orchestrator.New(mockLedger, connectedWallet(), nil)
	h := NewDonationsHandler(o)

	req := httptest.NewRequest(http.MethodPut, "/campaigns/3/donations/draft", bytes.NewReader([]byte(`{"amount":"0.4"}`)))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("campaignID", "3")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	h.PutDraft(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "0.4", o.DonationDraft(3))
}
