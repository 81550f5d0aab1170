// Package handlers holds the helpers shared by the HTTP handler subpackages:
// JSON responses and the mapping from the domain error taxonomy to status
// codes. Every domain error reaches the caller as structured JSON; nothing is
// swallowed here and nothing is retried.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/campaign-ledger/pkg/api"
	"github.com/chris/campaign-ledger/pkg/ledger"
	"github.com/chris/campaign-ledger/pkg/orchestrator"
	"github.com/chris/campaign-ledger/pkg/units"
	"github.com/chris/campaign-ledger/pkg/wallet"
)

// RespondJSON writes v as the JSON response body.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// RespondError writes a domain error as a structured JSON error envelope.
func RespondError(w http.ResponseWriter, err error) {
	RespondJSON(w, StatusFromError(err), api.Error{Error: err.Error()})
}

// StatusFromError maps the domain error taxonomy to HTTP status codes.
// Local-validation failures are the caller's fault; boundary failures are the
// ledger's.
func StatusFromError(err error) int {
	var revert *ledger.RevertError
	var decode *ledger.DecodeError
	switch {
	case errors.Is(err, units.ErrInvalidAmount),
		errors.Is(err, units.ErrInvalidDeadline):
		return http.StatusUnprocessableEntity
	case errors.Is(err, wallet.ErrNoWalletConnected):
		return http.StatusUnauthorized
	case errors.Is(err, orchestrator.ErrAlreadyPending),
		errors.Is(err, ledger.ErrUserRejected):
		return http.StatusConflict
	case errors.As(err, &revert):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrLedgerUnavailable):
		return http.StatusBadGateway
	case errors.As(err, &decode):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// DecodeBody decodes a JSON request body into v.
func DecodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
