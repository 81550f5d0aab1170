// Package wallet defines the signing boundary. The orchestrator asks the
// wallet for its active account, and hands it fully-packed calls to sign and
// submit; key management stays behind this interface.
package wallet

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNoWalletConnected is returned when an operation requires a signing
// account and none is configured.
var ErrNoWalletConnected = errors.New("no wallet connected")

// CallSpec is a fully-prepared contract call: ABI-packed calldata plus the
// native value to attach. The wallet signs it as-is.
type CallSpec struct {
	To    common.Address
	Data  []byte
	Value *big.Int
}

// Wallet is the signing boundary consumed by the write path.
type Wallet interface {
	// ActiveAccount returns the connected account, or false when no wallet
	// is available.
	ActiveAccount() (common.Address, bool)

	// SignAndSubmit signs the call, submits it, and blocks until the ledger
	// settles it. A declined signature maps to ledger.ErrUserRejected, a
	// reverted call to *ledger.RevertError.
	SignAndSubmit(ctx context.Context, call CallSpec) error
}
