package wallet

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chris/campaign-ledger/pkg/ledger"
)

// Node is the subset of the RPC client the signer needs. *ethclient.Client
// satisfies it; tests provide fakes.
type Node interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// LocalWallet signs with a private key held in process. A nil key models the
// disconnected state: ActiveAccount reports false and every submit fails with
// ErrNoWalletConnected.
type LocalWallet struct {
	node    Node
	key     *ecdsa.PrivateKey
	chainID *big.Int

	// PollInterval is how often the settlement wait polls for a receipt.
	PollInterval time.Duration
}

// NewLocalWallet builds a wallet from a hex-encoded private key. An empty key
// yields a disconnected wallet.
func NewLocalWallet(node Node, privateKeyHex string, chainID int64) (*LocalWallet, error) {
	w := &LocalWallet{node: node, chainID: big.NewInt(chainID), PollInterval: time.Second}
	if privateKeyHex == "" {
		return w, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	w.key = key
	return w, nil
}

// ActiveAccount returns the address derived from the configured key.
func (w *LocalWallet) ActiveAccount() (common.Address, bool) {
	if w.key == nil {
		return common.Address{}, false
	}
	return crypto.PubkeyToAddress(w.key.PublicKey), true
}

// SignAndSubmit signs the call and waits for the ledger to settle it.
func (w *LocalWallet) SignAndSubmit(ctx context.Context, call CallSpec) error {
	from, ok := w.ActiveAccount()
	if !ok {
		return ErrNoWalletConnected
	}

	nonce, err := w.node.PendingNonceAt(ctx, from)
	if err != nil {
		return fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
	}

	gasPrice, err := w.node.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
	}

	msg := ethereum.CallMsg{From: from, To: &call.To, Value: call.Value, Data: call.Data}
	gasLimit, err := w.node.EstimateGas(ctx, msg)
	if err != nil {
		// Nodes simulate the call during estimation, so a revert surfaces
		// here before anything is signed.
		return classifySubmitError(err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &call.To,
		Value:    call.Value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     call.Data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(w.chainID), w.key)
	if err != nil {
		return fmt.Errorf("%w: %v", ledger.ErrUserRejected, err)
	}

	if err := w.node.SendTransaction(ctx, signed); err != nil {
		return classifySubmitError(err)
	}

	return w.waitSettled(ctx, signed.Hash(), msg)
}

// waitSettled polls for the transaction receipt until the ledger confirms or
// reverts the write. The write itself cannot be cancelled; a cancelled ctx
// only abandons the wait.
func (w *LocalWallet) waitSettled(ctx context.Context, txHash common.Hash, msg ethereum.CallMsg) error {
	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := w.node.TransactionReceipt(ctx, txHash)
		if err == nil {
			if receipt.Status == types.ReceiptStatusSuccessful {
				return nil
			}
			return &ledger.RevertError{Message: w.revertReason(ctx, msg, receipt.BlockNumber)}
		}
		if !errors.Is(err, ethereum.NotFound) {
			return fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, ctx.Err())
		case <-ticker.C:
		}
	}
}

// revertReason re-executes the failed call at its block to recover the
// ledger-supplied message. Best effort: an empty string means no reason could
// be extracted.
func (w *LocalWallet) revertReason(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) string {
	res, err := w.node.CallContract(ctx, msg, blockNumber)
	if err != nil {
		return reasonFromError(err)
	}
	if reason, err := abi.UnpackRevert(res); err == nil {
		return reason
	}
	return ""
}

// classifySubmitError maps node errors on the submit path into the boundary
// taxonomy.
func classifySubmitError(err error) error {
	if reason := reasonFromError(err); reason != "" {
		return &ledger.RevertError{Message: reason}
	}
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "rejected") || strings.Contains(s, "denied") {
		return fmt.Errorf("%w: %v", ledger.ErrUserRejected, err)
	}
	if strings.Contains(s, "revert") {
		return &ledger.RevertError{Message: trimRevertPrefix(err.Error())}
	}
	return fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
}

// reasonFromError digs the ABI-encoded revert payload out of an RPC error, if
// the node attached one.
func reasonFromError(err error) string {
	var de interface{ ErrorData() interface{} }
	if !errors.As(err, &de) {
		return ""
	}
	hexData, ok := de.ErrorData().(string)
	if !ok {
		return ""
	}
	raw, decodeErr := hex.DecodeString(strings.TrimPrefix(hexData, "0x"))
	if decodeErr != nil {
		return ""
	}
	reason, unpackErr := abi.UnpackRevert(raw)
	if unpackErr != nil {
		return ""
	}
	return reason
}

func trimRevertPrefix(s string) string {
	const p = "execution reverted"
	if i := strings.Index(s, p); i >= 0 {
		return strings.TrimPrefix(strings.TrimSpace(s[i+len(p):]), ": ")
	}
	return s
}
