package wallet

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris/campaign-ledger/pkg/ledger"
)

const testKeyHex = "4c0883a69102937d6231471b5dbb6204fe512961708279feb1be6ae5538da033"

var contractAddr = common.HexToAddress("0x00000000000000000000000000000000000000aa")

// fakeNode scripts the RPC responses for one submit.
type fakeNode struct {
	estimateErr error
	sendErr     error
	sent        *types.Transaction

	receipt    *types.Receipt
	receiptErr error
	// notFoundPolls is how many times the receipt lookup reports NotFound
	// before the receipt appears.
	notFoundPolls int

	callResult []byte
	callErr    error
}

func (f *fakeNode) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return 7, nil
}

func (f *fakeNode) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1000000000), nil
}

func (f *fakeNode) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if f.estimateErr != nil {
		return 0, f.estimateErr
	}
	return 21000, nil
}

func (f *fakeNode) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = tx
	return nil
}

func (f *fakeNode) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if f.notFoundPolls > 0 {
		f.notFoundPolls--
		return nil, ethereum.NotFound
	}
	return f.receipt, f.receiptErr
}

func (f *fakeNode) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return f.callResult, f.callErr
}

func newTestWallet(t *testing.T, node Node) *LocalWallet {
	t.Helper()
	w, err := NewLocalWallet(node, testKeyHex, 1337)
	require.NoError(t, err)
	w.PollInterval = time.Millisecond
	return w
}

// revertData encodes a solidity Error(string) payload like a node would.
func revertData(t *testing.T, reason string) []byte {
	t.Helper()
	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	require.NoError(t, err)
	return append([]byte{0x08, 0xc3, 0x79, 0xa0}, packed...)
}

func TestActiveAccount(t *testing.T) {
	t.Run("Connected", func(t *testing.T) {
		w := newTestWallet(t, &fakeNode{})
		account, connected := w.ActiveAccount()
		assert.True(t, connected)
		assert.NotEqual(t, common.Address{}, account)
	})

	t.Run("Disconnected", func(t *testing.T) {
		w, err := NewLocalWallet(&fakeNode{}, "", 1337)
		require.NoError(t, err)
		_, connected := w.ActiveAccount()
		assert.False(t, connected)

		err = w.SignAndSubmit(context.Background(), CallSpec{To: contractAddr})
		assert.ErrorIs(t, err, ErrNoWalletConnected)
	})

	t.Run("Garbage Key", func(t *testing.T) {
		_, err := NewLocalWallet(&fakeNode{}, "zz", 1337)
		assert.Error(t, err)
	})
}

func TestSignAndSubmit(t *testing.T) {
	call := CallSpec{To: contractAddr, Data: []byte{0x01, 0x02}, Value: big.NewInt(42)}

	t.Run("Settles After Polling", func(t *testing.T) {
		node := &fakeNode{
			receipt:       &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10)},
			notFoundPolls: 2,
		}
		w := newTestWallet(t, node)

		err := w.SignAndSubmit(context.Background(), call)

		require.NoError(t, err)
		require.NotNil(t, node.sent)
		assert.Equal(t, contractAddr, *node.sent.To())
		assert.Equal(t, big.NewInt(42), node.sent.Value())
		assert.Equal(t, []byte{0x01, 0x02}, node.sent.Data())
		assert.Equal(t, uint64(7), node.sent.Nonce())
	})

	t.Run("Reverted Receipt Recovers Reason", func(t *testing.T) {
		node := &fakeNode{
			receipt:    &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(10)},
			callResult: revertData(t, "the deadline has passed"),
		}
		w := newTestWallet(t, node)

		err := w.SignAndSubmit(context.Background(), call)

		var revert *ledger.RevertError
		require.ErrorAs(t, err, &revert)
		assert.Equal(t, "the deadline has passed", revert.Message)
	})

	t.Run("Estimate Revert Fails Before Signing", func(t *testing.T) {
		node := &fakeNode{estimateErr: errors.New("execution reverted: goal already reached")}
		w := newTestWallet(t, node)

		err := w.SignAndSubmit(context.Background(), call)

		var revert *ledger.RevertError
		require.ErrorAs(t, err, &revert)
		assert.Equal(t, "goal already reached", revert.Message)
		assert.Nil(t, node.sent, "nothing must be submitted after a failed estimate")
	})

	t.Run("Declined Signature", func(t *testing.T) {
		node := &fakeNode{sendErr: errors.New("user denied transaction signature")}
		w := newTestWallet(t, node)

		err := w.SignAndSubmit(context.Background(), call)
		assert.ErrorIs(t, err, ledger.ErrUserRejected)
	})

	t.Run("Node Down", func(t *testing.T) {
		node := &fakeNode{sendErr: errors.New("connection refused")}
		w := newTestWallet(t, node)

		err := w.SignAndSubmit(context.Background(), call)
		assert.ErrorIs(t, err, ledger.ErrLedgerUnavailable)
	})

	t.Run("Abandoned Wait", func(t *testing.T) {
		node := &fakeNode{notFoundPolls: 1 << 30}
		w := newTestWallet(t, node)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := w.SignAndSubmit(ctx, call)
		assert.ErrorIs(t, err, ledger.ErrLedgerUnavailable)
	})
}
