// Package evm implements the ledger boundary against an EVM-style contract
// over JSON-RPC. Raw tuple and parallel-array payloads are decoded into typed
// entities here, at the single seam where DecodeError can originate.
package evm

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chris/campaign-ledger/pkg/ledger"
	"github.com/chris/campaign-ledger/pkg/wallet"
)

// contractABI describes the campaign contract surface this client consumes.
const contractABI = `[
  {"type":"function","name":"getCampaigns","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"tuple[]","components":[
     {"name":"owner","type":"address"},
     {"name":"title","type":"string"},
     {"name":"description","type":"string"},
     {"name":"target","type":"uint256"},
     {"name":"deadline","type":"uint256"},
     {"name":"amountCollected","type":"uint256"},
     {"name":"image","type":"string"}]}]},
  {"type":"function","name":"getDonators","stateMutability":"view",
   "inputs":[{"name":"_id","type":"uint256"}],
   "outputs":[{"name":"","type":"address[]"},{"name":"","type":"uint256[]"}]},
  {"type":"function","name":"addCampaign","stateMutability":"nonpayable",
   "inputs":[
     {"name":"_owner","type":"address"},
     {"name":"_title","type":"string"},
     {"name":"_description","type":"string"},
     {"name":"_target","type":"uint256"},
     {"name":"_deadline","type":"uint256"},
     {"name":"_image","type":"string"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"donateToCampaign","stateMutability":"payable",
   "inputs":[{"name":"_id","type":"uint256"}],"outputs":[]}
]`

// Caller is the subset of the RPC client needed for reads. *ethclient.Client
// satisfies it; tests provide fakes.
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client talks to the campaign contract. Reads go through Caller; writes are
// packed here and handed to the wallet for signing and submission.
type Client struct {
	Caller   Caller
	Wallet   wallet.Wallet
	Contract common.Address

	abi abi.ABI
}

// Compile-time check that Client covers the full boundary.
var _ ledger.Ledger = (*Client)(nil)

// NewClient builds a contract client bound to the given contract address.
func NewClient(caller Caller, w wallet.Wallet, contract common.Address) (*Client, error) {
	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}
	return &Client{Caller: caller, Wallet: w, Contract: contract, abi: parsed}, nil
}

// call packs and executes a read-only contract call against latest state.
func (c *Client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	res, err := c.Caller.CallContract(ctx, ethereum.CallMsg{To: &c.Contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
	}

	out, err := c.abi.Unpack(method, res)
	if err != nil {
		return nil, &ledger.DecodeError{What: method + " result", Err: err}
	}
	return out, nil
}

// submit packs a write and hands it to the wallet.
func (c *Client) submit(ctx context.Context, method string, value *big.Int, args ...interface{}) error {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s call: %w", method, err)
	}
	return c.Wallet.SignAndSubmit(ctx, wallet.CallSpec{To: c.Contract, Data: data, Value: value})
}
