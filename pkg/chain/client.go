// Package chain wraps the blockchain RPC client behind the narrow surface
// the swap controller needs: contract reads, balance and nonce queries, and
// transaction broadcast.
package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Backend is the read/submit surface the controller needs from an RPC
// client. *ethclient.Client satisfies it.
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *gethtypes.Transaction) error
}

// Dial connects to an RPC endpoint
func Dial(rpcURL string) (*ethclient.Client, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("RPC URL not configured")
	}

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint: %w", err)
	}

	return client, nil
}

// Client couples a Backend with the parsed contract ABIs
type Client struct {
	backend Backend
	abis    *Contracts
}

// NewClient creates a client around an existing backend
func NewClient(backend Backend) (*Client, error) {
	abis, err := ParseContracts()
	if err != nil {
		return nil, err
	}

	return &Client{
		backend: backend,
		abis:    abis,
	}, nil
}

// Backend returns the underlying RPC backend
func (c *Client) Backend() Backend {
	return c.backend
}

// ABIs returns the parsed contract ABIs
func (c *Client) ABIs() *Contracts {
	return c.abis
}

// Call packs a read-only contract call, executes it against the latest
// block, and unpacks the results.
func (c *Client) Call(ctx context.Context, contract abi.ABI, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	msg := ethereum.CallMsg{
		To:   &to,
		Data: data,
	}
	result, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	out, err := contract.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return out, nil
}
