// Package wallet holds the signing key and connection state the swap
// controller submits transactions through.
package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Status describes the wallet connection lifecycle
type Status int

const (
	// StatusUnavailable means no signing key is configured at all
	StatusUnavailable Status = iota
	// StatusNotConnected means a key is configured but accounts have not
	// been requested yet
	StatusNotConnected
	// StatusConnecting means account derivation is in progress
	StatusConnecting
	// StatusConnected means the account is derived and the wallet can sign
	StatusConnected
)

func (s Status) String() string {
	switch s {
	case StatusUnavailable:
		return "unavailable"
	case StatusNotConnected:
		return "not connected"
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Provider signs transactions with a locally held private key
type Provider struct {
	mu      sync.Mutex
	status  Status
	rawKey  string
	key     *ecdsa.PrivateKey
	account common.Address
}

// NewProvider creates a provider around a hex-encoded private key. An empty
// key yields an unavailable provider.
func NewProvider(privateKeyHex string) *Provider {
	status := StatusNotConnected
	if strings.TrimSpace(privateKeyHex) == "" {
		status = StatusUnavailable
	}

	return &Provider{
		status: status,
		rawKey: strings.TrimSpace(privateKeyHex),
	}
}

// RequestAccounts parses the configured key, derives the account address,
// and moves the provider to the connected state. Calling it again on a
// connected provider returns the same account.
func (p *Provider) RequestAccounts() ([]common.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status == StatusUnavailable {
		return nil, fmt.Errorf("no private key configured")
	}
	if p.status == StatusConnected {
		return []common.Address{p.account}, nil
	}

	p.status = StatusConnecting

	key, err := crypto.HexToECDSA(strings.TrimPrefix(p.rawKey, "0x"))
	if err != nil {
		p.status = StatusNotConnected
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	p.key = key
	p.account = crypto.PubkeyToAddress(key.PublicKey)
	p.status = StatusConnected

	return []common.Address{p.account}, nil
}

// Status returns the current connection status
func (p *Provider) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Account returns the derived account address. Zero until connected.
func (p *Provider) Account() common.Address {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.account
}

// SignTx signs a transaction with the wallet's key using EIP-155
func (p *Provider) SignTx(tx *gethtypes.Transaction, chainID *big.Int) (*gethtypes.Transaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status != StatusConnected {
		return nil, fmt.Errorf("wallet is %s", p.status)
	}

	signed, err := gethtypes.SignTx(tx, gethtypes.NewEIP155Signer(chainID), p.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	return signed, nil
}
