// Package uniswap implements the DAI -> ETH swap controller: it resolves the
// trading pair from chain state, quotes trades against the constant-product
// curve, and submits the approve+swap transaction sequence through the V2
// router.
package uniswap

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"uniswap-cli/config"
	"uniswap-cli/pkg/chain"
	"uniswap-cli/pkg/types"
	"uniswap-cli/pkg/wallet"
)

// GasLimit is the fixed gas limit applied to submitted transactions
const GasLimit = 4700000

// Slippage tolerance applied to every trade: 50/1000 = 5%
const (
	slippageNumerator   = 50
	slippageDenominator = 1000
)

// Deadline given to the router for a swap to land on chain
const swapDeadline = 20 * time.Minute

// session couples a wallet with the chain handle it was connected through.
// The pair is swapped as a unit so a submission never mixes an old wallet
// with a new connection.
type session struct {
	client *chain.Client
	wallet *wallet.Provider
}

// Controller quotes and executes DAI -> ETH swaps on one network
type Controller struct {
	chainID int64
	cfg     config.ChainConfig
	log     zerolog.Logger

	session atomic.Pointer[session]

	// Token and pair are fetched at most once per controller lifetime.
	// Concurrent resolvers share one in-flight fetch; failures are not
	// cached.
	flight singleflight.Group
	token  atomic.Pointer[types.Token]
	pair   atomic.Pointer[types.TradingPair]

	subMu sync.Mutex
	subs  []chan struct{}

	now func() time.Time
}

// New creates a controller for a chain id. An unknown chain id is a fatal
// construction error.
func New(chainID int64, backend chain.Backend, log zerolog.Logger) (*Controller, error) {
	cfg, ok := config.Chain(chainID)
	if !ok {
		return nil, fmt.Errorf("%w: chain id %d", ErrUnsupportedNetwork, chainID)
	}

	client, err := chain.NewClient(backend)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		chainID: chainID,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
	c.session.Store(&session{client: client})

	return c, nil
}

// ChainConfig returns the contract addresses the controller was built with
func (c *Controller) ChainConfig() config.ChainConfig {
	return c.cfg
}

// SetWallet connects a wallet and atomically replaces the active chain
// handle with one built on the given backend. Callers must not assume the
// previous handle stays valid across this call.
func (c *Controller) SetWallet(provider *wallet.Provider, backend chain.Backend) error {
	if _, err := provider.RequestAccounts(); err != nil {
		return err
	}

	client, err := chain.NewClient(backend)
	if err != nil {
		return err
	}

	c.session.Store(&session{client: client, wallet: provider})
	return nil
}

// Account returns the connected wallet's account address
func (c *Controller) Account() (common.Address, error) {
	s := c.active()
	if s.wallet == nil || s.wallet.Status() != wallet.StatusConnected {
		return common.Address{}, ErrNoWallet
	}
	return s.wallet.Account(), nil
}

func (c *Controller) active() *session {
	return c.session.Load()
}
