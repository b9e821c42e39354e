package uniswap

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"uniswap-cli/pkg/chain"
)

// Ropsten fixtures matching the chain registry.
const (
	testChainID = int64(3)
	testDAI     = "0xaD6D458402F60fD3Bd25163575031ACDce07538D"
	testWETH    = "0xc778417E063141139Fce010982780140Aa0cD5Ab"
	testPair    = "0x1c5DEe94a34D795f9EEeF830B68B80e44868d316"
)

// Well-known go-ethereum test key.
const (
	testKeyHex  = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
	testAccount = "0x71562b71999873DB5b286dF957af199Ec94617F7"
)

// mockBackend scripts contract reads by method selector and records every
// submission attempt in order.
type mockBackend struct {
	t    *testing.T
	abis *chain.Contracts

	mu            sync.Mutex
	decimals      uint8
	tokenReserve  *big.Int
	wethReserve   *big.Int
	token0        common.Address
	pairAddr      common.Address
	tokenBalance  *big.Int
	nativeBalance *big.Int
	fetchDelay    time.Duration

	decimalsCalls int
	reservesCalls int
	failDecimals  error
	failOnSend    int // 1-based index of the submission to reject; 0 = never
	nonce         uint64
	sent          []string
	sentNonces    []uint64
}

func newMockBackend(t *testing.T) *mockBackend {
	t.Helper()

	abis, err := chain.ParseContracts()
	if err != nil {
		t.Fatalf("ParseContracts returned error: %v", err)
	}

	return &mockBackend{
		t:             t,
		abis:          abis,
		decimals:      6,
		tokenReserve:  new(big.Int).Mul(big.NewInt(2_000_000), big.NewInt(1_000_000)),
		wethReserve:   new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18)),
		token0:        common.HexToAddress(testDAI),
		pairAddr:      common.HexToAddress(testPair),
		tokenBalance:  big.NewInt(0),
		nativeBalance: big.NewInt(0),
	}
}

func (m *mockBackend) methodName(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	for _, contract := range []abi.ABI{m.abis.ERC20, m.abis.Pair, m.abis.Factory, m.abis.Router} {
		for name, method := range contract.Methods {
			if bytes.Equal(method.ID, data[:4]) {
				return name
			}
		}
	}
	return ""
}

func (m *mockBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	name := m.methodName(msg.Data)

	switch name {
	case "decimals":
		m.mu.Lock()
		m.decimalsCalls++
		fail := m.failDecimals
		m.failDecimals = nil
		delay := m.fetchDelay
		m.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}
		if fail != nil {
			return nil, fail
		}
		return m.abis.ERC20.Methods["decimals"].Outputs.Pack(m.decimals)

	case "getPair":
		return m.abis.Factory.Methods["getPair"].Outputs.Pack(m.pairAddr)

	case "token0":
		return m.abis.Pair.Methods["token0"].Outputs.Pack(m.token0)

	case "getReserves":
		m.mu.Lock()
		m.reservesCalls++
		m.mu.Unlock()
		reserve0, reserve1 := m.tokenReserve, m.wethReserve
		if m.token0 != common.HexToAddress(testDAI) {
			reserve0, reserve1 = reserve1, reserve0
		}
		return m.abis.Pair.Methods["getReserves"].Outputs.Pack(reserve0, reserve1, uint32(0))

	case "balanceOf":
		return m.abis.ERC20.Methods["balanceOf"].Outputs.Pack(m.tokenBalance)

	default:
		return nil, fmt.Errorf("unexpected contract call %q", name)
	}
}

func (m *mockBackend) PendingNonceAt(_ context.Context, _ common.Address) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nonce, nil
}

func (m *mockBackend) SuggestGasPrice(_ context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (m *mockBackend) BalanceAt(_ context.Context, _ common.Address, _ *big.Int) (*big.Int, error) {
	return m.nativeBalance, nil
}

func (m *mockBackend) SendTransaction(_ context.Context, tx *gethtypes.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, m.methodName(tx.Data()))
	m.sentNonces = append(m.sentNonces, tx.Nonce())

	if m.failOnSend == len(m.sent) {
		return fmt.Errorf("rejected by node")
	}

	m.nonce++
	return nil
}
