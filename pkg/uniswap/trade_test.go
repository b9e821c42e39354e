package uniswap

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrade(t *testing.T) {
	backend := newMockBackend(t)
	controller := newTestController(t, backend)

	trade, err := controller.BuildTrade(context.Background(), "10")
	require.NoError(t, err)

	// 10 DAI at 6 decimals.
	assert.Equal(t, "10000000", trade.AmountIn.String())

	// Expected output per the constant-product formula with the 0.3% fee:
	// out = in*997*reserveOut / (reserveIn*1000 + in*997)
	inWithFee := new(big.Int).Mul(trade.AmountIn, big.NewInt(997))
	numerator := new(big.Int).Mul(inWithFee, backend.wethReserve)
	denominator := new(big.Int).Mul(backend.tokenReserve, big.NewInt(1000))
	denominator.Add(denominator, inWithFee)
	expectedOut := numerator.Div(numerator, denominator)

	assert.Zero(t, expectedOut.Cmp(trade.AmountOut))

	// Minimum output applies the fixed 50/1000 slippage tolerance.
	expectedMin := new(big.Int).Mul(trade.AmountOut, big.NewInt(950))
	expectedMin.Div(expectedMin, big.NewInt(1000))
	assert.Zero(t, expectedMin.Cmp(trade.AmountOutMin))

	// The minimum never exceeds the nominal output.
	assert.True(t, trade.AmountOutMin.Cmp(trade.AmountOut) <= 0)
	assert.True(t, trade.AmountOutMin.Sign() > 0)
}

func TestBuildTradeSmallAmountMinimumBelowNominal(t *testing.T) {
	backend := newMockBackend(t)
	controller := newTestController(t, backend)

	trade, err := controller.BuildTrade(context.Background(), "0.000123")
	require.NoError(t, err)

	assert.True(t, trade.AmountOutMin.Cmp(trade.AmountOut) <= 0)
	assert.True(t, trade.AmountOutMin.Sign() >= 0)
}

func TestBuildTradeRejectsNonPositiveAmounts(t *testing.T) {
	backend := newMockBackend(t)
	controller := newTestController(t, backend)
	ctx := context.Background()

	for _, amount := range []string{"0", "0.0", "-1"} {
		_, err := controller.BuildTrade(ctx, amount)
		require.ErrorIs(t, err, ErrInvalidAmount, "amount %q", amount)
	}
}

func TestBuildTradeRejectsMalformedInput(t *testing.T) {
	backend := newMockBackend(t)
	controller := newTestController(t, backend)

	_, err := controller.BuildTrade(context.Background(), "not-a-number")
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestBuildTradePropagatesResolverFailure(t *testing.T) {
	backend := newMockBackend(t)
	backend.failDecimals = assert.AnError
	controller := newTestController(t, backend)

	_, err := controller.BuildTrade(context.Background(), "10")
	require.ErrorIs(t, err, ErrUnresolvedToken)
}
