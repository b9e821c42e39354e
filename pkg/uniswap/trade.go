package uniswap

import (
	"context"
	"fmt"
	"math/big"

	"uniswap-cli/pkg/types"
)

// V2 pools charge a 0.3% fee: only 997/1000 of the input moves the curve.
var (
	feeNumerator   = big.NewInt(997)
	feeDenominator = big.NewInt(1000)
)

// BuildTrade quotes an exact-input DAI -> ETH trade. The human-entered
// amount is normalized to base units, the output follows the
// constant-product formula on the memoized reserves, and the minimum output
// applies the fixed slippage tolerance.
func (c *Controller) BuildTrade(ctx context.Context, amount string) (types.TradeDescriptor, error) {
	pair, err := c.ResolvePair(ctx)
	if err != nil {
		return types.TradeDescriptor{}, err
	}

	token, err := c.ResolveToken(ctx)
	if err != nil {
		return types.TradeDescriptor{}, err
	}

	amountIn, err := NormalizeAmount(amount, token)
	if err != nil {
		return types.TradeDescriptor{}, err
	}
	if amountIn.Sign() <= 0 {
		return types.TradeDescriptor{}, fmt.Errorf("%w: amount must be positive, got %q", ErrInvalidAmount, amount)
	}

	amountOut := outputAmount(amountIn, pair.TokenReserve, pair.WETHReserve)

	minOut := new(big.Int).Mul(amountOut, big.NewInt(slippageDenominator-slippageNumerator))
	minOut.Div(minOut, big.NewInt(slippageDenominator))

	return types.TradeDescriptor{
		AmountIn:     amountIn,
		AmountOut:    amountOut,
		AmountOutMin: minOut,
	}, nil
}

// outputAmount applies the constant-product formula:
// out = in*997*reserveOut / (reserveIn*1000 + in*997)
func outputAmount(amountIn, reserveIn, reserveOut *big.Int) *big.Int {
	inWithFee := new(big.Int).Mul(amountIn, feeNumerator)

	numerator := new(big.Int).Mul(inWithFee, reserveOut)
	denominator := new(big.Int).Mul(reserveIn, feeDenominator)
	denominator.Add(denominator, inWithFee)

	return numerator.Div(numerator, denominator)
}
