package uniswap

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"uniswap-cli/pkg/types"
)

// ResolveToken fetches and memoizes the DAI token metadata. Concurrent
// callers share a single in-flight fetch; a failed fetch is not cached and
// the next call retries.
func (c *Controller) ResolveToken(ctx context.Context) (types.Token, error) {
	if t := c.token.Load(); t != nil {
		return *t, nil
	}

	v, err, _ := c.flight.Do("token", func() (interface{}, error) {
		if t := c.token.Load(); t != nil {
			return *t, nil
		}

		token, err := c.fetchToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnresolvedToken, err)
		}

		c.token.Store(&token)
		return token, nil
	})
	if err != nil {
		return types.Token{}, err
	}

	return v.(types.Token), nil
}

func (c *Controller) fetchToken(ctx context.Context) (types.Token, error) {
	client := c.active().client

	out, err := client.Call(ctx, client.ABIs().ERC20, common.HexToAddress(c.cfg.DAI), "decimals")
	if err != nil {
		return types.Token{}, err
	}

	decimals, ok := out[0].(uint8)
	if !ok {
		return types.Token{}, fmt.Errorf("unexpected decimals result type %T", out[0])
	}

	return types.Token{
		ChainID:  c.chainID,
		Address:  c.cfg.DAI,
		Decimals: int(decimals),
	}, nil
}

// ResolvePair fetches and memoizes the DAI/WETH pair reserves, with the same
// single-flight semantics as ResolveToken. Token resolution errors propagate
// unchanged.
func (c *Controller) ResolvePair(ctx context.Context) (types.TradingPair, error) {
	if p := c.pair.Load(); p != nil {
		return *p, nil
	}

	token, err := c.ResolveToken(ctx)
	if err != nil {
		return types.TradingPair{}, err
	}

	v, err, _ := c.flight.Do("pair", func() (interface{}, error) {
		if p := c.pair.Load(); p != nil {
			return *p, nil
		}

		pair, err := c.fetchPair(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnresolvedPair, err)
		}

		c.pair.Store(&pair)
		return pair, nil
	})
	if err != nil {
		return types.TradingPair{}, err
	}

	return v.(types.TradingPair), nil
}

func (c *Controller) fetchPair(ctx context.Context, token types.Token) (types.TradingPair, error) {
	client := c.active().client
	tokenAddr := common.HexToAddress(token.Address)
	wethAddr := common.HexToAddress(c.cfg.WETH)

	out, err := client.Call(ctx, client.ABIs().Factory, common.HexToAddress(c.cfg.Factory), "getPair", tokenAddr, wethAddr)
	if err != nil {
		return types.TradingPair{}, err
	}
	pairAddr := out[0].(common.Address)
	if pairAddr == (common.Address{}) {
		return types.TradingPair{}, fmt.Errorf("pair does not exist for %s/%s", token.Address, c.cfg.WETH)
	}

	out, err = client.Call(ctx, client.ABIs().Pair, pairAddr, "token0")
	if err != nil {
		return types.TradingPair{}, err
	}
	token0 := out[0].(common.Address)

	out, err = client.Call(ctx, client.ABIs().Pair, pairAddr, "getReserves")
	if err != nil {
		return types.TradingPair{}, err
	}
	reserve0 := out[0].(*big.Int)
	reserve1 := out[1].(*big.Int)

	pair := types.TradingPair{PairAddress: pairAddr.Hex()}
	if token0 == tokenAddr {
		pair.TokenReserve, pair.WETHReserve = reserve0, reserve1
	} else {
		pair.TokenReserve, pair.WETHReserve = reserve1, reserve0
	}

	return pair, nil
}

// Price derives the mid-price of 1 DAI in ETH from the memoized pair
// reserves. It is recomputed on every call.
func (c *Controller) Price(ctx context.Context) (decimal.Decimal, error) {
	pair, err := c.ResolvePair(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	token, err := c.ResolveToken(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	tokenReserve := decimal.NewFromBigInt(pair.TokenReserve, -int32(token.Decimals))
	if tokenReserve.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: pool has no %s reserve", ErrUnresolvedPair, token.Address)
	}
	wethReserve := decimal.NewFromBigInt(pair.WETHReserve, -18)

	return wethReserve.DivRound(tokenReserve, 18), nil
}
