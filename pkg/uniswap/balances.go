package uniswap

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// TokenBalance returns the account's DAI balance rendered to 6 significant
// digits. Lookup failures are logged and collapsed to "0".
func (c *Controller) TokenBalance(ctx context.Context, account common.Address) string {
	balance, err := c.tokenBalance(ctx, account)
	if err != nil {
		c.log.Error().Err(err).Str("account", account.Hex()).Msg("token balance lookup failed")
		return "0"
	}
	return balance
}

func (c *Controller) tokenBalance(ctx context.Context, account common.Address) (string, error) {
	token, err := c.ResolveToken(ctx)
	if err != nil {
		return "", err
	}

	client := c.active().client
	out, err := client.Call(ctx, client.ABIs().ERC20, common.HexToAddress(c.cfg.DAI), "balanceOf", account)
	if err != nil {
		return "", err
	}
	raw := out[0].(*big.Int)

	return ToSignificant(decimal.NewFromBigInt(raw, -int32(token.Decimals)), 6), nil
}

// NativeBalance returns the account's ETH balance in ether units, or "0" if
// the lookup fails.
func (c *Controller) NativeBalance(ctx context.Context, account common.Address) string {
	raw, err := c.active().client.Backend().BalanceAt(ctx, account, nil)
	if err != nil {
		c.log.Error().Err(err).Str("account", account.Hex()).Msg("native balance lookup failed")
		return "0"
	}

	return decimal.NewFromBigInt(raw, -18).String()
}

// Balances fetches the DAI and ETH balances together
func (c *Controller) Balances(ctx context.Context, account common.Address) (dai, eth string) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		dai = c.TokenBalance(ctx, account)
	}()
	go func() {
		defer wg.Done()
		eth = c.NativeBalance(ctx, account)
	}()

	wg.Wait()
	return dai, eth
}
