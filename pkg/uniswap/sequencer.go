package uniswap

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"uniswap-cli/pkg/types"
)

// BuildSwapCall encodes swapExactTokensForETH along the DAI -> WETH path
// with a 20 minute deadline.
func (c *Controller) BuildSwapCall(trade types.TradeDescriptor, recipient common.Address) (types.TransactionRequest, error) {
	client := c.active().client

	deadline := big.NewInt(c.now().Add(swapDeadline).Unix())
	path := []common.Address{
		common.HexToAddress(c.cfg.DAI),
		common.HexToAddress(c.cfg.WETH),
	}

	data, err := client.ABIs().Router.Pack("swapExactTokensForETH",
		trade.AmountIn, trade.AmountOutMin, path, recipient, deadline)
	if err != nil {
		return types.TransactionRequest{}, fmt.Errorf("failed to pack swap data: %w", err)
	}

	return types.TransactionRequest{
		To:       c.cfg.Router,
		Data:     data,
		AmountIn: trade.AmountIn.String(),
	}, nil
}

// BuildApproveCall encodes an ERC20 approve granting the spender the given
// amount of the input token.
func (c *Controller) BuildApproveCall(spender common.Address, amount *big.Int) (types.TransactionRequest, error) {
	client := c.active().client

	data, err := client.ABIs().ERC20.Pack("approve", spender, amount)
	if err != nil {
		return types.TransactionRequest{}, fmt.Errorf("failed to pack approve data: %w", err)
	}

	return types.TransactionRequest{
		To:   c.cfg.DAI,
		Data: data,
	}, nil
}

// Submit reads the account's pending nonce, signs the request with the
// connected wallet, and broadcasts it. It returns once the backend accepts
// the submission; it does not wait for the transaction to be mined.
func (c *Controller) Submit(ctx context.Context, req types.TransactionRequest, from common.Address) (types.TxReceipt, error) {
	s := c.active()
	if s.wallet == nil {
		return types.TxReceipt{}, ErrNoWallet
	}
	backend := s.client.Backend()

	nonce, err := backend.PendingNonceAt(ctx, from)
	if err != nil {
		return types.TxReceipt{}, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := backend.SuggestGasPrice(ctx)
	if err != nil {
		return types.TxReceipt{}, fmt.Errorf("failed to get gas price: %w", err)
	}

	tx := gethtypes.NewTransaction(
		nonce,
		common.HexToAddress(req.To),
		big.NewInt(0),
		GasLimit,
		gasPrice,
		req.Data,
	)

	signed, err := s.wallet.SignTx(tx, big.NewInt(c.chainID))
	if err != nil {
		return types.TxReceipt{}, err
	}

	if err := backend.SendTransaction(ctx, signed); err != nil {
		return types.TxReceipt{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	return types.TxReceipt{
		Hash:  signed.Hash().Hex(),
		Nonce: nonce,
	}, nil
}

// ExecuteSwap runs the approve-then-swap sequence for the account. The two
// submissions are strictly ordered: the swap is never sent if the approve
// submission fails. Any failure is logged and collapsed into a false return;
// an allowance granted by a successful approve is not revoked when the swap
// fails afterwards. A balance refresh signal fires when the attempt
// completes, success or not.
func (c *Controller) ExecuteSwap(ctx context.Context, trade types.TradeDescriptor, account common.Address) bool {
	defer c.notifyRefresh()

	if err := c.executeSwap(ctx, trade, account); err != nil {
		c.log.Error().Err(err).Str("account", account.Hex()).Msg("swap failed")
		return false
	}

	return true
}

func (c *Controller) executeSwap(ctx context.Context, trade types.TradeDescriptor, account common.Address) error {
	swapReq, err := c.BuildSwapCall(trade, account)
	if err != nil {
		return err
	}

	approveReq, err := c.BuildApproveCall(common.HexToAddress(swapReq.To), trade.AmountIn)
	if err != nil {
		return err
	}

	receipt, err := c.Submit(ctx, approveReq, account)
	if err != nil {
		return fmt.Errorf("approve: %w", err)
	}
	c.log.Info().Str("tx", receipt.Hash).Uint64("nonce", receipt.Nonce).Msg("approve submitted")

	receipt, err = c.Submit(ctx, swapReq, account)
	if err != nil {
		return fmt.Errorf("swap: %w", err)
	}
	c.log.Info().Str("tx", receipt.Hash).Uint64("nonce", receipt.Nonce).Msg("swap submitted")

	return nil
}
