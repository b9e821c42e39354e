package types

import "math/big"

// Token identifies an ERC20 token on a specific chain
type Token struct {
	ChainID  int64
	Address  string
	Decimals int
}

// TradingPair is a snapshot of a V2 pool's reserves between the DAI-side
// token and WETH
type TradingPair struct {
	PairAddress  string
	TokenReserve *big.Int
	WETHReserve  *big.Int
}

// TradeDescriptor describes a quoted DAI -> ETH trade. All amounts are
// base-unit integers; the descriptor is immutable once built.
type TradeDescriptor struct {
	AmountIn     *big.Int
	AmountOut    *big.Int
	AmountOutMin *big.Int
}

// TransactionRequest is an encoded contract call ready for submission.
// AmountIn carries the swap's input amount so the approve call can be built
// from the swap call.
type TransactionRequest struct {
	To       string
	Data     []byte
	AmountIn string
}

// TxReceipt acknowledges that the provider accepted a submitted transaction.
// It does not imply the transaction is mined.
type TxReceipt struct {
	Hash  string
	Nonce uint64
}
