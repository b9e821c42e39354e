package uniswap

import "errors"

var (
	// ErrUnsupportedNetwork is returned at construction for a chain id the
	// registry does not know. The controller cannot be built.
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// ErrUnresolvedToken wraps a failed token metadata fetch. The failure is
	// not cached; the next call retries.
	ErrUnresolvedToken = errors.New("failed to resolve token")

	// ErrUnresolvedPair wraps a failed pair reserve fetch. The failure is
	// not cached; the next call retries.
	ErrUnresolvedPair = errors.New("failed to resolve pair")

	// ErrInvalidAmount marks malformed or non-positive user input
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNoWallet is returned when a submission is attempted without a
	// connected wallet
	ErrNoWallet = errors.New("no wallet connected")
)
