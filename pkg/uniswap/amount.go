package uniswap

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"uniswap-cli/pkg/types"
)

// NormalizeAmount converts a human-entered decimal amount into the token's
// integer base units. Precision beyond the token's decimals is truncated,
// never rounded up, and the sign is preserved.
func NormalizeAmount(amount string, token types.Token) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	return d.Shift(int32(token.Decimals)).Truncate(0).BigInt(), nil
}

// ToSignificant renders a decimal to at most the given number of significant
// digits, the format used for quoted prices and balances.
func ToSignificant(d decimal.Decimal, digits int32) string {
	if d.IsZero() {
		return "0"
	}

	nd := int32(d.NumDigits())
	if nd > digits {
		d = d.Round(digits - nd - d.Exponent())
	}

	return d.String()
}
