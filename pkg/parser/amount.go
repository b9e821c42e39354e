package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Matches: "10", "1.5", ".5", "100.25"
var amountPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)

// NormalizeAmountInput sanitizes a user-entered token amount before it
// reaches the trade builder. Both '.' and ',' are accepted as the decimal
// separator; the canonical form uses '.'.
func NormalizeAmountInput(input string) (string, error) {
	amount := strings.TrimSpace(input)
	amount = strings.ReplaceAll(amount, ",", ".")

	if !amountPattern.MatchString(amount) {
		return "", fmt.Errorf("invalid amount format %q. Expected a decimal number (e.g., '10' or '1.5')", input)
	}

	return amount, nil
}

// IsZeroAmount reports whether a canonical amount string denotes zero.
// Callers should treat a zero amount as "no trade" instead of building one.
func IsZeroAmount(amount string) bool {
	trimmed := strings.Trim(strings.ReplaceAll(amount, ".", ""), "0")
	return amount == "" || trimmed == ""
}
