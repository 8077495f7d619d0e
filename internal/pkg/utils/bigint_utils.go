package utils

import (
	"math/big"
	"strings"
)

// FormatBigInt converts a big.Int amount to a decimal string using the given
// number of decimals, with trailing zeros trimmed.
// Example: amount=1234500000000000000, decimals=18 => "1.2345"
func FormatBigInt(amount *big.Int, decimals uint8) (string, error) {
	if amount == nil || amount.Sign() == 0 {
		return "0", nil
	}
	if decimals == 0 {
		return amount.String(), nil
	}

	negative := amount.Sign() < 0
	digits := new(big.Int).Abs(amount).String()

	// Left-pad so there is at least one digit before the decimal point.
	if pad := int(decimals) + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	intPart := digits[:len(digits)-int(decimals)]
	fracPart := strings.TrimRight(digits[len(digits)-int(decimals):], "0")

	formatted := intPart
	if fracPart != "" {
		formatted += "." + fracPart
	}
	if negative {
		formatted = "-" + formatted
	}
	return formatted, nil
}
