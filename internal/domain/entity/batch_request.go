package entity

import "math/big"

// NativeDecimals is the number of decimals of the native currency on EVM chains.
const NativeDecimals uint8 = 18

// BalanceRequestItem represents a single item in a batch request for balances.
type BalanceRequestItem struct {
	ID      string
	Address string
}

// BalanceResultItem represents the result of a single balance request from a batch.
type BalanceResultItem struct {
	RequestID        string
	Address          string
	Balance          *big.Int
	FormattedBalance string
	Error            error
}
