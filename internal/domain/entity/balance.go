package entity

import "math/big"

// Balance represents the native balance of an account on a network.
type Balance struct {
	Address          string   `json:"address" yaml:"address"`
	NetworkName      string   `json:"networkName" yaml:"networkName"`
	ChainID          uint64   `json:"chainId" yaml:"chainId"`
	Amount           *big.Int `json:"-" yaml:"-"`
	Wei              string   `json:"wei" yaml:"wei"`
	FormattedBalance string   `json:"formattedBalance" yaml:"formattedBalance"`
	Error            string   `json:"error,omitempty" yaml:"error,omitempty"`
}
