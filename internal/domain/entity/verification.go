package entity

import "math/big"

// VerificationReport compares a profile with what its node reports.
type VerificationReport struct {
	Network         string   `json:"network"`
	URL             string   `json:"url"`
	ExpectedChainID uint64   `json:"expectedChainId"`
	RemoteChainID   uint64   `json:"remoteChainId"`
	ConfiguredGas   uint64   `json:"configuredGasPrice"`
	RemoteGasPrice  *big.Int `json:"remoteGasPrice"`
	ChainIDMatches  bool     `json:"chainIdMatches"`
}
