// Copyright (C) 2025 OMATrust Project
//
// This file is part of omatrust-verify-go.
//
// omatrust-verify-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// omatrust-verify-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with omatrust-verify-go.  If not, see <https://www.gnu.org/licenses/>.

package chain

import (
	"fmt"
	"math/big"
)

// Config describes one chain's native-token and explorer parameters.
type Config struct {
	Decimals  int    `yaml:"decimals"`
	Symbol    string `yaml:"symbol"`
	BlockTime int    `yaml:"blockTime"` // seconds between blocks
	Explorer  string `yaml:"explorer"`  // base URL, no trailing slash
}

// Fallback is returned for chain IDs without an entry. An unknown chain is
// not an error: the derivation still works with generic EVM parameters.
var Fallback = Config{
	Decimals:  18,
	Symbol:    "ETH",
	BlockTime: 12,
	Explorer:  "https://blockscan.com",
}

// Table maps chain IDs to their configuration. Lookups on a Table never
// fail; missing entries resolve to Fallback.
type Table map[uint64]Config

var defaults = Table{
	1:        {Decimals: 18, Symbol: "ETH", BlockTime: 12, Explorer: "https://etherscan.io"},
	10:       {Decimals: 18, Symbol: "ETH", BlockTime: 2, Explorer: "https://optimistic.etherscan.io"},
	56:       {Decimals: 18, Symbol: "BNB", BlockTime: 3, Explorer: "https://bscscan.com"},
	137:      {Decimals: 18, Symbol: "POL", BlockTime: 2, Explorer: "https://polygonscan.com"},
	8453:     {Decimals: 18, Symbol: "ETH", BlockTime: 2, Explorer: "https://basescan.org"},
	42161:    {Decimals: 18, Symbol: "ETH", BlockTime: 1, Explorer: "https://arbiscan.io"},
	84532:    {Decimals: 18, Symbol: "ETH", BlockTime: 2, Explorer: "https://sepolia.basescan.org"},
	11155111: {Decimals: 18, Symbol: "ETH", BlockTime: 12, Explorer: "https://sepolia.etherscan.io"},
}

// DefaultTable returns a copy of the built-in chain table. Callers may add
// or replace entries on their copy; the built-in table itself is never
// exposed for mutation.
func DefaultTable() Table {
	t := make(Table, len(defaults))
	for id, cfg := range defaults {
		t[id] = cfg
	}
	return t
}

// Lookup resolves chainID against t, falling back to generic EVM defaults
// for unlisted chains.
func (t Table) Lookup(chainID uint64) Config {
	if cfg, ok := t[chainID]; ok {
		return cfg
	}
	return Fallback
}

// Lookup resolves chainID against the built-in table.
func Lookup(chainID uint64) Config {
	return defaults.Lookup(chainID)
}

// Constants holds the per-chain derivation integers. Base anchors the
// magnitude of a proof-of-control amount; Range bounds the hash-derived
// offset added on top of it.
type Constants struct {
	Base  *big.Int // 10^max(decimals-4, 0)
	Range *big.Int // Base / 10, integer division
}

// ConstantsFor computes Base and Range for chainID from t.
func (t Table) ConstantsFor(chainID uint64) Constants {
	exp := t.Lookup(chainID).Decimals - 4
	if exp < 0 {
		exp = 0
	}
	base := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
	return Constants{
		Base:  base,
		Range: new(big.Int).Div(base, big.NewInt(10)),
	}
}

// ConstantsFor computes Base and Range for chainID from the built-in table.
func ConstantsFor(chainID uint64) Constants {
	return defaults.ConstantsFor(chainID)
}

// ExplorerTxURL formats the explorer link for a transaction hash.
func (t Table) ExplorerTxURL(chainID uint64, txHash string) string {
	return fmt.Sprintf("%s/tx/%s", t.Lookup(chainID).Explorer, txHash)
}

// ExplorerAddressURL formats the explorer link for an account address.
func (t Table) ExplorerAddressURL(chainID uint64, addr string) string {
	return fmt.Sprintf("%s/address/%s", t.Lookup(chainID).Explorer, addr)
}

// EstimateBlocksToSearch bounds how far back a transaction scan must look to
// cover validityWindowSeconds, rounding up to whole blocks.
func (t Table) EstimateBlocksToSearch(chainID uint64, validityWindowSeconds int) int {
	blockTime := t.Lookup(chainID).BlockTime
	return (validityWindowSeconds + blockTime - 1) / blockTime
}

// ExplorerTxURL formats the transaction link against the built-in table.
func ExplorerTxURL(chainID uint64, txHash string) string {
	return defaults.ExplorerTxURL(chainID, txHash)
}

// ExplorerAddressURL formats the account link against the built-in table.
func ExplorerAddressURL(chainID uint64, addr string) string {
	return defaults.ExplorerAddressURL(chainID, addr)
}

// EstimateBlocksToSearch bounds a transaction scan against the built-in table.
func EstimateBlocksToSearch(chainID uint64, validityWindowSeconds int) int {
	return defaults.EstimateBlocksToSearch(chainID, validityWindowSeconds)
}

// UnsupportedChainError signals intentionally missing functionality for a
// chain family, as opposed to a defect or an unknown chain ID.
type UnsupportedChainError struct {
	ChainID uint64
	Reason  string
}

// Error implements the standard error interface.
func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("chain %d unsupported: %s", e.ChainID, e.Reason)
}
