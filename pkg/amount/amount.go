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

package amount

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/omatrust-project/omatrust-verify-go/pkg/chain"
	"github.com/omatrust-project/omatrust-verify-go/pkg/did"
)

// derivationDomain separates this derivation from any other keccak use of
// the same inputs. The exact bytes are part of the wire contract: a verifier
// recomputing the amount must hash the identical preimage.
const derivationDomain = "OMATrust:Amount:v1:"

// ErrDegenerateRange rejects chains whose decimal configuration collapses
// the offset range to zero. With Range == 0 every wallet would map to the
// same amount and the transfer would prove nothing, so failing fast beats
// degrading silently.
var ErrDegenerateRange = errors.New("chain constants yield a zero offset range")

// Calculator derives proof-of-control transfer amounts against a chain
// table.
type Calculator struct {
	chains chain.Table
}

// NewCalculator returns a Calculator over the given chain table.
// A nil table selects the built-in defaults.
func NewCalculator(chains chain.Table) *Calculator {
	if chains == nil {
		chains = chain.DefaultTable()
	}
	return &Calculator{chains: chains}
}

// Calculate derives the exact native-token amount (in the smallest unit)
// that a controlling wallet must transfer to mintingWallet to prove control
// of the private key behind didStr, without revealing that key.
//
// The derivation is deterministic: identical (did, mintingWallet, chainID)
// always yields the identical amount, which is what lets an independent
// verifier recompute the value and check it against an observed transfer.
// The result always satisfies base <= amount < base+range for the chain's
// constants.
func (c *Calculator) Calculate(didStr, mintingWallet string, chainID uint64) (*big.Int, error) {
	canonicalDID := strings.ToLower(strings.TrimSpace(didStr))
	if canonicalDID == "" {
		return nil, &did.ValidationError{Input: didStr, Reason: "empty DID"}
	}
	if !common.IsHexAddress(mintingWallet) {
		return nil, &did.ValidationError{Input: mintingWallet, Reason: "minting wallet is not an EVM address"}
	}

	cons := c.chains.ConstantsFor(chainID)
	if cons.Range.Sign() == 0 {
		return nil, ErrDegenerateRange
	}

	didHash := crypto.Keccak256([]byte(canonicalDID))
	wallet := common.HexToAddress(strings.ToLower(mintingWallet))

	// keccak256(domain || didHash[32] || wallet[20]), read as an unsigned
	// 256-bit integer.
	seed := crypto.Keccak256([]byte(derivationDomain), didHash, wallet.Bytes())

	offset := new(big.Int).Mod(new(big.Int).SetBytes(seed), cons.Range)
	return offset.Add(offset, cons.Base), nil
}

// Formatted is a display-ready rendering of a transfer amount.
type Formatted struct {
	Formatted string `json:"formatted"` // decimal token units, e.g. "0.000105"
	Symbol    string `json:"symbol"`
	Wei       string `json:"wei"` // raw smallest-unit integer as decimal string
}

// Format renders amt using chainID's decimal configuration.
func (c *Calculator) Format(amt *big.Int, chainID uint64) Formatted {
	cfg := c.chains.Lookup(chainID)

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(cfg.Decimals)), nil)
	whole, frac := new(big.Int).QuoRem(amt, unit, new(big.Int))

	formatted := whole.String()
	if frac.Sign() != 0 {
		digits := frac.String()
		for len(digits) < cfg.Decimals {
			digits = "0" + digits
		}
		formatted += "." + strings.TrimRight(digits, "0")
	}

	return Formatted{
		Formatted: formatted,
		Symbol:    cfg.Symbol,
		Wei:       amt.String(),
	}
}

// RecipientAddress resolves where the proof transfer must be sent. EVM
// chains use the minting wallet itself; non-EVM chains have no sink-wallet
// mapping yet and fail explicitly rather than falling back to a guess.
func (c *Calculator) RecipientAddress(chainID uint64, mintingWallet string, isEVM bool) (string, error) {
	if !isEVM {
		return "", &chain.UnsupportedChainError{ChainID: chainID, Reason: "no recipient mapping for non-EVM chains"}
	}
	return mintingWallet, nil
}

var defaultCalculator = NewCalculator(nil)

// Calculate derives the proof amount using the built-in chain table.
func Calculate(didStr, mintingWallet string, chainID uint64) (*big.Int, error) {
	return defaultCalculator.Calculate(didStr, mintingWallet, chainID)
}

// Format renders amt using the built-in chain table.
func Format(amt *big.Int, chainID uint64) Formatted {
	return defaultCalculator.Format(amt, chainID)
}

// RecipientAddress resolves the transfer recipient using the built-in table.
func RecipientAddress(chainID uint64, mintingWallet string, isEVM bool) (string, error) {
	return defaultCalculator.RecipientAddress(chainID, mintingWallet, isEVM)
}
