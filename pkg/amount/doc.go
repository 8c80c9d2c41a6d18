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

// Package amount derives deterministic proof-of-control transfer amounts.
//
// The scheme: hash the canonical DID with keccak256, mix it with the minting
// wallet under a fixed domain prefix, and map the 256-bit result into a
// chain-specific [base, base+range) window of smallest-unit token values.
// A wallet owner proves control by sending exactly that amount on-chain; a
// verifier recomputes the same value independently and looks for a matching
// transfer.
//
// All arithmetic uses math/big. 18-decimal amounts overflow float64 and
// int53 routinely, and the hash-to-integer step needs the full unsigned
// 256-bit value.
package amount
