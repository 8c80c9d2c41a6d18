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

// Package address extracts canonical EVM addresses from heterogeneous
// identifiers (did:pkh DIDs, CAIP-10 accounts, raw 0x strings) and compares
// them under chain-agnostic, case-insensitive equivalence.
//
// The canonical form is a lowercase 0x-prefixed 40-hex-digit string. All
// matching goes through a single canonicalization step so that every
// identifier combination is compared the same way.
package address
