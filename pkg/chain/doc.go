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

// Package chain holds the static per-chain configuration the verification
// core derives amounts and explorer links from: native-token decimals,
// symbol, block time, and explorer base URL.
//
// Unknown chain IDs resolve to a generic 18-decimal EVM fallback rather
// than failing, so the derivation degrades gracefully on chains added
// on-chain before they are added here.
package chain
