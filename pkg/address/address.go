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

package address

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const pkhPrefix = "did:pkh:"

// CAIP10 is a parsed chain-agnostic account identifier,
// <namespace>:<reference>:<address>. Only the eip155 namespace is accepted.
type CAIP10 struct {
	ChainID uint64
	Address string
}

// ParseCAIP10 splits s into exactly three colon-delimited segments and
// requires the namespace to be eip155 with an integral chain reference.
// The address segment is carried verbatim; callers that need a canonical
// EVM address should pass the result through Extract.
func ParseCAIP10(s string) (CAIP10, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return CAIP10{}, false
	}
	if parts[0] != "eip155" {
		return CAIP10{}, false
	}
	chainID, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return CAIP10{}, false
	}
	return CAIP10{ChainID: chainID, Address: parts[2]}, true
}

// ChainIDFromDID extracts the chain reference from a did:pkh DID.
// Any other DID method yields false.
func ChainIDFromDID(s string) (uint64, bool) {
	if !strings.HasPrefix(s, pkhPrefix) {
		return 0, false
	}
	caip, ok := ParseCAIP10(strings.TrimPrefix(s, pkhPrefix))
	if !ok {
		return 0, false
	}
	return caip.ChainID, true
}

// Extract derives the canonical lowercase 0x-prefixed address from either a
// did:pkh:eip155:<chainId>:<addr> DID or a bare 0x-prefixed 40-hex-digit
// string. Identifiers that carry no recoverable EVM address, such as
// did:key DIDs, yield false.
func Extract(identifier string) (string, bool) {
	s := strings.TrimSpace(identifier)

	if strings.HasPrefix(s, pkhPrefix) {
		caip, ok := ParseCAIP10(strings.TrimPrefix(s, pkhPrefix))
		if !ok || !strings.HasPrefix(caip.Address, "0x") || !common.IsHexAddress(caip.Address) {
			return "", false
		}
		return strings.ToLower(caip.Address), true
	}

	if strings.HasPrefix(s, "0x") && common.IsHexAddress(s) {
		return strings.ToLower(s), true
	}
	return "", false
}

// Match reports whether a and b resolve to the same EVM address. Each side
// may be a did:pkh DID or a raw address; both are canonicalized through
// Extract before comparison.
//
// Chain IDs are intentionally ignored: the same externally-owned account is
// valid across EVM chains, and proof-of-control is about key possession, not
// about which chain a DID happens to declare. Two did:pkh DIDs with the same
// address and different chain IDs therefore match.
func Match(a, b string) bool {
	addrA, okA := Extract(a)
	addrB, okB := Extract(b)
	return okA && okB && addrA == addrB
}
