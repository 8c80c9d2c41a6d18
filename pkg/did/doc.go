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

// Package did parses and canonicalizes Decentralized Identifier strings.
//
// A DID has the shape did:<method>:<method-specific-identifier>. This package
// handles the methods the verification core works with (did:web, did:pkh,
// did:key, did:artifact) without resolving them: it only validates shape,
// splits segments, and produces canonical lowercase forms for comparison.
//
// Every normalization returns a fresh string; inputs are never mutated and
// normalized values are safe to use as map keys or hash inputs.
package did
