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

// Package verifier ties the verification core together for callers.
//
// A caller holds a DID (or domain) and a candidate controller wallet and
// wants one of two answers:
//
//   - Evidence-based: does the subject publish an attestation naming this
//     controller, in DNS or in its DID document? VerifyControl runs both
//     channels concurrently and treats a match in either as sufficient.
//   - Transfer-based: what exact on-chain amount must this wallet send to
//     prove key control? ExpectedTransfer derives it deterministically.
//
// The ControlVerifier interface exists so transport layers can be tested
// against a stub without touching DNS or HTTP.
package verifier
