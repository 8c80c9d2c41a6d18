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

package verifier

import (
	"context"
	"math/big"

	"github.com/omatrust-project/omatrust-verify-go/pkg/amount"
	"github.com/omatrust-project/omatrust-verify-go/pkg/evidence"
)

// Evidence source names reported in ControlResult.
const (
	SourceDNS         = "dns"
	SourceDIDDocument = "did-document"
)

// ControlResult aggregates the dual-channel evidence check. Found is true
// when either channel produced a match; control verification is a logical
// OR across independent sources.
type ControlResult struct {
	Found             bool     `json:"found"`
	Source            string   `json:"source,omitempty"`
	MatchedController string   `json:"matchedController,omitempty"`
	Details           []string `json:"details,omitempty"`
}

// TransferProof describes the exact on-chain transfer that proves control
// of a DID's wallet.
type TransferProof struct {
	Amount    *big.Int         `json:"-"`
	Formatted amount.Formatted `json:"amount"`
	Recipient string           `json:"recipient"`
}

// ControlVerifier verifies ownership/control of a DID's subject through
// published evidence or a deterministic proof-of-control transfer.
type ControlVerifier interface {
	// VerifyControl checks both evidence channels for domain and reports
	// whether either asserts expectedController. The error return covers
	// malformed caller input only; lookup failures appear as diagnostics.
	VerifyControl(ctx context.Context, domain, expectedController string) (ControlResult, error)

	// ExpectedTransfer computes the transfer a controlling wallet must
	// make to prove control of didStr on chainID.
	ExpectedTransfer(didStr, mintingWallet string, chainID uint64) (TransferProof, error)
}

// EvidenceLocator is the evidence-channel collaborator.
// *evidence.Locator satisfies it.
type EvidenceLocator interface {
	FindInDNSTXT(ctx context.Context, domain, expectedController string) evidence.MatchResult
	FindInDIDDocument(ctx context.Context, domain, expectedController string) evidence.MatchResult
}
