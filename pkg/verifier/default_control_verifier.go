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
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/omatrust-project/omatrust-verify-go/pkg/address"
	"github.com/omatrust-project/omatrust-verify-go/pkg/amount"
	"github.com/omatrust-project/omatrust-verify-go/pkg/did"
	"github.com/omatrust-project/omatrust-verify-go/pkg/evidence"
)

// DefaultControlVerifier runs both evidence locators concurrently and
// derives transfer proofs. It holds no mutable state and is safe for
// concurrent use.
type DefaultControlVerifier struct {
	locator EvidenceLocator
	calc    *amount.Calculator
}

// NewDefaultControlVerifier creates a verifier. Pass nil for either
// collaborator to use defaults (a Locator over net.DefaultResolver and a
// Calculator over the built-in chain table).
func NewDefaultControlVerifier(locator EvidenceLocator, calc *amount.Calculator) *DefaultControlVerifier {
	if locator == nil {
		locator = evidence.NewLocator(nil, nil)
	}
	if calc == nil {
		calc = amount.NewCalculator(nil)
	}
	return &DefaultControlVerifier{locator: locator, calc: calc}
}

// VerifyControl consults the DNS TXT channel and the hosted DID document
// concurrently. Either channel asserting expectedController is sufficient.
// When neither matches, Details carries both channels' diagnostics (DNS
// first) so the caller can tell a mismatch from an unreachable source.
func (v *DefaultControlVerifier) VerifyControl(ctx context.Context, domain, expectedController string) (ControlResult, error) {
	if strings.TrimSpace(domain) == "" {
		return ControlResult{}, &did.ValidationError{Input: domain, Reason: "empty domain"}
	}
	if _, ok := address.Extract(expectedController); !ok {
		return ControlResult{}, &did.ValidationError{Input: expectedController, Reason: "expected controller carries no extractable address"}
	}

	var dnsResult, docResult evidence.MatchResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dnsResult = v.locator.FindInDNSTXT(gctx, domain, expectedController)
		return nil
	})
	g.Go(func() error {
		docResult = v.locator.FindInDIDDocument(gctx, domain, expectedController)
		return nil
	})
	// Locators recover their own failures, so Wait cannot fail here.
	_ = g.Wait()

	if dnsResult.Found {
		return ControlResult{Found: true, Source: SourceDNS, MatchedController: dnsResult.MatchedController}, nil
	}
	if docResult.Found {
		return ControlResult{Found: true, Source: SourceDIDDocument, MatchedController: docResult.MatchedController}, nil
	}
	return ControlResult{Details: []string{dnsResult.Details, docResult.Details}}, nil
}

// ExpectedTransfer derives the proof amount, its display form, and the
// transfer recipient in one step.
func (v *DefaultControlVerifier) ExpectedTransfer(didStr, mintingWallet string, chainID uint64) (TransferProof, error) {
	amt, err := v.calc.Calculate(didStr, mintingWallet, chainID)
	if err != nil {
		return TransferProof{}, err
	}
	recipient, err := v.calc.RecipientAddress(chainID, mintingWallet, true)
	if err != nil {
		return TransferProof{}, err
	}
	return TransferProof{
		Amount:    amt,
		Formatted: v.calc.Format(amt, chainID),
		Recipient: recipient,
	}, nil
}
