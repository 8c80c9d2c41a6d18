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

package evidence

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/omatrust-project/omatrust-verify-go/pkg/address"
	"github.com/omatrust-project/omatrust-verify-go/pkg/did"
)

// didDocumentMaxBytes caps how much of a hosted DID document is read.
const didDocumentMaxBytes = 1 << 20

// verificationMethod is the subset of a DID document verification method
// this locator can derive a comparable identifier from.
type verificationMethod struct {
	ID                  string `json:"id"`
	Type                string `json:"type"`
	BlockchainAccountID string `json:"blockchainAccountId"`
	PublicKeyHex        string `json:"publicKeyHex"`
}

type didDocument struct {
	ID                 string               `json:"id"`
	VerificationMethod []verificationMethod `json:"verificationMethod"`
}

// FindInDIDDocument fetches https://<domain>/.well-known/did.json and
// reports whether any verification method resolves to an identifier
// matching expectedController.
//
// A comparable identifier is derived from blockchainAccountId (CAIP-10,
// e.g. eip155:1:0xabc...) or, failing that, publicKeyHex treated as a raw
// address candidate. As with the DNS channel, transport errors, non-2xx
// statuses, and malformed bodies are recovered into a diagnostic
// MatchResult and never surfaced as errors.
func (l *Locator) FindInDIDDocument(ctx context.Context, domain, expectedController string) MatchResult {
	url := fmt.Sprintf("https://%s/.well-known/did.json", did.NormalizeDomain(domain))

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return MatchResult{Details: fmt.Sprintf("Failed to fetch DID document: %v", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return MatchResult{Details: fmt.Sprintf("Failed to fetch DID document: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return MatchResult{Details: fmt.Sprintf("DID document fetch failed: %s", resp.Status)}
	}

	var doc didDocument
	body := io.LimitReader(resp.Body, didDocumentMaxBytes)
	if err := json.NewDecoder(body).Decode(&doc); err != nil {
		return MatchResult{Details: fmt.Sprintf("Failed to parse DID document: %v", err)}
	}

	if len(doc.VerificationMethod) == 0 {
		return MatchResult{Details: fmt.Sprintf("DID document at %s has no verificationMethod entries", url)}
	}

	for _, vm := range doc.VerificationMethod {
		candidate, ok := vm.candidate()
		if !ok {
			continue
		}
		if address.Match(candidate, expectedController) {
			return MatchResult{Found: true, MatchedController: candidate}
		}
	}
	return MatchResult{Details: fmt.Sprintf("verificationMethod entries at %s do not match expected controller", url)}
}

// candidate derives an identifier address.Match can canonicalize.
func (vm verificationMethod) candidate() (string, bool) {
	if vm.BlockchainAccountID != "" {
		if caip, ok := address.ParseCAIP10(vm.BlockchainAccountID); ok {
			return caip.Address, true
		}
		return vm.BlockchainAccountID, true
	}
	if vm.PublicKeyHex != "" {
		hex := vm.PublicKeyHex
		if !strings.HasPrefix(hex, "0x") {
			hex = "0x" + hex
		}
		return hex, true
	}
	return "", false
}
