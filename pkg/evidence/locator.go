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
	"net"
	"net/http"
	"time"
)

// DefaultLookupTimeout bounds each external DNS or HTTP call. The locators
// never retry; a caller wanting retries wraps them itself.
const DefaultLookupTimeout = 10 * time.Second

// TXTRecordPrefix is the label queried under the target domain.
const TXTRecordPrefix = "_omatrust"

// TXTResolver abstracts the DNS collaborator. *net.Resolver satisfies it;
// tests supply a fake. LookupTXT returns one string per TXT record with any
// transport-level character-string chunks already concatenated.
type TXTResolver interface {
	LookupTXT(ctx context.Context, name string) ([]string, error)
}

// Locator checks the two external evidence channels (DNS TXT records and
// hosted DID documents) for a controller assertion matching an expected
// identifier.
//
// Both lookups are stateless and independent: no shared cache, no ordering
// requirement, safe for concurrent use from multiple goroutines.
type Locator struct {
	resolver   TXTResolver
	httpClient *http.Client
	timeout    time.Duration
}

// NewLocator creates a Locator. Pass nil for either collaborator to use the
// defaults (net.DefaultResolver, a fresh http.Client).
func NewLocator(resolver TXTResolver, httpClient *http.Client) *Locator {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Locator{
		resolver:   resolver,
		httpClient: httpClient,
		timeout:    DefaultLookupTimeout,
	}
}

// SetTimeout overrides the per-call bound on external lookups.
func (l *Locator) SetTimeout(d time.Duration) {
	if d > 0 {
		l.timeout = d
	}
}
