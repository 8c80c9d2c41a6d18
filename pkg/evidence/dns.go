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
	"fmt"

	"github.com/omatrust-project/omatrust-verify-go/pkg/address"
	"github.com/omatrust-project/omatrust-verify-go/pkg/did"
)

// FindInDNSTXT queries the _omatrust TXT records of domain and reports
// whether any published controller entry matches expectedController.
//
// Evidence lookup is best-effort across two independent channels, so every
// failure mode (NXDOMAIN, timeout, SERVFAIL, empty record sets, records
// without controller entries, plain mismatches) is recovered into a
// MatchResult with a diagnostic rather than returned as an error. The first
// matching controller entry, in record order, wins.
func (l *Locator) FindInDNSTXT(ctx context.Context, domain, expectedController string) MatchResult {
	name := TXTRecordPrefix + "." + did.NormalizeDomain(domain)

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	records, err := l.resolver.LookupTXT(ctx, name)
	if err != nil {
		return MatchResult{Details: fmt.Sprintf("DNS lookup failed: %v", err)}
	}
	if len(records) == 0 {
		return MatchResult{Details: fmt.Sprintf("No TXT records found at %s", name)}
	}

	var controllers []string
	for _, record := range records {
		if rec := Parse(record); rec != nil {
			controllers = append(controllers, rec.Controllers...)
		}
	}
	if len(controllers) == 0 {
		return MatchResult{Details: fmt.Sprintf("TXT records at %s contain no controller entries", name)}
	}

	for _, controller := range controllers {
		if address.Match(controller, expectedController) {
			return MatchResult{Found: true, MatchedController: controller}
		}
	}
	return MatchResult{Details: fmt.Sprintf("controller entries at %s do not match expected controller", name)}
}
