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
	"strings"
	"unicode"
)

const (
	// versionToken must appear as a standalone token for a string to be
	// recognized as evidence at all.
	versionToken = "v=1"

	controllerKey = "controller="
)

// Record is the parsed form of an evidence string. Controllers preserve
// their order of appearance in the input.
type Record struct {
	Version     string
	Controllers []string
}

// MatchResult reports the outcome of checking an evidence source against an
// expected controller. Details carries a human-readable diagnostic when
// Found is false; it is never an error to act on programmatically.
type MatchResult struct {
	Found             bool   `json:"found"`
	MatchedController string `json:"matchedController,omitempty"`
	Details           string `json:"details,omitempty"`
}

// Parse tokenizes an evidence string of the form
//
//	v=1;controller=<did>[;controller=<did>...]
//
// where tokens may be separated by semicolons, whitespace, or both. It
// returns nil unless a standalone v=1 token is present (v=0 or a missing
// version is not evidence). controller= values that do not look like DIDs,
// such as bare CAIP-10 accounts or raw addresses, are parsed but silently
// dropped from the controller list.
func Parse(s string) *Record {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || unicode.IsSpace(r)
	})

	versioned := false
	for _, tok := range tokens {
		if tok == versionToken {
			versioned = true
			break
		}
	}
	if !versioned {
		return nil
	}

	rec := &Record{Version: "1"}
	for _, tok := range tokens {
		if !strings.HasPrefix(tok, controllerKey) {
			continue
		}
		value := tok[len(controllerKey):]
		if strings.HasPrefix(value, "did:") {
			rec.Controllers = append(rec.Controllers, value)
		}
	}
	return rec
}
