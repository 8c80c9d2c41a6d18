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

// Package evidence parses controller attestations and locates them in the
// two external channels a subject can publish to: a _omatrust DNS TXT
// record and a .well-known/did.json document.
//
// The wire format other systems must produce to be recognized is
//
//	v=1;controller=<did>[;controller=<did>...]
//
// with semicolon or whitespace delimiters. The literal v=1 token is
// mandatory; controller values without a did: prefix are ignored.
//
// Lookup failures in either channel are recovered into MatchResult
// diagnostics instead of errors, so a caller consulting both channels is
// never aborted by one being transiently unreachable.
package evidence
