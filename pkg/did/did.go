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

package did

import (
	"fmt"
	"strings"
)

const (
	scheme    = "did"
	webPrefix = "did:web:"
)

// ValidationError rejects malformed caller input. It is always synchronous
// and never retried.
type ValidationError struct {
	Input  string
	Reason string
}

// Error implements the standard error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// NormalizeWeb turns a bare domain or an already-prefixed did:web string into
// a canonical did:web DID. The whole result is lowercased, so did:WEB:Example.COM
// and example.com normalize to the same value.
//
// Normalization is idempotent: feeding the output back in returns it unchanged.
func NormalizeWeb(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", &ValidationError{Input: input, Reason: "empty DID or domain"}
	}

	lowered := strings.ToLower(trimmed)
	if strings.HasPrefix(lowered, webPrefix) {
		if lowered == webPrefix {
			return "", &ValidationError{Input: input, Reason: "missing did:web identifier"}
		}
		return lowered, nil
	}
	return webPrefix + lowered, nil
}

// IsValid reports whether s has the shape did:<method>:<identifier> with a
// non-empty method and identifier. The scheme match is case-insensitive;
// the method and identifier are not otherwise constrained here.
func IsValid(s string) bool {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return false
	}
	return strings.EqualFold(parts[0], scheme) && parts[1] != "" && parts[2] != ""
}

// ExtractMethod returns the method segment of a DID verbatim, preserving its
// case. The second return is false when s is not a well-formed DID.
func ExtractMethod(s string) (string, bool) {
	if !IsValid(s) {
		return "", false
	}
	parts := strings.SplitN(s, ":", 3)
	return parts[1], true
}

// ExtractIdentifier returns everything after the method segment. The
// identifier may itself contain colons (did:pkh:eip155:1:0xabc... yields
// "eip155:1:0xabc...").
func ExtractIdentifier(s string) (string, bool) {
	if !IsValid(s) {
		return "", false
	}
	parts := strings.SplitN(s, ":", 3)
	return parts[2], true
}

// NormalizeDomain lowercases a host name and strips exactly one trailing dot.
//
// The single-pass strip is deliberate: "example.com." becomes "example.com"
// but "example.com.." becomes "example.com.". Downstream record lookups and
// hashing depend on this exact behavior, so it must not be "fixed" into a
// full TrimRight.
func NormalizeDomain(input string) string {
	lowered := strings.ToLower(strings.TrimSpace(input))
	return strings.TrimSuffix(lowered, ".")
}
