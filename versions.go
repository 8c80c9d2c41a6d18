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

// Package omatrustverify provides version information for omatrust-verify-go
// and the wire formats it implements.
package omatrustverify

const (
	// Version is the current version of omatrust-verify-go
	Version = "1.0.0"

	// EvidenceFormatVersion is the evidence-string format version this
	// library recognizes (the v= token value)
	EvidenceFormatVersion = "1"

	// AmountDerivationVersion is the proof-of-control amount derivation
	// scheme version (the v1 in the keccak domain prefix)
	AmountDerivationVersion = "1"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion          string
	EvidenceFormatVersion   string
	AmountDerivationVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion:          Version,
		EvidenceFormatVersion:   EvidenceFormatVersion,
		AmountDerivationVersion: AmountDerivationVersion,
	}
}
