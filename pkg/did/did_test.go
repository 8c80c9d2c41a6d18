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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWeb_BareDomain(t *testing.T) {
	got, err := NormalizeWeb("Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "did:web:example.com", got)
}

func TestNormalizeWeb_AlreadyPrefixed(t *testing.T) {
	got, err := NormalizeWeb("  DID:WEB:Example.com  ")
	require.NoError(t, err)
	assert.Equal(t, "did:web:example.com", got)
}

func TestNormalizeWeb_Idempotent(t *testing.T) {
	once, err := NormalizeWeb("Sub.Example.com")
	require.NoError(t, err)

	twice, err := NormalizeWeb(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeWeb_Empty(t *testing.T) {
	_, err := NormalizeWeb("   ")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestNormalizeWeb_MissingIdentifier(t *testing.T) {
	_, err := NormalizeWeb("did:web:")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"did:web", "did:web:example.com", true},
		{"did:pkh", "did:pkh:eip155:1:0xabc0000000000000000000000000000000000abc", true},
		{"did:key", "did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK", true},
		{"did:artifact", "did:artifact:abc123", true},
		{"uppercase scheme", "DID:web:example.com", true},
		{"identifier with colons", "did:pkh:eip155:1:0xabc", true},
		{"empty", "", false},
		{"no scheme", "web:example.com", false},
		{"empty method", "did::example.com", false},
		{"empty identifier", "did:web:", false},
		{"method only", "did:web", false},
		{"not a did", "example.com", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValid(tc.input))
		})
	}
}

func TestExtractMethod_PreservesCase(t *testing.T) {
	method, ok := ExtractMethod("did:WEB:example.com")
	require.True(t, ok)
	assert.Equal(t, "WEB", method)
}

func TestExtractMethod_Malformed(t *testing.T) {
	_, ok := ExtractMethod("did:web")
	assert.False(t, ok)
}

func TestExtractIdentifier(t *testing.T) {
	id, ok := ExtractIdentifier("did:pkh:eip155:1:0xabc")
	require.True(t, ok)
	assert.Equal(t, "eip155:1:0xabc", id)
}

func TestExtractIdentifier_Malformed(t *testing.T) {
	_, ok := ExtractIdentifier("did::example.com")
	assert.False(t, ok)
}

// Validity implies both extractions succeed.
func TestValidImpliesExtractable(t *testing.T) {
	inputs := []string{
		"did:web:example.com",
		"did:pkh:eip155:8453:0x1111111111111111111111111111111111111111",
		"did:artifact:deadbeef",
	}
	for _, in := range inputs {
		require.True(t, IsValid(in), in)

		_, ok := ExtractMethod(in)
		assert.True(t, ok, in)

		_, ok = ExtractIdentifier(in)
		assert.True(t, ok, in)
	}
}

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Example.COM", "example.com"},
		{"strips one trailing dot", "example.com.", "example.com"},
		// Single-pass stripping is intentional; see NormalizeDomain.
		{"strips only one of two dots", "example.com..", "example.com."},
		{"ip passthrough", "192.168.1.1", "192.168.1.1"},
		{"port passthrough", "example.com:8443", "example.com:8443"},
		{"hyphenated host", "my-host.example.com", "my-host.example.com"},
		{"trims whitespace", "  example.com ", "example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeDomain(tc.input))
		})
	}
}
