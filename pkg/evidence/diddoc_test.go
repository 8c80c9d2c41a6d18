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
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripperFunc lets a test serve canned HTTP responses in-memory.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func docClient(t *testing.T, status int, body string) *http.Client {
	t.Helper()
	return &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		assert.Equal(t, "https", req.URL.Scheme)
		assert.Equal(t, "/.well-known/did.json", req.URL.Path)
		return &http.Response{
			StatusCode: status,
			Status:     http.StatusText(status),
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	})}
}

func TestFindInDIDDocument_MatchViaBlockchainAccountID(t *testing.T) {
	body := `{
		"id": "did:web:example.com",
		"verificationMethod": [
			{"id": "did:web:example.com#key-1",
			 "type": "EcdsaSecp256k1RecoveryMethod2020",
			 "blockchainAccountId": "eip155:1:0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"}
		]
	}`
	locator := NewLocator(&fakeResolver{}, docClient(t, http.StatusOK, body))

	result := locator.FindInDIDDocument(context.Background(), "example.com", expectedDID)

	require.True(t, result.Found)
	assert.Equal(t, "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B", result.MatchedController)
}

func TestFindInDIDDocument_MatchViaPublicKeyHex(t *testing.T) {
	body := `{
		"verificationMethod": [
			{"id": "#key-1", "publicKeyHex": "ab5801a7d398351b8be11c439e05c5b3259aec9b"}
		]
	}`
	locator := NewLocator(&fakeResolver{}, docClient(t, http.StatusOK, body))

	result := locator.FindInDIDDocument(context.Background(), "example.com", expectedDID)

	assert.True(t, result.Found)
}

func TestFindInDIDDocument_NotFoundStatus(t *testing.T) {
	locator := NewLocator(&fakeResolver{}, &http.Client{Transport: roundTripperFunc(
		func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusNotFound,
				Status:     "404 Not Found",
				Body:       io.NopCloser(strings.NewReader("")),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		})})

	result := locator.FindInDIDDocument(context.Background(), "example.com", expectedDID)

	assert.False(t, result.Found)
	assert.Contains(t, result.Details, "DID document fetch failed")
	assert.Contains(t, result.Details, "404")
}

func TestFindInDIDDocument_TransportFailureRecovered(t *testing.T) {
	locator := NewLocator(&fakeResolver{}, &http.Client{Transport: roundTripperFunc(
		func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})})

	result := locator.FindInDIDDocument(context.Background(), "example.com", expectedDID)

	assert.False(t, result.Found)
	assert.Contains(t, result.Details, "Failed to fetch DID document")
}

func TestFindInDIDDocument_MalformedJSON(t *testing.T) {
	locator := NewLocator(&fakeResolver{}, docClient(t, http.StatusOK, "{not json"))

	result := locator.FindInDIDDocument(context.Background(), "example.com", expectedDID)

	assert.False(t, result.Found)
	assert.Contains(t, result.Details, "Failed to parse DID document")
}

func TestFindInDIDDocument_NoVerificationMethods(t *testing.T) {
	locator := NewLocator(&fakeResolver{}, docClient(t, http.StatusOK, `{"id":"did:web:example.com"}`))

	result := locator.FindInDIDDocument(context.Background(), "example.com", expectedDID)

	assert.False(t, result.Found)
	assert.Contains(t, result.Details, "no verificationMethod entries")
}

func TestFindInDIDDocument_Mismatch(t *testing.T) {
	body := `{
		"verificationMethod": [
			{"id": "#key-1", "blockchainAccountId": "eip155:1:0x1111111111111111111111111111111111111111"},
			{"id": "#key-2", "type": "Ed25519VerificationKey2020"}
		]
	}`
	locator := NewLocator(&fakeResolver{}, docClient(t, http.StatusOK, body))

	result := locator.FindInDIDDocument(context.Background(), "example.com", expectedDID)

	assert.False(t, result.Found)
	assert.Contains(t, result.Details, "do not match")
}

func TestFindInDIDDocument_NormalizesDomainInURL(t *testing.T) {
	var gotHost string
	client := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		gotHost = req.URL.Host
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Body:       io.NopCloser(strings.NewReader(`{"verificationMethod":[]}`)),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	})}
	locator := NewLocator(&fakeResolver{}, client)

	locator.FindInDIDDocument(context.Background(), "Example.COM.", expectedDID)

	assert.Equal(t, "example.com", gotHost)
}
