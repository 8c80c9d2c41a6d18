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

// Package httpapi is the thin HTTP layer over the verification core. It
// delegates to pkg/verifier without embedding business logic so transport
// concerns remain isolated.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/omatrust-project/omatrust-verify-go/internal/platform/metrics"
	"github.com/omatrust-project/omatrust-verify-go/pkg/chain"
	"github.com/omatrust-project/omatrust-verify-go/pkg/did"
	"github.com/omatrust-project/omatrust-verify-go/pkg/verifier"
)

// Handler serves the verification endpoints.
type Handler struct {
	verifier verifier.ControlVerifier
	metrics  *metrics.Metrics
	log      *log.Logger
}

// NewHandler wires the HTTP layer to a ControlVerifier.
func NewHandler(v verifier.ControlVerifier, m *metrics.Metrics, logger *log.Logger) *Handler {
	return &Handler{verifier: v, metrics: m, log: logger}
}

type evidenceRequest struct {
	Domain     string `json:"domain"`
	Controller string `json:"controller"`
}

type amountRequest struct {
	DID     string `json:"did"`
	Wallet  string `json:"wallet"`
	ChainID uint64 `json:"chainId"`
}

type amountResponse struct {
	Wei       string `json:"wei"`
	Formatted string `json:"formatted"`
	Symbol    string `json:"symbol"`
	Recipient string `json:"recipient"`
}

func (h *Handler) handleVerifyEvidence(w http.ResponseWriter, r *http.Request) {
	var req evidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, &did.ValidationError{Input: "body", Reason: "malformed JSON"})
		return
	}

	result, err := h.verifier.VerifyControl(r.Context(), req.Domain, req.Controller)
	if err != nil {
		h.metrics.ObserveEvidence("invalid")
		h.writeError(w, err)
		return
	}

	if result.Found {
		h.metrics.ObserveEvidence("found")
	} else {
		h.metrics.ObserveEvidence("not_found")
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleTransferAmount(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, &did.ValidationError{Input: "body", Reason: "malformed JSON"})
		return
	}

	proof, err := h.verifier.ExpectedTransfer(req.DID, req.Wallet, req.ChainID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.metrics.AmountRequests.Inc()
	writeJSON(w, http.StatusOK, amountResponse{
		Wei:       proof.Formatted.Wei,
		Formatted: proof.Formatted.Formatted,
		Symbol:    proof.Formatted.Symbol,
		Recipient: proof.Recipient,
	})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError centralizes domain error translation to HTTP responses,
// keeping the JSON error envelope consistent across handlers.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validation *did.ValidationError
	var unsupported *chain.UnsupportedChainError
	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.As(err, &unsupported):
		status = http.StatusNotImplemented
	}

	if status == http.StatusInternalServerError {
		h.log.Printf("internal error: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
