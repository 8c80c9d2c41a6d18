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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the verification service.
type Metrics struct {
	EvidenceChecks *prometheus.CounterVec
	AmountRequests prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EvidenceChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "omatrust_verify_evidence_checks_total",
			Help: "Evidence verification checks by outcome (found, not_found, invalid).",
		}, []string{"outcome"}),
		AmountRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "omatrust_verify_amount_requests_total",
			Help: "Total proof-of-control amount derivations served.",
		}),
	}
}

// ObserveEvidence records one evidence check outcome.
func (m *Metrics) ObserveEvidence(outcome string) {
	m.EvidenceChecks.WithLabelValues(outcome).Inc()
}
