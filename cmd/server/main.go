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

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/omatrust-project/omatrust-verify-go/internal/httpapi"
	"github.com/omatrust-project/omatrust-verify-go/internal/platform/config"
	"github.com/omatrust-project/omatrust-verify-go/internal/platform/httpserver"
	"github.com/omatrust-project/omatrust-verify-go/internal/platform/logger"
	"github.com/omatrust-project/omatrust-verify-go/internal/platform/metrics"
	"github.com/omatrust-project/omatrust-verify-go/pkg/amount"
	"github.com/omatrust-project/omatrust-verify-go/pkg/evidence"
	"github.com/omatrust-project/omatrust-verify-go/pkg/verifier"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Verification logic lives in the pkg packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	chains, err := config.LoadChains(cfg.ChainsFile)
	if err != nil {
		log.Fatalf("chain config: %v", err)
	}

	locator := evidence.NewLocator(nil, nil)
	locator.SetTimeout(cfg.LookupTimeout)

	controlVerifier := verifier.NewDefaultControlVerifier(locator, amount.NewCalculator(chains))

	handler := httpapi.NewHandler(controlVerifier, metrics.New(), log)
	srv := httpserver.New(cfg.Addr, httpapi.NewRouter(handler))

	log.Printf("starting omatrust-verify on %s", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}
