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

// Package config builds service configuration from the environment and an
// optional chains.yaml overlay, so main stays lean.
package config

import (
	"os"
	"time"
)

// Server captures HTTP service level configuration.
type Server struct {
	Addr          string
	LookupTimeout time.Duration
	ChainsFile    string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("OMATRUST_VERIFY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("OMATRUST_LOOKUP_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	return Server{
		Addr:          addr,
		LookupTimeout: timeout,
		ChainsFile:    os.Getenv("OMATRUST_CHAINS_FILE"),
	}
}
