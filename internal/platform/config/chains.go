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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/omatrust-project/omatrust-verify-go/pkg/chain"
)

// chainsFile mirrors the chains.yaml layout:
//
//	chains:
//	  137:
//	    decimals: 18
//	    symbol: POL
//	    blockTime: 2
//	    explorer: https://polygonscan.com
type chainsFile struct {
	Chains map[uint64]chain.Config `yaml:"chains"`
}

// LoadChains returns the built-in chain table with entries from path merged
// over it. An empty path or a missing file is not an error; the defaults
// apply unchanged.
func LoadChains(path string) (chain.Table, error) {
	table := chain.DefaultTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, fmt.Errorf("read chains file: %w", err)
	}

	var file chainsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse chains file %s: %w", path, err)
	}
	for id, cfg := range file.Chains {
		table[id] = cfg
	}
	return table, nil
}
