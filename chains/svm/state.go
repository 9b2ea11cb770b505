// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package svm

import "github.com/ethereum/go-ethereum/common"

// State is the protocol-wide configuration singleton. It is created on
// deployment and mutated only by administrative operations.
type State struct {
	Seed        uint64 `json:"seed"`
	ChainId     uint64 `json:"chainId"`
	CurrentTime uint32 `json:"currentTime"`
	PausedFills bool   `json:"pausedFills"`
}

// RootBundle holds a published slow relay root. One bundle exists per root
// bundle id and is written by the external bundle-authorization process.
type RootBundle struct {
	SlowRelayRoot common.Hash `json:"slowRelayRoot"`
}
