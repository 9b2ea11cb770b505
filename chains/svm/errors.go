// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package svm

import "errors"

// Protocol errors surfaced by the slow fill handlers. Each precondition
// failure maps to exactly one of these and aborts the invocation with no
// state mutation.
var (
	ErrFillsArePaused                 = errors.New("fills are paused")
	ErrInvalidRelayHash               = errors.New("relay hash does not match relay data")
	ErrNoSlowFillsInExclusivityWindow = errors.New("slow fill requested inside exclusivity window")
	ErrExpiredFillDeadline            = errors.New("fill deadline has not expired")
	ErrInvalidSlowFillRequest         = errors.New("invalid slow fill request status")
	ErrInvalidFillRecipient           = errors.New("recipient does not match relay data")
	ErrInvalidMint                    = errors.New("mint does not match relay output token")
	ErrRootBundleNotFound             = errors.New("root bundle not found")
)
