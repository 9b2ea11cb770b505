// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// FillLock serializes invocations touching the same fill record. The store
// offers no transactional read-modify-write, so handlers hold the relay hash
// lock from the first record read until the last write.
type FillLock struct {
	mu    sync.Mutex
	locks map[common.Hash]*fillLockEntry
}

type fillLockEntry struct {
	mu   sync.Mutex
	refs int
}

func NewFillLock() *FillLock {
	return &FillLock{
		locks: make(map[common.Hash]*fillLockEntry),
	}
}

// Lock acquires the lock for a relay hash and returns the release func.
func (l *FillLock) Lock(relayHash common.Hash) func() {
	l.mu.Lock()
	entry, ok := l.locks[relayHash]
	if !ok {
		entry = &fillLockEntry{}
		l.locks[relayHash] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, relayHash)
		}
		l.mu.Unlock()
	}
}
