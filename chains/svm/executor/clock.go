// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"time"

	"github.com/ChainSafe/slowfill-relayer/chains/svm"
)

// Clock provides the wall clock to timing checks.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// currentTime resolves the protocol time of an invocation. A nonzero state
// override takes precedence over the wall clock so deadline checks stay
// deterministic under test.
func currentTime(state *svm.State, clock Clock) uint32 {
	if state.CurrentTime != 0 {
		return state.CurrentTime
	}
	return uint32(clock.Now().Unix())
}
