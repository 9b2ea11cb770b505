package jobs

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/slowfill-relayer/chains/svm/executor"
)

// StartStateSnapshotJob periodically logs the state singleton so operators
// can spot an unexpected pause or time override.
func StartStateSnapshotJob(states executor.StateFetcher, stateSeed uint64) {
	for {
		time.Sleep(5 * time.Minute)
		state, err := states.State(stateSeed)
		if err != nil {
			log.Err(err).Msg("state snapshot failed")
			continue
		}
		log.Info().
			Uint64("chainId", state.ChainId).
			Bool("pausedFills", state.PausedFills).
			Uint32("currentTime", state.CurrentTime).
			Msg("State snapshot")
	}
}
