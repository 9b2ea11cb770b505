// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/slowfill-relayer/chains/svm"
	"github.com/ChainSafe/slowfill-relayer/chains/svm/events"
	"github.com/ChainSafe/slowfill-relayer/metrics"
	"github.com/ChainSafe/slowfill-relayer/store"
)

type StateFetcher interface {
	State(seed uint64) (*svm.State, error)
}

type FillStatusStore interface {
	FillStatus(relayHash common.Hash, relayData svm.RelayData, state svm.State) (*store.FillStatusRecord, error)
	StoreFillStatus(relayHash common.Hash, record *store.FillStatusRecord) error
}

// SlowFillRequest is an invocation declaring intent to fall back to a slow
// fill for a relay that no fast relayer picked up.
type SlowFillRequest struct {
	RelayHash common.Hash
	RelayData svm.RelayData
	Caller    common.Hash
}

type SlowFillRequestHandler struct {
	stateSeed uint64
	states    StateFetcher
	fills     FillStatusStore
	locks     *FillLock
	clock     Clock
	sink      events.Sink
	metrics   *metrics.FillMetrics
}

func NewSlowFillRequestHandler(
	stateSeed uint64,
	states StateFetcher,
	fills FillStatusStore,
	locks *FillLock,
	clock Clock,
	sink events.Sink,
	metrics *metrics.FillMetrics,
) *SlowFillRequestHandler {
	return &SlowFillRequestHandler{
		stateSeed: stateSeed,
		states:    states,
		fills:     fills,
		locks:     locks,
		clock:     clock,
		sink:      sink,
		metrics:   metrics,
	}
}

// HandleRequest validates the timing preconditions of a slow fill request and
// transitions the fill record from unfilled to requested. Validation fully
// precedes the write, so a failed request leaves no observable effect.
func (h *SlowFillRequestHandler) HandleRequest(ctx context.Context, r SlowFillRequest) error {
	unlock := h.locks.Lock(r.RelayHash)
	defer unlock()

	state, err := h.states.State(h.stateSeed)
	if err != nil {
		return err
	}
	if state.PausedFills {
		h.metrics.TrackFailure(ctx, "request")
		return svm.ErrFillsArePaused
	}

	now := currentTime(state, h.clock)
	if r.RelayData.ExclusivityDeadline >= now {
		h.metrics.TrackFailure(ctx, "request")
		return svm.ErrNoSlowFillsInExclusivityWindow
	}
	// Requests are accepted only once the fill deadline lapsed, mirroring the
	// paired chain. See the fill deadline note in DESIGN.md.
	if r.RelayData.FillDeadline >= now {
		h.metrics.TrackFailure(ctx, "request")
		return svm.ErrExpiredFillDeadline
	}

	record, err := h.fills.FillStatus(r.RelayHash, r.RelayData, *state)
	if err != nil {
		return err
	}
	if record.Status != store.UnfilledFill {
		h.metrics.TrackFailure(ctx, "request")
		return svm.ErrInvalidSlowFillRequest
	}

	record.Status = store.RequestedSlowFillFill
	record.Relayer = r.Caller
	err = h.fills.StoreFillStatus(r.RelayHash, record)
	if err != nil {
		return err
	}

	// The record is committed. A sink outage must not surface as a request
	// failure or callers would resubmit an already requested fill.
	err = h.sink.Emit(ctx, events.RequestedV3SlowFill{
		InputToken:          r.RelayData.InputToken,
		OutputToken:         r.RelayData.OutputToken,
		InputAmount:         r.RelayData.InputAmount,
		OutputAmount:        r.RelayData.OutputAmount,
		OriginChainId:       r.RelayData.OriginChainId,
		DepositId:           r.RelayData.DepositId,
		FillDeadline:        r.RelayData.FillDeadline,
		ExclusivityDeadline: r.RelayData.ExclusivityDeadline,
		ExclusiveRelayer:    r.RelayData.ExclusiveRelayer,
		Depositor:           r.RelayData.Depositor,
		Recipient:           r.RelayData.Recipient,
		Message:             r.RelayData.Message,
	})
	if err != nil {
		log.Err(err).Str("relayHash", r.RelayHash.Hex()).Msg("Failed emitting slow fill request event")
	}

	h.metrics.TrackRequest(ctx)
	log.Info().
		Str("relayHash", r.RelayHash.Hex()).
		Uint64("depositId", r.RelayData.DepositId).
		Msgf("Requested slow fill for deposit %d", r.RelayData.DepositId)
	return nil
}
