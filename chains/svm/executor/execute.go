// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/slowfill-relayer/chains/svm"
	"github.com/ChainSafe/slowfill-relayer/chains/svm/events"
	"github.com/ChainSafe/slowfill-relayer/chains/svm/merkle"
	"github.com/ChainSafe/slowfill-relayer/chains/svm/pda"
	"github.com/ChainSafe/slowfill-relayer/metrics"
	"github.com/ChainSafe/slowfill-relayer/store"
)

type RootBundleFetcher interface {
	RootBundle(stateAddress common.Hash, rootBundleId uint32) (*svm.RootBundle, error)
}

// TokenTransferer is the custody transfer primitive. A transfer is atomic
// and moves funds only when the authority controls the source account.
type TokenTransferer interface {
	MintDecimals(mint common.Hash) (uint8, error)
	TransferChecked(amount uint64, mint common.Hash, from common.Hash, to common.Hash, authority []byte, decimals uint8) error
}

// SlowFillExecution is an invocation executing a slow fill leaf committed
// into a published slow relay root.
type SlowFillExecution struct {
	RelayHash    common.Hash
	Leaf         svm.SlowFillLeaf
	RootBundleId uint32
	Proof        []common.Hash
	Recipient    common.Hash
	Mint         common.Hash
	Caller       common.Hash
}

type SlowFillExecutionHandler struct {
	stateSeed  uint64
	states     StateFetcher
	fills      FillStatusStore
	locks      *FillLock
	bundles    RootBundleFetcher
	transferer TokenTransferer
	sink       events.Sink
	metrics    *metrics.FillMetrics
}

func NewSlowFillExecutionHandler(
	stateSeed uint64,
	states StateFetcher,
	fills FillStatusStore,
	locks *FillLock,
	bundles RootBundleFetcher,
	transferer TokenTransferer,
	sink events.Sink,
	metrics *metrics.FillMetrics,
) *SlowFillExecutionHandler {
	return &SlowFillExecutionHandler{
		stateSeed:  stateSeed,
		states:     states,
		fills:      fills,
		locks:      locks,
		bundles:    bundles,
		transferer: transferer,
		sink:       sink,
		metrics:    metrics,
	}
}

// HandleExecute verifies a slow fill leaf against a published root and, on
// success, releases funds from the vault to the recipient and transitions
// the fill record to its terminal state. The caller-supplied destination
// chain id is discarded before hashing so a leaf can never be replayed
// across chains.
func (h *SlowFillExecutionHandler) HandleExecute(ctx context.Context, e SlowFillExecution) error {
	start := time.Now()
	unlock := h.locks.Lock(e.RelayHash)
	defer unlock()

	state, err := h.states.State(h.stateSeed)
	if err != nil {
		return err
	}

	record, err := h.fills.FillStatus(e.RelayHash, e.Leaf.RelayData, *state)
	if err != nil {
		return err
	}

	if e.Recipient != e.Leaf.RelayData.Recipient {
		h.metrics.TrackFailure(ctx, "execute")
		return svm.ErrInvalidFillRecipient
	}
	if e.Mint != e.Leaf.RelayData.OutputToken {
		h.metrics.TrackFailure(ctx, "execute")
		return svm.ErrInvalidMint
	}

	leaf := svm.SlowFillLeaf{
		RelayData:           e.Leaf.RelayData,
		DestinationChainId:  state.ChainId,
		UpdatedOutputAmount: e.Leaf.UpdatedOutputAmount,
	}

	stateAddress, stateProof := pda.StateAddress(state.Seed)
	bundle, err := h.bundles.RootBundle(stateAddress, e.RootBundleId)
	if err != nil {
		return err
	}
	err = merkle.VerifyProof(bundle.SlowRelayRoot, leaf.Hash(), e.Proof)
	if err != nil {
		h.metrics.TrackFailure(ctx, "execute")
		return err
	}

	if record.Status != store.RequestedSlowFillFill {
		h.metrics.TrackFailure(ctx, "execute")
		return svm.ErrInvalidSlowFillRequest
	}

	decimals, err := h.transferer.MintDecimals(e.Mint)
	if err != nil {
		h.metrics.TrackFailure(ctx, "execute")
		return err
	}

	// The record turns terminal before any funds move. A crash between the
	// two steps leaves an unpaid filled record, never a double payout.
	// Relayer stays set to the original requester.
	record.Status = store.FilledFill
	err = h.fills.StoreFillStatus(e.RelayHash, record)
	if err != nil {
		h.metrics.TrackFailure(ctx, "execute")
		return err
	}

	vaultAccount, _ := pda.AssociatedTokenAddress(stateAddress, e.Mint)
	recipientAccount, _ := pda.AssociatedTokenAddress(e.Recipient, e.Mint)
	err = h.transferer.TransferChecked(
		leaf.UpdatedOutputAmount,
		e.Mint,
		vaultAccount,
		recipientAccount,
		stateProof,
		decimals,
	)
	if err != nil {
		record.Status = store.RequestedSlowFillFill
		rbErr := h.fills.StoreFillStatus(e.RelayHash, record)
		if rbErr != nil {
			log.Err(rbErr).Str("relayHash", e.RelayHash.Hex()).Msg("Failed reverting fill record after transfer failure")
		}
		h.metrics.TrackFailure(ctx, "execute")
		return err
	}

	// Funds are released. A sink outage must not surface as an execution
	// failure or callers would resubmit an already executed leaf.
	err = h.sink.Emit(ctx, events.FilledV3Relay{
		InputToken:          e.Leaf.RelayData.InputToken,
		OutputToken:         e.Leaf.RelayData.OutputToken,
		InputAmount:         e.Leaf.RelayData.InputAmount,
		OutputAmount:        e.Leaf.RelayData.OutputAmount,
		RepaymentChainId:    0,
		OriginChainId:       e.Leaf.RelayData.OriginChainId,
		DepositId:           e.Leaf.RelayData.DepositId,
		FillDeadline:        e.Leaf.RelayData.FillDeadline,
		ExclusivityDeadline: e.Leaf.RelayData.ExclusivityDeadline,
		ExclusiveRelayer:    e.Leaf.RelayData.ExclusiveRelayer,
		Relayer:             e.Caller,
		Depositor:           e.Leaf.RelayData.Depositor,
		Recipient:           e.Leaf.RelayData.Recipient,
		Message:             e.Leaf.RelayData.Message,
		RelayExecutionInfo: events.RelayExecutionInfo{
			UpdatedRecipient:    e.Leaf.RelayData.Recipient,
			UpdatedMessage:      e.Leaf.RelayData.Message,
			UpdatedOutputAmount: leaf.UpdatedOutputAmount,
			FillType:            events.SlowFill,
		},
	})
	if err != nil {
		log.Err(err).Str("relayHash", e.RelayHash.Hex()).Msg("Failed emitting fill event")
	}

	h.metrics.TrackExecution(ctx, time.Since(start))
	log.Info().
		Str("relayHash", e.RelayHash.Hex()).
		Uint64("depositId", e.Leaf.RelayData.DepositId).
		Uint64("amount", leaf.UpdatedOutputAmount).
		Msgf("Executed slow relay leaf for deposit %d", e.Leaf.RelayData.DepositId)
	return nil
}
