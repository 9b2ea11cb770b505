// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
)

type FillType uint8

const (
	FastFill FillType = iota
	ReplacedSlowFill
	SlowFill
)

// Record is a structured event appended for off-chain indexers.
type Record interface {
	Kind() string
}

// Sink durably appends records for external consumers.
type Sink interface {
	Emit(ctx context.Context, record Record) error
}

// RequestedV3SlowFill is emitted when a slow fill request transitions a fill
// record to the requested state. Relay data fields are carried verbatim.
type RequestedV3SlowFill struct {
	InputToken          common.Hash   `json:"inputToken"`
	OutputToken         common.Hash   `json:"outputToken"`
	InputAmount         uint64        `json:"inputAmount"`
	OutputAmount        uint64        `json:"outputAmount"`
	OriginChainId       uint64        `json:"originChainId"`
	DepositId           uint64        `json:"depositId"`
	FillDeadline        uint32        `json:"fillDeadline"`
	ExclusivityDeadline uint32        `json:"exclusivityDeadline"`
	ExclusiveRelayer    common.Hash   `json:"exclusiveRelayer"`
	Depositor           common.Hash   `json:"depositor"`
	Recipient           common.Hash   `json:"recipient"`
	Message             hexutil.Bytes `json:"message"`
}

func (RequestedV3SlowFill) Kind() string { return "RequestedV3SlowFill" }

// RelayExecutionInfo carries execution-time metadata of a fill.
type RelayExecutionInfo struct {
	UpdatedRecipient    common.Hash   `json:"updatedRecipient"`
	UpdatedMessage      hexutil.Bytes `json:"updatedMessage"`
	UpdatedOutputAmount uint64        `json:"updatedOutputAmount"`
	FillType            FillType      `json:"fillType"`
}

// FilledV3Relay is emitted when a fill record reaches its terminal state.
// Slow fills carry no relayer repayment, so RepaymentChainId is always zero.
type FilledV3Relay struct {
	InputToken          common.Hash        `json:"inputToken"`
	OutputToken         common.Hash        `json:"outputToken"`
	InputAmount         uint64             `json:"inputAmount"`
	OutputAmount        uint64             `json:"outputAmount"`
	RepaymentChainId    uint64             `json:"repaymentChainId"`
	OriginChainId       uint64             `json:"originChainId"`
	DepositId           uint64             `json:"depositId"`
	FillDeadline        uint32             `json:"fillDeadline"`
	ExclusivityDeadline uint32             `json:"exclusivityDeadline"`
	ExclusiveRelayer    common.Hash        `json:"exclusiveRelayer"`
	Relayer             common.Hash        `json:"relayer"`
	Depositor           common.Hash        `json:"depositor"`
	Recipient           common.Hash        `json:"recipient"`
	Message             hexutil.Bytes      `json:"message"`
	RelayExecutionInfo  RelayExecutionInfo `json:"relayExecutionInfo"`
}

func (FilledV3Relay) Kind() string { return "FilledV3Relay" }

// LogSink appends records to the structured log. Used when no broker is
// configured.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Emit(ctx context.Context, record Record) error {
	log.Info().Str("kind", record.Kind()).Interface("record", record).Msg("Event emitted")
	return nil
}
