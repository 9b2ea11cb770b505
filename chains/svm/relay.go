// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package svm

import (
	"bytes"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// RelayData contains the immutable parameters of a relay, chosen by the
// depositor on the origin chain. It is identical on both sides of the bridge
// and is the preimage of the relay hash.
type RelayData struct {
	Depositor           common.Hash   `json:"depositor"`
	Recipient           common.Hash   `json:"recipient"`
	ExclusiveRelayer    common.Hash   `json:"exclusiveRelayer"`
	InputToken          common.Hash   `json:"inputToken"`
	OutputToken         common.Hash   `json:"outputToken"`
	InputAmount         uint64        `json:"inputAmount"`
	OutputAmount        uint64        `json:"outputAmount"`
	OriginChainId       uint64        `json:"originChainId"`
	DepositId           uint64        `json:"depositId"`
	FillDeadline        uint32        `json:"fillDeadline"`
	ExclusivityDeadline uint32        `json:"exclusivityDeadline"`
	Message             hexutil.Bytes `json:"message"`
}

// Encode serializes relay data into the canonical byte layout shared with the
// paired chain. Field order and little-endian integer encoding are part of the
// cross-chain protocol and may not change.
func (d *RelayData) Encode() []byte {
	buf := bytes.Buffer{}
	buf.Write(d.Depositor.Bytes())
	buf.Write(d.Recipient.Bytes())
	buf.Write(d.ExclusiveRelayer.Bytes())
	buf.Write(d.InputToken.Bytes())
	buf.Write(d.OutputToken.Bytes())
	buf.Write(leUint64(d.InputAmount))
	buf.Write(leUint64(d.OutputAmount))
	buf.Write(leUint64(d.OriginChainId))
	buf.Write(leUint64(d.DepositId))
	buf.Write(leUint32(d.FillDeadline))
	buf.Write(leUint32(d.ExclusivityDeadline))
	buf.Write(d.Message)
	return buf.Bytes()
}

// SlowFillLeaf is the unit committed into the slow relay root. The
// destination chain id is always overridden with the executing chain's own id
// before hashing, so a caller-supplied value never reaches the digest.
type SlowFillLeaf struct {
	RelayData           RelayData `json:"relayData"`
	DestinationChainId  uint64    `json:"destinationChainId"`
	UpdatedOutputAmount uint64    `json:"updatedOutputAmount"`
}

// Encode serializes the leaf by extending the relay data layout with the
// destination chain id and updated output amount.
func (l *SlowFillLeaf) Encode() []byte {
	buf := bytes.Buffer{}
	buf.Write(l.RelayData.Encode())
	buf.Write(leUint64(l.DestinationChainId))
	buf.Write(leUint64(l.UpdatedOutputAmount))
	return buf.Bytes()
}

// Hash computes the keccak256 digest of the canonical leaf encoding.
func (l *SlowFillLeaf) Hash() common.Hash {
	return crypto.Keccak256Hash(l.Encode())
}

// RelayHash computes the content-bound identifier of a relay on a given
// chain. It keys fill status records and must be recomputed on every access.
func RelayHash(d RelayData, chainId uint64) common.Hash {
	return crypto.Keccak256Hash(d.Encode(), leUint64(chainId))
}

func leUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func leUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}
