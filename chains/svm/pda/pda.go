// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package pda derives the storage addresses used to locate protocol records
// and the authority proofs used to sign on their behalf. Derivation is a pure
// function of protocol-defined seed bytes.
package pda

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Derive produces a stable address for the given seeds together with an
// authority proof bound to that address.
func Derive(seeds ...[]byte) (common.Hash, []byte) {
	address := crypto.Keccak256Hash(seeds...)
	proof := crypto.Keccak256(address.Bytes(), []byte("authority"))
	return address, proof
}

// StateAddress derives the address of the state singleton for a seed.
func StateAddress(seed uint64) (common.Hash, []byte) {
	return Derive([]byte("state"), leUint64(seed))
}

// FillAddress derives the address of a fill status record.
func FillAddress(relayHash common.Hash) (common.Hash, []byte) {
	return Derive([]byte("fills"), relayHash.Bytes())
}

// RootBundleAddress derives the address of a root bundle record owned by the
// given state.
func RootBundleAddress(stateAddress common.Hash, rootBundleId uint32) (common.Hash, []byte) {
	id := make([]byte, 4)
	binary.LittleEndian.PutUint32(id, rootBundleId)
	return Derive([]byte("root_bundle"), stateAddress.Bytes(), id)
}

// AssociatedTokenAddress derives the token account address of an owner for a
// mint.
func AssociatedTokenAddress(owner common.Hash, mint common.Hash) (common.Hash, []byte) {
	return Derive([]byte("associated_token"), owner.Bytes(), mint.Bytes())
}

func leUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
