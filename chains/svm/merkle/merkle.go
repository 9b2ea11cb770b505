// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package merkle

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidMerkleProof = errors.New("invalid merkle proof")

// VerifyProof recomputes a root from a leaf digest and an ordered sibling
// path and compares it to the trusted root. Pair ordering follows the sorted
// keccak convention used by the paired chain's verifier, so proofs generated
// for one side verify on the other.
func VerifyProof(root common.Hash, leaf common.Hash, proof []common.Hash) error {
	computed := leaf
	for _, sibling := range proof {
		computed = HashPair(computed, sibling)
	}
	if computed != root {
		return ErrInvalidMerkleProof
	}
	return nil
}

// HashPair combines two digests into their parent node digest. Operands are
// sorted before hashing.
func HashPair(a common.Hash, b common.Hash) common.Hash {
	if bytes.Compare(a.Bytes(), b.Bytes()) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Hash(a.Bytes(), b.Bytes())
}
