// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/store"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/slowfill-relayer/chains/svm"
)

type FillStatus string

var (
	fillKey = "fills:%s"

	UnfilledFill          FillStatus = "unfilled"
	RequestedSlowFillFill FillStatus = "requestedSlowFill"
	FilledFill            FillStatus = "filled"
)

// FillStatusRecord tracks the lifecycle of a single relay. Relayer is stamped
// when a slow fill is requested and left untouched afterwards.
type FillStatusRecord struct {
	Status  FillStatus  `json:"status"`
	Relayer common.Hash `json:"relayer"`
}

// FillStore is the single source of truth for fill lifecycle records, keyed
// by relay hash.
type FillStore struct {
	db store.KeyValueReaderWriter
}

func NewFillStore(db store.KeyValueReaderWriter) *FillStore {
	return &FillStore{
		db: db,
	}
}

// FillStatus fetches the fill record for a relay hash. The hash is
// recomputed from the relay data on every access so an externally supplied
// key can never address a record it does not describe. Missing records are
// returned as unfilled.
func (s *FillStore) FillStatus(relayHash common.Hash, relayData svm.RelayData, state svm.State) (*FillStatusRecord, error) {
	if svm.RelayHash(relayData, state.ChainId) != relayHash {
		return nil, svm.ErrInvalidRelayHash
	}

	key := fmt.Sprintf(fillKey, relayHash.Hex())
	v, err := s.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return &FillStatusRecord{Status: UnfilledFill}, nil
		}
		return nil, err
	}

	record := &FillStatusRecord{}
	err = json.Unmarshal(v, record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// StoreFillStatus persists the fill record for a relay hash.
func (s *FillStore) StoreFillStatus(relayHash common.Hash, record *FillStatusRecord) error {
	key := fmt.Sprintf(fillKey, relayHash.Hex())
	v, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return s.db.SetByKey([]byte(key), v)
}
