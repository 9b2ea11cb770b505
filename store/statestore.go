// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sygmaprotocol/sygma-core/store"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/slowfill-relayer/chains/svm"
)

var stateKey = "state:%d"

var ErrStateNotFound = errors.New("state not found")

// StateStore persists the protocol state singleton keyed by its seed.
type StateStore struct {
	db store.KeyValueReaderWriter
}

func NewStateStore(db store.KeyValueReaderWriter) *StateStore {
	return &StateStore{
		db: db,
	}
}

// State fetches the state for a seed.
func (s *StateStore) State(seed uint64) (*svm.State, error) {
	key := fmt.Sprintf(stateKey, seed)
	v, err := s.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}

	state := &svm.State{}
	err = json.Unmarshal(v, state)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// StoreState persists the state singleton.
func (s *StateStore) StoreState(state *svm.State) error {
	key := fmt.Sprintf(stateKey, state.Seed)
	v, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return s.db.SetByKey([]byte(key), v)
}
