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

var bundleKey = "root_bundle:%s:%d"

// RootBundleStore persists published slow relay roots per state and root
// bundle id.
type RootBundleStore struct {
	db store.KeyValueReaderWriter
}

func NewRootBundleStore(db store.KeyValueReaderWriter) *RootBundleStore {
	return &RootBundleStore{
		db: db,
	}
}

// RootBundle fetches a published root bundle.
func (s *RootBundleStore) RootBundle(stateAddress common.Hash, rootBundleId uint32) (*svm.RootBundle, error) {
	key := fmt.Sprintf(bundleKey, stateAddress.Hex(), rootBundleId)
	v, err := s.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, svm.ErrRootBundleNotFound
		}
		return nil, err
	}

	bundle := &svm.RootBundle{}
	err = json.Unmarshal(v, bundle)
	if err != nil {
		return nil, err
	}
	return bundle, nil
}

// StoreRootBundle persists a root bundle relayed from the bundle
// authorization process.
func (s *RootBundleStore) StoreRootBundle(stateAddress common.Hash, rootBundleId uint32, bundle *svm.RootBundle) error {
	key := fmt.Sprintf(bundleKey, stateAddress.Hex(), rootBundleId)
	v, err := json.Marshal(bundle)
	if err != nil {
		return err
	}

	return s.db.SetByKey([]byte(key), v)
}
