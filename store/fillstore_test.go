// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	mock_store "github.com/sygmaprotocol/sygma-core/mock"
	"github.com/syndtr/goleveldb/leveldb"
	"go.uber.org/mock/gomock"

	"github.com/ChainSafe/slowfill-relayer/chains/svm"
	"github.com/ChainSafe/slowfill-relayer/store"
)

type FillStoreTestSuite struct {
	suite.Suite
	fillStore            *store.FillStore
	keyValueReaderWriter *mock_store.MockKeyValueReaderWriter

	state     svm.State
	relayData svm.RelayData
	relayHash common.Hash
}

func TestRunFillStoreTestSuite(t *testing.T) {
	suite.Run(t, new(FillStoreTestSuite))
}

func (s *FillStoreTestSuite) SetupTest() {
	gomockController := gomock.NewController(s.T())
	s.keyValueReaderWriter = mock_store.NewMockKeyValueReaderWriter(gomockController)
	s.fillStore = store.NewFillStore(s.keyValueReaderWriter)

	s.state = svm.State{Seed: 0, ChainId: 1337}
	s.relayData = svm.RelayData{
		Depositor:    common.HexToHash("0x01"),
		Recipient:    common.HexToHash("0x02"),
		OutputToken:  common.HexToHash("0x05"),
		OutputAmount: 900,
		DepositId:    42,
	}
	s.relayHash = svm.RelayHash(s.relayData, s.state.ChainId)
}

func (s *FillStoreTestSuite) Test_FillStatus_InvalidRelayHash() {
	_, err := s.fillStore.FillStatus(common.HexToHash("0xff"), s.relayData, s.state)

	s.ErrorIs(err, svm.ErrInvalidRelayHash)
}

func (s *FillStoreTestSuite) Test_FillStatus_FailedFetch() {
	key := fmt.Sprintf("fills:%s", s.relayHash.Hex())
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, errors.New("error"))

	_, err := s.fillStore.FillStatus(s.relayHash, s.relayData, s.state)

	s.NotNil(err)
}

func (s *FillStoreTestSuite) Test_FillStatus_MissingRecordIsUnfilled() {
	key := fmt.Sprintf("fills:%s", s.relayHash.Hex())
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, leveldb.ErrNotFound)

	record, err := s.fillStore.FillStatus(s.relayHash, s.relayData, s.state)

	s.Nil(err)
	s.Equal(store.UnfilledFill, record.Status)
}

func (s *FillStoreTestSuite) Test_FillStatus_SuccessfulFetch() {
	stored := store.FillStatusRecord{Status: store.RequestedSlowFillFill, Relayer: common.HexToHash("0x0a")}
	v, _ := json.Marshal(stored)
	key := fmt.Sprintf("fills:%s", s.relayHash.Hex())
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(v, nil)

	record, err := s.fillStore.FillStatus(s.relayHash, s.relayData, s.state)

	s.Nil(err)
	s.Equal(stored, *record)
}

func (s *FillStoreTestSuite) Test_StoreFillStatus_FailedStore() {
	record := &store.FillStatusRecord{Status: store.FilledFill}
	v, _ := json.Marshal(record)
	key := fmt.Sprintf("fills:%s", s.relayHash.Hex())
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), v).Return(errors.New("error"))

	err := s.fillStore.StoreFillStatus(s.relayHash, record)

	s.NotNil(err)
}

func (s *FillStoreTestSuite) Test_StoreFillStatus_SuccessfulStore() {
	record := &store.FillStatusRecord{Status: store.FilledFill, Relayer: common.HexToHash("0x0a")}
	v, _ := json.Marshal(record)
	key := fmt.Sprintf("fills:%s", s.relayHash.Hex())
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), v).Return(nil)

	err := s.fillStore.StoreFillStatus(s.relayHash, record)

	s.Nil(err)
}
