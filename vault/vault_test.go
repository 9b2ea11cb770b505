// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	mock_store "github.com/sygmaprotocol/sygma-core/mock"
	"github.com/syndtr/goleveldb/leveldb"
	"go.uber.org/mock/gomock"

	"github.com/ChainSafe/slowfill-relayer/vault"
)

type LedgerTestSuite struct {
	suite.Suite
	ledger               *vault.Ledger
	keyValueReaderWriter *mock_store.MockKeyValueReaderWriter

	custodyProof []byte
	mint         common.Hash
	from         common.Hash
	to           common.Hash
}

func TestRunLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	gomockController := gomock.NewController(s.T())
	s.keyValueReaderWriter = mock_store.NewMockKeyValueReaderWriter(gomockController)
	s.custodyProof = []byte("custody-proof")
	s.ledger = vault.NewLedger(s.keyValueReaderWriter, s.custodyProof)
	s.mint = common.HexToHash("0x05")
	s.from = common.HexToHash("0x10")
	s.to = common.HexToHash("0x20")
}

func (s *LedgerTestSuite) mintDbKey() []byte {
	return []byte(fmt.Sprintf("mints:%s", s.mint.Hex()))
}

func (s *LedgerTestSuite) balanceDbKey(account common.Hash) []byte {
	return []byte(fmt.Sprintf("balances:%s:%s", s.mint.Hex(), account.Hex()))
}

func (s *LedgerTestSuite) Test_MintDecimals_MintNotRegistered() {
	s.keyValueReaderWriter.EXPECT().GetByKey(s.mintDbKey()).Return(nil, leveldb.ErrNotFound)

	_, err := s.ledger.MintDecimals(s.mint)

	s.ErrorIs(err, vault.ErrMintNotRegistered)
}

func (s *LedgerTestSuite) Test_MintDecimals_SuccessfulFetch() {
	s.keyValueReaderWriter.EXPECT().GetByKey(s.mintDbKey()).Return([]byte{9}, nil)

	decimals, err := s.ledger.MintDecimals(s.mint)

	s.Nil(err)
	s.Equal(uint8(9), decimals)
}

func (s *LedgerTestSuite) Test_RegisterMint_SuccessfulStore() {
	s.keyValueReaderWriter.EXPECT().SetByKey(s.mintDbKey(), []byte{6}).Return(nil)

	err := s.ledger.RegisterMint(s.mint, 6)

	s.Nil(err)
}

func (s *LedgerTestSuite) Test_Balance_MissingAccountHoldsZero() {
	s.keyValueReaderWriter.EXPECT().GetByKey(s.balanceDbKey(s.from)).Return(nil, leveldb.ErrNotFound)

	balance, err := s.ledger.Balance(s.mint, s.from)

	s.Nil(err)
	s.Equal(uint64(0), balance)
}

func (s *LedgerTestSuite) Test_Credit_AddsToExistingBalance() {
	s.keyValueReaderWriter.EXPECT().GetByKey(s.balanceDbKey(s.from)).Return([]byte("100"), nil)
	s.keyValueReaderWriter.EXPECT().SetByKey(s.balanceDbKey(s.from), []byte("150")).Return(nil)

	err := s.ledger.Credit(s.mint, s.from, 50)

	s.Nil(err)
}

func (s *LedgerTestSuite) Test_TransferChecked_MintNotRegistered() {
	s.keyValueReaderWriter.EXPECT().GetByKey(s.mintDbKey()).Return(nil, leveldb.ErrNotFound)

	err := s.ledger.TransferChecked(10, s.mint, s.from, s.to, s.custodyProof, 9)

	s.ErrorIs(err, vault.ErrMintNotRegistered)
}

func (s *LedgerTestSuite) Test_TransferChecked_DecimalsMismatch() {
	s.keyValueReaderWriter.EXPECT().GetByKey(s.mintDbKey()).Return([]byte{9}, nil)

	err := s.ledger.TransferChecked(10, s.mint, s.from, s.to, s.custodyProof, 6)

	s.ErrorIs(err, vault.ErrMintDecimalsMismatch)
}

func (s *LedgerTestSuite) Test_TransferChecked_UnauthorizedAuthority() {
	s.keyValueReaderWriter.EXPECT().GetByKey(s.mintDbKey()).Return([]byte{9}, nil)

	err := s.ledger.TransferChecked(10, s.mint, s.from, s.to, []byte("forged-proof"), 9)

	s.ErrorIs(err, vault.ErrUnauthorizedTransfer)
}

func (s *LedgerTestSuite) Test_TransferChecked_InsufficientBalance() {
	s.keyValueReaderWriter.EXPECT().GetByKey(s.mintDbKey()).Return([]byte{9}, nil)
	s.keyValueReaderWriter.EXPECT().GetByKey(s.balanceDbKey(s.from)).Return([]byte("5"), nil)

	err := s.ledger.TransferChecked(10, s.mint, s.from, s.to, s.custodyProof, 9)

	s.ErrorIs(err, vault.ErrInsufficientBalance)
}

func (s *LedgerTestSuite) Test_TransferChecked_FailedCreditRestoresDebit() {
	s.keyValueReaderWriter.EXPECT().GetByKey(s.mintDbKey()).Return([]byte{9}, nil)
	s.keyValueReaderWriter.EXPECT().GetByKey(s.balanceDbKey(s.from)).Return([]byte("100"), nil)
	s.keyValueReaderWriter.EXPECT().GetByKey(s.balanceDbKey(s.to)).Return([]byte("0"), nil)
	gomock.InOrder(
		s.keyValueReaderWriter.EXPECT().SetByKey(s.balanceDbKey(s.from), []byte("90")).Return(nil),
		s.keyValueReaderWriter.EXPECT().SetByKey(s.balanceDbKey(s.to), []byte("10")).Return(errors.New("error")),
		s.keyValueReaderWriter.EXPECT().SetByKey(s.balanceDbKey(s.from), []byte("100")).Return(nil),
	)

	err := s.ledger.TransferChecked(10, s.mint, s.from, s.to, s.custodyProof, 9)

	s.NotNil(err)
}

func (s *LedgerTestSuite) Test_TransferChecked_SuccessfulTransfer() {
	s.keyValueReaderWriter.EXPECT().GetByKey(s.mintDbKey()).Return([]byte{9}, nil)
	s.keyValueReaderWriter.EXPECT().GetByKey(s.balanceDbKey(s.from)).Return([]byte("100"), nil)
	s.keyValueReaderWriter.EXPECT().GetByKey(s.balanceDbKey(s.to)).Return(nil, leveldb.ErrNotFound)
	s.keyValueReaderWriter.EXPECT().SetByKey(s.balanceDbKey(s.from), []byte("90")).Return(nil)
	s.keyValueReaderWriter.EXPECT().SetByKey(s.balanceDbKey(s.to), []byte("10")).Return(nil)

	err := s.ledger.TransferChecked(10, s.mint, s.from, s.to, s.custodyProof, 9)

	s.Nil(err)
}
