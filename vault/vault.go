// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package vault implements the custody transfer primitive over the relayer
// key-value store. A transfer either fully succeeds or fails with no partial
// effect.
package vault

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/store"
	"github.com/syndtr/goleveldb/leveldb"
)

var (
	balanceKey = "balances:%s:%s"
	mintKey    = "mints:%s"

	ErrMintNotRegistered    = errors.New("mint not registered")
	ErrMintDecimalsMismatch = errors.New("mint decimals mismatch")
	ErrUnauthorizedTransfer = errors.New("authority not allowed to transfer from account")
	ErrInsufficientBalance  = errors.New("insufficient balance")
)

// Ledger is a token ledger keyed by mint and account. Transfers out of
// custody require the authority proof derived for the custody owner.
type Ledger struct {
	db store.KeyValueReaderWriter
	// balance writes are read-modify-write over separate keys, so a single
	// mutex guards every mutation
	mu sync.Mutex
	// the derivation proof of the address allowed to debit custody accounts
	custodyProof []byte
}

func NewLedger(db store.KeyValueReaderWriter, custodyProof []byte) *Ledger {
	return &Ledger{
		db:           db,
		custodyProof: custodyProof,
	}
}

// RegisterMint persists the decimals of a mint. Transfers of unregistered
// mints are rejected.
func (l *Ledger) RegisterMint(mint common.Hash, decimals uint8) error {
	key := fmt.Sprintf(mintKey, mint.Hex())
	return l.db.SetByKey([]byte(key), []byte{decimals})
}

// MintDecimals fetches the registered decimals of a mint.
func (l *Ledger) MintDecimals(mint common.Hash) (uint8, error) {
	key := fmt.Sprintf(mintKey, mint.Hex())
	v, err := l.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return 0, ErrMintNotRegistered
		}
		return 0, err
	}
	return v[0], nil
}

// Balance fetches the balance of an account for a mint. Missing accounts
// hold zero.
func (l *Ledger) Balance(mint common.Hash, account common.Hash) (uint64, error) {
	key := fmt.Sprintf(balanceKey, mint.Hex(), account.Hex())
	v, err := l.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseUint(string(v), 10, 64)
}

// Credit adds funds to an account. Used to seed custody accounts on deposit.
func (l *Ledger) Credit(mint common.Hash, account common.Hash, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.Balance(mint, account)
	if err != nil {
		return err
	}
	return l.storeBalance(mint, account, balance+amount)
}

// TransferChecked moves amount of mint between accounts after checking the
// authority proof and the asserted decimals. All checks precede the first
// write and a failed credit reverts the debit.
func (l *Ledger) TransferChecked(amount uint64, mint common.Hash, from common.Hash, to common.Hash, authority []byte, decimals uint8) error {
	registered, err := l.MintDecimals(mint)
	if err != nil {
		return err
	}
	if registered != decimals {
		return ErrMintDecimalsMismatch
	}

	if !bytes.Equal(authority, l.custodyProof) {
		return ErrUnauthorizedTransfer
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fromBalance, err := l.Balance(mint, from)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		return ErrInsufficientBalance
	}
	toBalance, err := l.Balance(mint, to)
	if err != nil {
		return err
	}

	err = l.storeBalance(mint, from, fromBalance-amount)
	if err != nil {
		return err
	}
	err = l.storeBalance(mint, to, toBalance+amount)
	if err != nil {
		rbErr := l.storeBalance(mint, from, fromBalance)
		if rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return nil
}

func (l *Ledger) storeBalance(mint common.Hash, account common.Hash, balance uint64) error {
	key := fmt.Sprintf(balanceKey, mint.Hex(), account.Hex())
	return l.db.SetByKey([]byte(key), []byte(strconv.FormatUint(balance, 10)))
}
