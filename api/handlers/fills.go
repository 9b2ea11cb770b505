// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/jellydator/ttlcache/v3"

	"github.com/ChainSafe/slowfill-relayer/chains/svm"
	"github.com/ChainSafe/slowfill-relayer/chains/svm/executor"
	"github.com/ChainSafe/slowfill-relayer/store"
)

const STATUS_CACHE_TTL = time.Minute * 15

type RequestHandler interface {
	HandleRequest(ctx context.Context, r executor.SlowFillRequest) error
}

type ExecutionHandler interface {
	HandleExecute(ctx context.Context, e executor.SlowFillExecution) error
}

type SlowFillRequestBody struct {
	RelayData svm.RelayData `json:"relayData"`
	Caller    common.Hash   `json:"caller"`
}

type SlowFillExecuteBody struct {
	Leaf         svm.SlowFillLeaf `json:"leaf"`
	RootBundleId uint32           `json:"rootBundleId"`
	Proof        []common.Hash    `json:"proof"`
	Recipient    common.Hash      `json:"recipient"`
	Mint         common.Hash      `json:"mint"`
	Caller       common.Hash      `json:"caller"`
}

type FillStatusResponse struct {
	RelayHash common.Hash      `json:"relayHash"`
	Status    store.FillStatus `json:"status"`
	Relayer   common.Hash      `json:"relayer"`
}

type FillsHandler struct {
	requests   RequestHandler
	executions ExecutionHandler

	statusCache *ttlcache.Cache[common.Hash, store.FillStatusRecord]
}

func NewFillsHandler(requests RequestHandler, executions ExecutionHandler) *FillsHandler {
	statusCache := ttlcache.New(
		ttlcache.WithTTL[common.Hash, store.FillStatusRecord](STATUS_CACHE_TTL),
	)
	go statusCache.Start()

	return &FillsHandler{
		requests:    requests,
		executions:  executions,
		statusCache: statusCache,
	}
}

// HandleRequest submits a slow fill request invocation and returns status
// code 200 once the fill record transitioned to requested
func (h *FillsHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	b := &SlowFillRequestBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	relayHash := common.HexToHash(mux.Vars(r)["relayHash"])
	err = h.requests.HandleRequest(r.Context(), executor.SlowFillRequest{
		RelayHash: relayHash,
		RelayData: b.RelayData,
		Caller:    b.Caller,
	})
	if err != nil {
		JSONError(w, err, protocolErrorCode(err))
		return
	}

	record := store.FillStatusRecord{Status: store.RequestedSlowFillFill, Relayer: b.Caller}
	h.statusCache.Set(relayHash, record, ttlcache.DefaultTTL)
	h.writeStatus(w, relayHash, record)
}

// HandleExecute submits a slow fill execution invocation and returns status
// code 200 once funds were released and the fill record is terminal
func (h *FillsHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	b := &SlowFillExecuteBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	relayHash := common.HexToHash(mux.Vars(r)["relayHash"])
	err = h.executions.HandleExecute(r.Context(), executor.SlowFillExecution{
		RelayHash:    relayHash,
		Leaf:         b.Leaf,
		RootBundleId: b.RootBundleId,
		Proof:        b.Proof,
		Recipient:    b.Recipient,
		Mint:         b.Mint,
		Caller:       b.Caller,
	})
	if err != nil {
		JSONError(w, err, protocolErrorCode(err))
		return
	}

	item := h.statusCache.Get(relayHash)
	record := store.FillStatusRecord{Status: store.FilledFill}
	if item != nil {
		record.Relayer = item.Value().Relayer
	}
	h.statusCache.Set(relayHash, record, ttlcache.DefaultTTL)
	h.writeStatus(w, relayHash, record)
}

// HandleStatus serves recently observed fill statuses from the cache
func (h *FillsHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	relayHash := common.HexToHash(mux.Vars(r)["relayHash"])
	item := h.statusCache.Get(relayHash)
	if item == nil {
		JSONError(w, fmt.Errorf("no recent status for relay hash %s", relayHash.Hex()), http.StatusNotFound)
		return
	}

	h.writeStatus(w, relayHash, item.Value())
}

func (h *FillsHandler) writeStatus(w http.ResponseWriter, relayHash common.Hash, record store.FillStatusRecord) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(FillStatusResponse{
		RelayHash: relayHash,
		Status:    record.Status,
		Relayer:   record.Relayer,
	})
}
