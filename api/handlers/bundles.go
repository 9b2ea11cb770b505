// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/ChainSafe/slowfill-relayer/chains/svm"
	"github.com/ChainSafe/slowfill-relayer/chains/svm/pda"
)

type RootBundleWriter interface {
	StoreRootBundle(stateAddress common.Hash, rootBundleId uint32, bundle *svm.RootBundle) error
}

type RootBundleBody struct {
	SlowRelayRoot common.Hash `json:"slowRelayRoot"`
}

// BundlesHandler persists slow relay roots relayed from the bundle
// authorization process.
type BundlesHandler struct {
	bundles   RootBundleWriter
	stateSeed uint64
}

func NewBundlesHandler(bundles RootBundleWriter, stateSeed uint64) *BundlesHandler {
	return &BundlesHandler{
		bundles:   bundles,
		stateSeed: stateSeed,
	}
}

// HandleRelayRootBundle stores a published slow relay root under the given
// root bundle id
func (h *BundlesHandler) HandleRelayRootBundle(w http.ResponseWriter, r *http.Request) {
	b := &RootBundleBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	bundleId, err := strconv.ParseUint(mux.Vars(r)["bundleId"], 10, 32)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid bundle id: %s", err), http.StatusBadRequest)
		return
	}

	stateAddress, _ := pda.StateAddress(h.stateSeed)
	err = h.bundles.StoreRootBundle(stateAddress, uint32(bundleId), &svm.RootBundle{
		SlowRelayRoot: b.SlowRelayRoot,
	})
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
