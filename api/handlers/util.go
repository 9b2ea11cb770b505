package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ChainSafe/slowfill-relayer/chains/svm"
	"github.com/ChainSafe/slowfill-relayer/chains/svm/merkle"
)

func JSONError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	type errorResponse struct {
		Code   int    `json:"code"`
		Reason string `json:"reason"`
	}
	resp := errorResponse{
		Reason: err.Error(),
		Code:   code,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// protocolErrorCode maps handler errors to response codes. Failed
// preconditions surface to the caller with their protocol error as the
// reason.
func protocolErrorCode(err error) int {
	switch {
	case errors.Is(err, svm.ErrInvalidSlowFillRequest):
		return http.StatusConflict
	case errors.Is(err, svm.ErrRootBundleNotFound):
		return http.StatusNotFound
	case errors.Is(err, svm.ErrFillsArePaused),
		errors.Is(err, svm.ErrInvalidRelayHash),
		errors.Is(err, svm.ErrNoSlowFillsInExclusivityWindow),
		errors.Is(err, svm.ErrExpiredFillDeadline),
		errors.Is(err, svm.ErrInvalidFillRecipient),
		errors.Is(err, svm.ErrInvalidMint),
		errors.Is(err, merkle.ErrInvalidMerkleProof):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
