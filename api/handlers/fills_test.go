// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ChainSafe/slowfill-relayer/api/handlers"
	mock_handlers "github.com/ChainSafe/slowfill-relayer/api/handlers/mock"
	"github.com/ChainSafe/slowfill-relayer/chains/svm"
	"github.com/ChainSafe/slowfill-relayer/store"
)

type FillsHandlerTestSuite struct {
	suite.Suite

	handler    *handlers.FillsHandler
	requests   *mock_handlers.MockRequestHandler
	executions *mock_handlers.MockExecutionHandler

	relayHash common.Hash
}

func TestRunFillsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FillsHandlerTestSuite))
}

func (s *FillsHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.requests = mock_handlers.NewMockRequestHandler(ctrl)
	s.executions = mock_handlers.NewMockExecutionHandler(ctrl)
	s.handler = handlers.NewFillsHandler(s.requests, s.executions)
	s.relayHash = common.HexToHash("0xab")
}

func (s *FillsHandlerTestSuite) newRequest(method string, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return mux.SetURLVars(req, map[string]string{"relayHash": s.relayHash.Hex()})
}

func (s *FillsHandlerTestSuite) Test_HandleRequest_InvalidBody() {
	req := s.newRequest(http.MethodPost, "/v1/fills/hash/slow-fill-request", []byte("invalid"))
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *FillsHandlerTestSuite) Test_HandleRequest_RejectedRequest() {
	input := handlers.SlowFillRequestBody{Caller: common.HexToHash("0x0a")}
	body, _ := json.Marshal(input)
	req := s.newRequest(http.MethodPost, "/v1/fills/hash/slow-fill-request", body)
	recorder := httptest.NewRecorder()

	s.requests.EXPECT().HandleRequest(gomock.Any(), gomock.Any()).Return(svm.ErrInvalidSlowFillRequest)

	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *FillsHandlerTestSuite) Test_HandleRequest_FillsPaused() {
	input := handlers.SlowFillRequestBody{Caller: common.HexToHash("0x0a")}
	body, _ := json.Marshal(input)
	req := s.newRequest(http.MethodPost, "/v1/fills/hash/slow-fill-request", body)
	recorder := httptest.NewRecorder()

	s.requests.EXPECT().HandleRequest(gomock.Any(), gomock.Any()).Return(svm.ErrFillsArePaused)

	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *FillsHandlerTestSuite) Test_HandleRequest_Success() {
	input := handlers.SlowFillRequestBody{Caller: common.HexToHash("0x0a")}
	body, _ := json.Marshal(input)
	req := s.newRequest(http.MethodPost, "/v1/fills/hash/slow-fill-request", body)
	recorder := httptest.NewRecorder()

	s.requests.EXPECT().HandleRequest(gomock.Any(), gomock.Any()).Return(nil)

	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	resp := handlers.FillStatusResponse{}
	_ = json.NewDecoder(recorder.Body).Decode(&resp)
	s.Equal(s.relayHash, resp.RelayHash)
	s.Equal(store.RequestedSlowFillFill, resp.Status)
	s.Equal(common.HexToHash("0x0a"), resp.Relayer)
}

func (s *FillsHandlerTestSuite) Test_HandleExecute_InvalidBody() {
	req := s.newRequest(http.MethodPost, "/v1/fills/hash/slow-fill", []byte("invalid"))
	recorder := httptest.NewRecorder()

	s.handler.HandleExecute(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *FillsHandlerTestSuite) Test_HandleExecute_MissingRootBundle() {
	input := handlers.SlowFillExecuteBody{RootBundleId: 3}
	body, _ := json.Marshal(input)
	req := s.newRequest(http.MethodPost, "/v1/fills/hash/slow-fill", body)
	recorder := httptest.NewRecorder()

	s.executions.EXPECT().HandleExecute(gomock.Any(), gomock.Any()).Return(svm.ErrRootBundleNotFound)

	s.handler.HandleExecute(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *FillsHandlerTestSuite) Test_HandleExecute_Success() {
	input := handlers.SlowFillExecuteBody{RootBundleId: 3, Caller: common.HexToHash("0x0c")}
	body, _ := json.Marshal(input)
	req := s.newRequest(http.MethodPost, "/v1/fills/hash/slow-fill", body)
	recorder := httptest.NewRecorder()

	s.executions.EXPECT().HandleExecute(gomock.Any(), gomock.Any()).Return(nil)

	s.handler.HandleExecute(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	resp := handlers.FillStatusResponse{}
	_ = json.NewDecoder(recorder.Body).Decode(&resp)
	s.Equal(store.FilledFill, resp.Status)
}

func (s *FillsHandlerTestSuite) Test_HandleStatus_NoRecentStatus() {
	req := s.newRequest(http.MethodGet, "/v1/fills/hash", nil)
	recorder := httptest.NewRecorder()

	s.handler.HandleStatus(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *FillsHandlerTestSuite) Test_HandleStatus_ServesCachedStatus() {
	input := handlers.SlowFillRequestBody{Caller: common.HexToHash("0x0a")}
	body, _ := json.Marshal(input)
	s.requests.EXPECT().HandleRequest(gomock.Any(), gomock.Any()).Return(nil)
	s.handler.HandleRequest(httptest.NewRecorder(), s.newRequest(http.MethodPost, "/v1/fills/hash/slow-fill-request", body))

	req := s.newRequest(http.MethodGet, "/v1/fills/hash", nil)
	recorder := httptest.NewRecorder()

	s.handler.HandleStatus(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	resp := handlers.FillStatusResponse{}
	_ = json.NewDecoder(recorder.Body).Decode(&resp)
	s.Equal(store.RequestedSlowFillFill, resp.Status)
	s.Equal(common.HexToHash("0x0a"), resp.Relayer)
}

func (s *FillsHandlerTestSuite) Test_HandleExecute_KeepsRequesterFromCache() {
	requestBody, _ := json.Marshal(handlers.SlowFillRequestBody{Caller: common.HexToHash("0x0b")})
	s.requests.EXPECT().HandleRequest(gomock.Any(), gomock.Any()).Return(nil)
	s.handler.HandleRequest(httptest.NewRecorder(), s.newRequest(http.MethodPost, "/v1/fills/hash/slow-fill-request", requestBody))

	executeBody, _ := json.Marshal(handlers.SlowFillExecuteBody{RootBundleId: 3, Caller: common.HexToHash("0x0c")})
	req := s.newRequest(http.MethodPost, "/v1/fills/hash/slow-fill", executeBody)
	recorder := httptest.NewRecorder()

	s.executions.EXPECT().HandleExecute(gomock.Any(), gomock.Any()).Return(nil)

	s.handler.HandleExecute(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	resp := handlers.FillStatusResponse{}
	_ = json.NewDecoder(recorder.Body).Decode(&resp)
	s.Equal(store.FilledFill, resp.Status)
	s.Equal(common.HexToHash("0x0b"), resp.Relayer)
}
