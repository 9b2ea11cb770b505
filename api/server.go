// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/slowfill-relayer/api/handlers"
)

// Serve starts the invocation API and blocks until the context is canceled.
func Serve(
	ctx context.Context,
	addr string,
	fillsHandler *handlers.FillsHandler,
	bundlesHandler *handlers.BundlesHandler,
) {
	r := mux.NewRouter()
	r.HandleFunc("/v1/fills/{relayHash}/slow-fill-request", fillsHandler.HandleRequest).Methods("POST")
	r.HandleFunc("/v1/fills/{relayHash}/slow-fill", fillsHandler.HandleExecute).Methods("POST")
	r.HandleFunc("/v1/fills/{relayHash}", fillsHandler.HandleStatus).Methods("GET")
	r.HandleFunc("/v1/bundles/{bundleId:[0-9]+}", bundlesHandler.HandleRelayRootBundle).Methods("POST")

	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
