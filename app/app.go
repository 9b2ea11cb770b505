// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"

	"github.com/ChainSafe/slowfill-relayer/api"
	"github.com/ChainSafe/slowfill-relayer/api/handlers"
	"github.com/ChainSafe/slowfill-relayer/chains/svm"
	"github.com/ChainSafe/slowfill-relayer/chains/svm/events"
	"github.com/ChainSafe/slowfill-relayer/chains/svm/executor"
	"github.com/ChainSafe/slowfill-relayer/chains/svm/pda"
	"github.com/ChainSafe/slowfill-relayer/config"
	"github.com/ChainSafe/slowfill-relayer/flags"
	"github.com/ChainSafe/slowfill-relayer/health"
	"github.com/ChainSafe/slowfill-relayer/jobs"
	"github.com/ChainSafe/slowfill-relayer/kafka"
	"github.com/ChainSafe/slowfill-relayer/logger"
	"github.com/ChainSafe/slowfill-relayer/lvldb"
	"github.com/ChainSafe/slowfill-relayer/metrics"
	"github.com/ChainSafe/slowfill-relayer/store"
	"github.com/ChainSafe/slowfill-relayer/vault"
)

func Run() error {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)
	configURL := viper.GetString(flags.ConfigURLFlagName)

	configuration := &config.Config{}
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL, configuration)
		panicOnError(err)
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	err = logger.ConfigureLogger(configuration.RelayerConfig.LogLevel, configuration.RelayerConfig.LogFile)
	panicOnError(err)

	log.Info().Msg("Successfully loaded configuration")

	var spokeConfig *svm.SpokeConfig
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "svm":
			spokeConfig, err = svm.NewSpokeConfig(chainConfig)
			panicOnError(err)
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}
	if spokeConfig == nil {
		panic(errors.New("no svm chain configured"))
	}

	blockstorePath := viper.GetString(flags.BlockstoreFlagName)
	db, err := lvldb.NewLvlDB(blockstorePath)
	panicOnError(err)
	defer db.Close()

	stateStore := store.NewStateStore(db)
	fillStore := store.NewFillStore(db)
	bundleStore := store.NewRootBundleStore(db)

	state, err := bootstrapState(stateStore, spokeConfig, viper.GetBool(flags.FreshStartFlagName))
	panicOnError(err)
	log.Info().Msgf("Serving spoke state with seed %d on chain %d", state.Seed, state.ChainId)

	stateAddress, stateProof := pda.StateAddress(state.Seed)
	ledger := vault.NewLedger(db, stateProof)
	err = bootstrapVault(ledger, stateAddress, spokeConfig)
	panicOnError(err)

	var sink events.Sink
	if configuration.RelayerConfig.KafkaConfig.Broker != "" {
		producer, err := kafka.NewProducer(
			configuration.RelayerConfig.KafkaConfig.Broker,
			configuration.RelayerConfig.KafkaConfig.Topic,
		)
		panicOnError(err)
		defer producer.Close()
		sink = producer
	} else {
		sink = events.NewLogSink()
	}

	meter := otel.Meter("slowfill-relayer")
	fillMetrics, err := metrics.NewFillMetrics(meter, configuration.RelayerConfig.Env, spokeConfig.ChainId)
	panicOnError(err)

	fillLock := executor.NewFillLock()
	requestHandler := executor.NewSlowFillRequestHandler(
		state.Seed, stateStore, fillStore, fillLock, executor.SystemClock{}, sink, fillMetrics,
	)
	executionHandler := executor.NewSlowFillExecutionHandler(
		state.Seed, stateStore, fillStore, fillLock, bundleStore, ledger, sink, fillMetrics,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go jobs.StartStateSnapshotJob(stateStore, state.Seed)
	go health.StartHealthEndpoint(configuration.RelayerConfig.HealthPort)
	go api.Serve(
		ctx,
		configuration.RelayerConfig.ApiAddr,
		handlers.NewFillsHandler(requestHandler, executionHandler),
		handlers.NewBundlesHandler(bundleStore, state.Seed),
	)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

// bootstrapState loads the state singleton, creating it from chain
// configuration on first start or when a fresh start is forced.
func bootstrapState(states *store.StateStore, spokeConfig *svm.SpokeConfig, fresh bool) (*svm.State, error) {
	if !fresh {
		state, err := states.State(spokeConfig.StateSeed)
		if err == nil {
			return state, nil
		}
		if !errors.Is(err, store.ErrStateNotFound) {
			return nil, err
		}
	}

	state := &svm.State{
		Seed:        spokeConfig.StateSeed,
		ChainId:     spokeConfig.ChainId,
		CurrentTime: spokeConfig.CurrentTime,
		PausedFills: spokeConfig.PausedFills,
	}
	err := states.StoreState(state)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// bootstrapVault registers configured mints and seeds empty custody accounts
// with their initial balance.
func bootstrapVault(ledger *vault.Ledger, stateAddress common.Hash, spokeConfig *svm.SpokeConfig) error {
	for _, resource := range spokeConfig.Resources {
		err := ledger.RegisterMint(resource.Mint, resource.Decimals)
		if err != nil {
			return err
		}

		vaultAccount, _ := pda.AssociatedTokenAddress(stateAddress, resource.Mint)
		balance, err := ledger.Balance(resource.Mint, vaultAccount)
		if err != nil {
			return err
		}
		if balance == 0 && resource.Balance > 0 {
			err = ledger.Credit(resource.Mint, vaultAccount, resource.Balance)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
