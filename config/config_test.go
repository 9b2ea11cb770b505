// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/slowfill-relayer/config"
	"github.com/ChainSafe/slowfill-relayer/config/relayer"
)

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) TearDownTest() {
	os.Clearenv()
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidPath() {
	_, err := config.GetConfigFromFile("invalid", &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV() {
	_ = os.Setenv("SLF_RELAYER_LOGLEVEL", "debug")
	_ = os.Setenv("SLF_RELAYER_ENV", "TEST")
	_ = os.Setenv("SLF_RELAYER_HEALTHPORT", "4000")
	_ = os.Setenv("SLF_RELAYER_KAFKACONFIG_BROKER", "localhost:9092")
	_ = os.Setenv("SLF_DOM_1", `{"id": 1, "type": "svm", "chainId": 1337, "stateSeed": "0"}`)

	cnf, err := config.GetConfigFromENV(&config.Config{ChainConfigs: []map[string]interface{}{{
		"id":   1,
		"name": "svm1",
	}}})

	s.Nil(err)
	s.Equal(config.Config{
		RelayerConfig: relayer.RelayerConfig{
			LogLevel:   zerolog.DebugLevel,
			LogFile:    "out.log",
			Env:        "TEST",
			HealthPort: 4000,
			ApiAddr:    ":8080",
			KafkaConfig: relayer.KafkaConfig{
				Broker: "localhost:9092",
				Topic:  "slowfill-events",
			},
		},
		ChainConfigs: []map[string]interface{}{
			{
				"id":        float64(1),
				"name":      "svm1",
				"type":      "svm",
				"chainId":   float64(1337),
				"stateSeed": "0",
			},
		},
	}, *cnf)
}

type ConfigTestCase struct {
	name       string
	inConfig   config.RawConfig
	shouldFail bool
	errorMsg   string
	outConfig  config.Config
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile() {
	testCases := []ConfigTestCase{
		{
			name: "missing chain type",
			inConfig: config.RawConfig{
				RelayerConfig: relayer.RawRelayerConfig{},
				ChainConfigs: []map[string]interface{}{{
					"id":   float64(1),
					"name": "chain1",
				}},
			},
			shouldFail: true,
			errorMsg:   "chain 'type' must be provided for every configured chain",
			outConfig:  config.Config{},
		},
		{
			name: "invalid log level",
			inConfig: config.RawConfig{
				RelayerConfig: relayer.RawRelayerConfig{
					LogLevel: "invalid",
				},
				ChainConfigs: []map[string]interface{}{{
					"id":   float64(1),
					"type": "svm",
				}},
			},
			shouldFail: true,
			errorMsg:   "unknown log level: invalid",
			outConfig:  config.Config{},
		},
		{
			name: "invalid health port",
			inConfig: config.RawConfig{
				RelayerConfig: relayer.RawRelayerConfig{
					HealthPort: "not-a-port",
				},
				ChainConfigs: []map[string]interface{}{{
					"id":   float64(1),
					"type": "svm",
				}},
			},
			shouldFail: true,
			errorMsg:   "invalid health port: not-a-port",
			outConfig:  config.Config{},
		},
		{
			name: "set default values in config",
			inConfig: config.RawConfig{
				RelayerConfig: relayer.RawRelayerConfig{},
				ChainConfigs: []map[string]interface{}{{
					"id":   float64(1),
					"type": "svm",
					"name": "svm1",
				}},
			},
			shouldFail: false,
			outConfig: config.Config{
				RelayerConfig: relayer.RelayerConfig{
					LogLevel:   zerolog.InfoLevel,
					LogFile:    "out.log",
					Env:        "dev",
					HealthPort: 9001,
					ApiAddr:    ":8080",
					KafkaConfig: relayer.KafkaConfig{
						Broker: "",
						Topic:  "slowfill-events",
					},
				},
				ChainConfigs: []map[string]interface{}{{
					"id":   float64(1),
					"type": "svm",
					"name": "svm1",
				}},
			},
		},
		{
			name: "valid config",
			inConfig: config.RawConfig{
				RelayerConfig: relayer.RawRelayerConfig{
					LogLevel:   "debug",
					LogFile:    "custom.log",
					Env:        "prod",
					HealthPort: "9002",
					ApiAddr:    ":8088",
					KafkaConfig: relayer.RawKafkaConfig{
						Broker: "kafka:9092",
						Topic:  "fills",
					},
				},
				ChainConfigs: []map[string]interface{}{{
					"id":   float64(1),
					"type": "svm",
					"name": "svm1",
				}},
			},
			shouldFail: false,
			outConfig: config.Config{
				RelayerConfig: relayer.RelayerConfig{
					LogLevel:   zerolog.DebugLevel,
					LogFile:    "custom.log",
					Env:        "prod",
					HealthPort: 9002,
					ApiAddr:    ":8088",
					KafkaConfig: relayer.KafkaConfig{
						Broker: "kafka:9092",
						Topic:  "fills",
					},
				},
				ChainConfigs: []map[string]interface{}{{
					"id":   float64(1),
					"type": "svm",
					"name": "svm1",
				}},
			},
		},
	}

	for _, t := range testCases {
		s.Run(t.name, func() {
			file, _ := json.Marshal(t.inConfig)
			_ = os.WriteFile("test.json", file, 0644)

			conf, err := config.GetConfigFromFile("test.json", &config.Config{
				ChainConfigs: []map[string]interface{}{
					{
						"id": 1,
					},
				},
			})

			_ = os.Remove("test.json")

			if t.shouldFail {
				s.NotNil(err)
				s.Equal(t.errorMsg, err.Error())
			} else {
				s.Nil(err)
				s.Equal(t.outConfig, *conf)
			}
		})
	}
}
