// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package relayer

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

type RelayerConfig struct {
	LogLevel    zerolog.Level
	LogFile     string
	Env         string
	HealthPort  uint16
	ApiAddr     string
	KafkaConfig KafkaConfig
}

type KafkaConfig struct {
	Broker string
	Topic  string
}

type RawRelayerConfig struct {
	LogLevel    string         `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile     string         `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	Env         string         `mapstructure:"Env" json:"env" default:"dev"`
	HealthPort  string         `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	ApiAddr     string         `mapstructure:"ApiAddr" json:"apiAddr" default:":8080"`
	KafkaConfig RawKafkaConfig `mapstructure:"KafkaConfig" json:"kafkaConfig"`
}

type RawKafkaConfig struct {
	Broker string `mapstructure:"Broker" json:"broker"`
	Topic  string `mapstructure:"Topic" json:"topic" default:"slowfill-events"`
}

func (c *RawRelayerConfig) Validate() error {
	return nil
}

// NewRelayerConfig parses RawRelayerConfig into RelayerConfig
func NewRelayerConfig(rawConfig RawRelayerConfig) (RelayerConfig, error) {
	config := RelayerConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel
	config.LogFile = rawConfig.LogFile
	config.Env = rawConfig.Env

	healthPort, err := strconv.ParseUint(rawConfig.HealthPort, 10, 16)
	if err != nil {
		return config, fmt.Errorf("invalid health port: %s", rawConfig.HealthPort)
	}
	config.HealthPort = uint16(healthPort)
	config.ApiAddr = rawConfig.ApiAddr
	config.KafkaConfig = KafkaConfig{
		Broker: rawConfig.KafkaConfig.Broker,
		Topic:  rawConfig.KafkaConfig.Topic,
	}

	return config, nil
}
