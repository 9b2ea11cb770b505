// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package svm

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
)

type RawResource struct {
	Mint     string `mapstructure:"mint"`
	Decimals uint8  `mapstructure:"decimals"`
	// initial custody balance, used when bootstrapping a fresh vault
	Balance uint64 `mapstructure:"balance"`
}

type Resource struct {
	Mint     common.Hash
	Decimals uint8
	Balance  uint64
}

type RawSpokeConfig struct {
	Name        string        `mapstructure:"name"`
	Type        string        `mapstructure:"type"`
	ChainId     uint64        `mapstructure:"chainId"`
	StateSeed   uint64        `mapstructure:"stateSeed" default:"0"`
	PausedFills bool          `mapstructure:"pausedFills" default:"false"`
	CurrentTime uint32        `mapstructure:"currentTime" default:"0"`
	Resources   []RawResource `mapstructure:"resources"`
}

func (c *RawSpokeConfig) Validate() error {
	if c.Type != "svm" {
		return fmt.Errorf("chain type %v not supported", c.Type)
	}
	if c.ChainId == 0 {
		return fmt.Errorf("required field chain.ChainId empty for chain %v", c.Name)
	}
	return nil
}

type SpokeConfig struct {
	Name        string
	ChainId     uint64
	StateSeed   uint64
	PausedFills bool
	CurrentTime uint32
	Resources   []Resource
}

// NewSpokeConfig decodes and validates an instance of a SpokeConfig from
// raw chain config
func NewSpokeConfig(chainConfig map[string]interface{}) (*SpokeConfig, error) {
	var c RawSpokeConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	resources := make([]Resource, len(c.Resources))
	for i, r := range c.Resources {
		resources[i] = Resource{
			Mint:     common.HexToHash(r.Mint),
			Decimals: r.Decimals,
			Balance:  r.Balance,
		}
	}

	return &SpokeConfig{
		Name:        c.Name,
		ChainId:     c.ChainId,
		StateSeed:   c.StateSeed,
		PausedFills: c.PausedFills,
		CurrentTime: c.CurrentTime,
		Resources:   resources,
	}, nil
}
