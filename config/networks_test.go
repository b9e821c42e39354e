package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainSupported(t *testing.T) {
	expectedDAI := map[int64]string{
		1: "0x6B175474E89094C44Da98b954EedeAC495271d0F",
		3: "0xaD6D458402F60fD3Bd25163575031ACDce07538D",
		4: "0xc7AD46e0b8a400Bb3C915120d284AafbA8fc4735",
	}

	for chainID, dai := range expectedDAI {
		cfg, ok := Chain(chainID)
		require.True(t, ok, "chain id %d", chainID)
		assert.Equal(t, chainID, cfg.ChainID)
		assert.Equal(t, dai, cfg.DAI)
		assert.Equal(t, "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D", cfg.Router)
		assert.Equal(t, "0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc8aa6f", cfg.Factory)
		assert.NotEmpty(t, cfg.WETH)
	}
}

func TestChainUnsupported(t *testing.T) {
	for _, chainID := range []int64{0, 2, 5, 42, 56, 137} {
		_, ok := Chain(chainID)
		assert.False(t, ok, "chain id %d", chainID)
	}
}

func TestChainByName(t *testing.T) {
	for name, chainID := range map[string]int64{
		"mainnet": 1,
		"ropsten": 3,
		"rinkeby": 4,
		"Mainnet": 1,
		" ropsten ": 3,
	} {
		cfg, ok := ChainByName(name)
		require.True(t, ok, "network %q", name)
		assert.Equal(t, chainID, cfg.ChainID)
	}

	_, ok := ChainByName("goerli")
	assert.False(t, ok)
}

func TestNetworkNames(t *testing.T) {
	for _, name := range NetworkNames() {
		_, ok := ChainByName(name)
		assert.True(t, ok, "network %q", name)
	}
}
