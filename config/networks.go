package config

import "strings"

// ChainConfig holds the per-network contract addresses the swap controller
// depends on. The set of supported networks is fixed at compile time.
type ChainConfig struct {
	ChainID int64
	DAI     string
	Router  string
	Factory string
	WETH    string
}

// The V2 router and factory share one deployment address across all
// supported networks.
const (
	routerAddress  = "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"
	factoryAddress = "0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc8aa6f"
)

var chainConfigs = map[int64]ChainConfig{
	1: {
		ChainID: 1,
		DAI:     "0x6B175474E89094C44Da98b954EedeAC495271d0F",
		Router:  routerAddress,
		Factory: factoryAddress,
		WETH:    "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
	},
	3: {
		ChainID: 3,
		DAI:     "0xaD6D458402F60fD3Bd25163575031ACDce07538D",
		Router:  routerAddress,
		Factory: factoryAddress,
		WETH:    "0xc778417E063141139Fce010982780140Aa0cD5Ab",
	},
	4: {
		ChainID: 4,
		DAI:     "0xc7AD46e0b8a400Bb3C915120d284AafbA8fc4735",
		Router:  routerAddress,
		Factory: factoryAddress,
		WETH:    "0xc778417E063141139Fce010982780140Aa0cD5Ab",
	},
}

var networkIDs = map[string]int64{
	"mainnet": 1,
	"ropsten": 3,
	"rinkeby": 4,
}

// Chain returns the contract addresses for a chain id.
func Chain(chainID int64) (ChainConfig, bool) {
	cfg, ok := chainConfigs[chainID]
	return cfg, ok
}

// ChainByName resolves a network by its name ("mainnet", "ropsten", "rinkeby").
func ChainByName(name string) (ChainConfig, bool) {
	chainID, ok := networkIDs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ChainConfig{}, false
	}
	return Chain(chainID)
}

// NetworkNames returns the supported network names.
func NetworkNames() []string {
	return []string{"mainnet", "ropsten", "rinkeby"}
}
