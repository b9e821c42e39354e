package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	RPCURL     string
	PrivateKey string
	Network    string
	LogLevel   string
}

var globalConfig *Config

// Load reads configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetConfigName(".uniswap-cli")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")

	// Set default values
	viper.SetDefault("network", "mainnet")
	viper.SetDefault("log_level", "info")

	// Read from environment variables
	viper.SetEnvPrefix("UNISWAP")
	viper.AutomaticEnv()

	// Read config file (optional)
	_ = viper.ReadInConfig()

	// Create config struct
	cfg := &Config{
		RPCURL:     viper.GetString("rpc_url"),
		PrivateKey: viper.GetString("private_key"),
		Network:    viper.GetString("network"),
		LogLevel:   viper.GetString("log_level"),
	}

	// Validate RPC endpoint
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("RPC URL not found. Please set UNISWAP_RPC_URL environment variable or create a .uniswap-cli.yaml config file")
	}

	globalConfig = cfg
	return cfg, nil
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		return cfg
	}
	return globalConfig
}

// Set updates the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}
