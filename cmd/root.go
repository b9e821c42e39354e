package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"uniswap-cli/config"
	"uniswap-cli/pkg/chain"
	"uniswap-cli/pkg/uniswap"
	"uniswap-cli/pkg/wallet"
)

var rootCmd = &cobra.Command{
	Use:   "uniswap-cli",
	Short: "A CLI for swapping DAI to ETH through the Uniswap V2 router",
	Long: `uniswap-cli quotes and executes DAI -> ETH swaps against the Uniswap V2
router. It reads the pair reserves on chain, derives a mid-price, and submits
the approve+swap transaction sequence with a locally configured wallet.

Examples:
  uniswap-cli price
  uniswap-cli balance
  uniswap-cli swap 10
  uniswap-cli status 0x1234...abcd
  uniswap-cli networks`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
}

// newController wires config, RPC connection, and the swap controller
// together for a command invocation.
func newController(cmd *cobra.Command, cfg *config.Config) (*uniswap.Controller, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	chainCfg, ok := config.ChainByName(cfg.Network)
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: mainnet, ropsten, rinkeby)", uniswap.ErrUnsupportedNetwork, cfg.Network)
	}

	backend, err := chain.Dial(cfg.RPCURL)
	if err != nil {
		return nil, err
	}

	return uniswap.New(chainCfg.ChainID, backend, newLogger(verbose))
}

// connectWallet attaches the configured signing key to the controller
func connectWallet(controller *uniswap.Controller, cfg *config.Config) (*wallet.Provider, error) {
	provider := wallet.NewProvider(cfg.PrivateKey)
	if provider.Status() == wallet.StatusUnavailable {
		return nil, fmt.Errorf("private key not found. Please set UNISWAP_PRIVATE_KEY environment variable or add it to your .uniswap-cli.yaml config file")
	}

	backend, err := chain.Dial(cfg.RPCURL)
	if err != nil {
		return nil, err
	}

	if err := controller.SetWallet(provider, backend); err != nil {
		return nil, err
	}

	return provider, nil
}
