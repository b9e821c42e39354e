package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"uniswap-cli/config"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [account]",
	Short: "Show DAI and ETH balances",
	Long: `Show the DAI and ETH balances of an account. Without an argument the
configured wallet's account is used.

Examples:
  uniswap-cli balance
  uniswap-cli balance 0x1234...abcd`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	controller, err := newController(cmd, cfg)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	var account common.Address
	if len(args) == 1 {
		if !common.IsHexAddress(args[0]) {
			printError(fmt.Errorf("invalid account address: %s", args[0]))
			os.Exit(1)
		}
		account = common.HexToAddress(args[0])
	} else {
		if _, err := connectWallet(controller, cfg); err != nil {
			printError(err)
			os.Exit(1)
		}
		account, err = controller.Account()
		if err != nil {
			printError(err)
			os.Exit(1)
		}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Fetching balances..."
		s.Start()
	}

	dai, eth := controller.Balances(context.Background(), account)

	if !jsonOutput {
		s.Stop()
	}

	if jsonOutput {
		output := map[string]interface{}{
			"account": account.Hex(),
			"dai":     dai,
			"eth":     eth,
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	fmt.Printf("\n  Account: %s\n", color.CyanString(account.Hex()))
	fmt.Printf("  DAI:     %s\n", color.YellowString(dai))
	fmt.Printf("  ETH:     %s\n\n", color.YellowString(eth))
}
