package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"uniswap-cli/config"
	"uniswap-cli/pkg/uniswap"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Show the current DAI -> ETH mid-price",
	Long: `Show the exchange rate derived from the DAI/WETH pair reserves.

Examples:
  uniswap-cli price
  uniswap-cli price --json`,
	Run: runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) {
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

	// Fetch price with spinner
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Fetching price..."
		s.Start()
	}

	price, err := controller.Price(context.Background())
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	rendered := uniswap.ToSignificant(price, 6)

	if jsonOutput {
		output := map[string]interface{}{
			"network": cfg.Network,
			"pair":    "DAI/ETH",
			"price":   rendered,
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	fmt.Printf("\n  1 DAI = %s ETH (%s)\n\n", color.CyanString(rendered), cfg.Network)
}
