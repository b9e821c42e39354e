package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"uniswap-cli/config"
	"uniswap-cli/pkg/parser"
	"uniswap-cli/pkg/types"
	"uniswap-cli/pkg/uniswap"
)

var noConfirm bool

var swapCmd = &cobra.Command{
	Use:   "swap <amount>",
	Short: "Swap DAI for ETH",
	Long: `Quote and execute a DAI -> ETH swap through the Uniswap V2 router.

The swap submits two transactions in order: an ERC20 approve granting the
router the input amount, then the swap itself. Both ',' and '.' are accepted
as the decimal separator.

Examples:
  uniswap-cli swap 10
  uniswap-cli swap 1,5
  uniswap-cli swap 10 --yes`,
	Args: cobra.ExactArgs(1),
	Run:  runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "Skip confirmation prompt")
}

func runSwap(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	amount, err := parser.NormalizeAmountInput(args[0])
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if parser.IsZeroAmount(amount) {
		printError(fmt.Errorf("amount must be greater than zero"))
		os.Exit(1)
	}

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

	if _, err := connectWallet(controller, cfg); err != nil {
		printError(err)
		os.Exit(1)
	}

	account, err := controller.Account()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Get quote with spinner
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Fetching quote..."
		s.Start()
	}

	trade, err := controller.BuildTrade(ctx, amount)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if !jsonOutput {
		displayQuote(trade, amount)

		// Ask for confirmation
		if !noConfirm && !confirmSwap() {
			fmt.Println("\nSwap cancelled.")
			os.Exit(0)
		}
	}

	refresh := controller.RefreshC()

	s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Submitting approve and swap transactions..."
		s.Start()
	}

	ok := controller.ExecuteSwap(ctx, trade, account)

	if !jsonOutput {
		s.Stop()
	}

	if jsonOutput {
		output := map[string]interface{}{
			"account":        account.Hex(),
			"amount_in":      trade.AmountIn.String(),
			"amount_out":     trade.AmountOut.String(),
			"amount_out_min": trade.AmountOutMin.String(),
			"success":        ok,
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
	} else if ok {
		color.Green("\n✓ Swap submitted successfully!")
	} else {
		color.Red("\nSwap failed. The input amount was not spent; you may retry.")
	}

	// The controller signals completion of the attempt; re-read balances
	// so the user sees the post-swap state.
	select {
	case <-refresh:
		dai, eth := controller.Balances(ctx, account)
		if !jsonOutput {
			fmt.Printf("\n  DAI: %s\n  ETH: %s\n\n", color.YellowString(dai), color.YellowString(eth))
		}
	case <-time.After(5 * time.Second):
	}

	if !ok {
		os.Exit(1)
	}
}

func displayQuote(trade types.TradeDescriptor, amount string) {
	expected := uniswap.ToSignificant(decimal.NewFromBigInt(trade.AmountOut, -18), 6)
	minimum := uniswap.ToSignificant(decimal.NewFromBigInt(trade.AmountOutMin, -18), 6)

	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                     SWAP QUOTE")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  From:             %s %s\n", amount, color.YellowString("DAI"))
	fmt.Printf("  To:               ~%s %s\n", expected, color.YellowString("ETH"))
	fmt.Printf("  Minimum received: %s ETH (5%% slippage tolerance)\n", minimum)
	fmt.Printf("  Base units in:    %s\n", trade.AmountIn.String())

	fmt.Println("\n" + strings.Repeat("=", 60))
}

func confirmSwap() bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("\nProceed with swap? (y/N): ")

	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
