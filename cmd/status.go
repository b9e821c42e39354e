package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"uniswap-cli/config"
	"uniswap-cli/pkg/chain"
)

var statusCmd = &cobra.Command{
	Use:   "status <tx-hash>",
	Short: "Check the status of a submitted transaction",
	Long: `Look up a transaction by hash and report whether it is pending or mined.

Examples:
  uniswap-cli status 0x1234...abcd
  uniswap-cli status 0x1234...abcd --json`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	txHash := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if !strings.HasPrefix(txHash, "0x") || len(txHash) != 66 {
		printError(fmt.Errorf("invalid transaction hash: %s", txHash))
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	client, err := chain.Dial(cfg.RPCURL)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Checking transaction status..."
		s.Start()
	}

	ctx := context.Background()
	hash := common.HexToHash(txHash)

	tx, isPending, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		if !jsonOutput {
			s.Stop()
		}
		printError(fmt.Errorf("failed to get transaction: %w", err))
		os.Exit(1)
	}

	info := map[string]interface{}{
		"hash":      tx.Hash().Hex(),
		"nonce":     tx.Nonce(),
		"gas_limit": tx.Gas(),
		"value":     tx.Value().String(),
		"pending":   isPending,
	}
	if tx.To() != nil {
		info["to"] = tx.To().Hex()
	}

	if !isPending {
		receipt, err := client.TransactionReceipt(ctx, hash)
		if err == nil {
			info["block_number"] = receipt.BlockNumber.Uint64()
			info["gas_used"] = receipt.GasUsed
			info["status"] = receipt.Status
		}
	}

	if !jsonOutput {
		s.Stop()
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(info, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                 TRANSACTION STATUS")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  Hash:    %s\n", color.CyanString(tx.Hash().Hex()))
	fmt.Printf("  Nonce:   %d\n", tx.Nonce())
	if tx.To() != nil {
		fmt.Printf("  To:      %s\n", tx.To().Hex())
	}

	if isPending {
		color.Yellow("\n  Status:  pending\n")
	} else if status, ok := info["status"]; ok && status == uint64(1) {
		color.Green("\n  Status:  mined (success), block %d\n", info["block_number"])
	} else {
		color.Red("\n  Status:  mined (reverted)\n")
	}

	fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
}
