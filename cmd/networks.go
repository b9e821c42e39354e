package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"uniswap-cli/config"
)

var networksCmd = &cobra.Command{
	Use:     "networks",
	Aliases: []string{"list-networks", "ls"},
	Short:   "List supported networks and their contract addresses",
	Long: `List the networks this tool can swap on, with the DAI token, router,
factory, and WETH addresses used on each.

Examples:
  uniswap-cli networks
  uniswap-cli networks --json`,
	Run: runNetworks,
}

func init() {
	rootCmd.AddCommand(networksCmd)
}

func runNetworks(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if jsonOutput {
		output := make(map[string]config.ChainConfig)
		for _, name := range config.NetworkNames() {
			cfg, _ := config.ChainByName(name)
			output[name] = cfg
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                 SUPPORTED NETWORKS")
	fmt.Println(strings.Repeat("=", 60))

	for _, name := range config.NetworkNames() {
		cfg, _ := config.ChainByName(name)

		fmt.Printf("\n  %s (chain id %d)\n", color.CyanString(name), cfg.ChainID)
		fmt.Printf("    DAI:     %s\n", cfg.DAI)
		fmt.Printf("    Router:  %s\n", cfg.Router)
		fmt.Printf("    Factory: %s\n", cfg.Factory)
		fmt.Printf("    WETH:    %s\n", cfg.WETH)
	}

	fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
}
