package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"uniswap-cli/cmd"
)

func main() {
	// .env is optional; configuration can also come from the environment or
	// a yaml config file.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
