// Command cazctl inspects and adjusts the payment service's stored state.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "cazctl",
		Short:   "cazctl - operator tool for the Clean Air Zone payment service",
		Version: Version,
	}

	rootCmd.AddCommand(priceCmd())
	rootCmd.AddCommand(ordersCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
