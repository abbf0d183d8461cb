// Command bignum-cli exercises the bignum module's arithmetic and its
// RSA, Paillier, and discrete-log consumer packages from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bignum-cli",
	Short: "Multi-precision arithmetic and classical public-key cryptography toolkit",
	Long:  "bignum-cli drives the bignum module's arithmetic, primality, RSA, Paillier, and discrete-log operations from the command line.",
}

func main() {
	rootCmd.AddCommand(primeCmd)
	rootCmd.AddCommand(modexpCmd)
	rootCmd.AddCommand(gcdCmd)
	rootCmd.AddCommand(invCmd)
	rootCmd.AddCommand(rsaCmd)
	rootCmd.AddCommand(paillierCmd)
	rootCmd.AddCommand(dlogCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
