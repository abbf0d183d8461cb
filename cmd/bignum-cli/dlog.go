package main

import (
	"crypto/rand"

	"github.com/spf13/cobra"

	"github.com/vaultfold/bignum/pkg/dlog"
)

var dlogBits int

var dlogCmd = &cobra.Command{
	Use:   "dlog",
	Short: "Generate a safe-prime group and run a Diffie-Hellman exchange",
	RunE:  runDlog,
}

func init() {
	dlogCmd.Flags().IntVar(&dlogBits, "bits", 256, "safe-prime bit length")
}

func runDlog(cmd *cobra.Command, args []string) error {
	grp, err := dlog.NewSafePrimeGroup(dlogBits, rand.Reader)
	if err != nil {
		return printError(err)
	}

	alice, err := dlog.GenerateDHKeyPair(grp, rand.Reader)
	if err != nil {
		return printError(err)
	}
	bob, err := dlog.GenerateDHKeyPair(grp, rand.Reader)
	if err != nil {
		return printError(err)
	}

	shared, err := alice.SharedSecret(bob.Public)
	if err != nil {
		return printError(err)
	}
	sharedStr, err := shared.String(16)
	if err != nil {
		return printError(err)
	}

	pStr, err := grp.P.String(10)
	if err != nil {
		return printError(err)
	}
	printResult("p", pStr)
	printResult("shared secret", sharedStr)
	return nil
}
