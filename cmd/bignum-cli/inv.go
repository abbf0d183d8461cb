package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultfold/bignum/pkg/bignum"
)

var invCmd = &cobra.Command{
	Use:   "inv <x> <n>",
	Short: "Compute the modular inverse of x modulo n",
	Args:  cobra.ExactArgs(2),
	RunE:  runInv,
}

func runInv(cmd *cobra.Command, args []string) error {
	x, n := bignum.New(), bignum.New()
	if err := x.SetString(10, args[0]); err != nil {
		return printError(err)
	}
	if err := n.SetString(10, args[1]); err != nil {
		return printError(err)
	}

	z := bignum.New()
	if err := z.InvMod(x, n); err != nil {
		return printError(err)
	}
	s, err := z.String(10)
	if err != nil {
		return printError(err)
	}
	printResult("inverse", s)
	return nil
}
