package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultfold/bignum/pkg/bignum"
)

var modexpCmd = &cobra.Command{
	Use:   "modexp <base> <exponent> <modulus>",
	Short: "Compute base^exponent mod modulus",
	Args:  cobra.ExactArgs(3),
	RunE:  runModexp,
}

func runModexp(cmd *cobra.Command, args []string) error {
	x, e, n := bignum.New(), bignum.New(), bignum.New()
	if err := x.SetString(10, args[0]); err != nil {
		return printError(err)
	}
	if err := e.SetString(10, args[1]); err != nil {
		return printError(err)
	}
	if err := n.SetString(10, args[2]); err != nil {
		return printError(err)
	}

	z := bignum.New()
	if err := z.ExpMod(x, e, n); err != nil {
		return printError(err)
	}
	s, err := z.String(10)
	if err != nil {
		return printError(err)
	}
	printResult("result", s)
	return nil
}
