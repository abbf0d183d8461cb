package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultfold/bignum/pkg/bignum"
)

var gcdCmd = &cobra.Command{
	Use:   "gcd <x> <y>",
	Short: "Compute the greatest common divisor of x and y",
	Args:  cobra.ExactArgs(2),
	RunE:  runGCD,
}

func runGCD(cmd *cobra.Command, args []string) error {
	x, y := bignum.New(), bignum.New()
	if err := x.SetString(10, args[0]); err != nil {
		return printError(err)
	}
	if err := y.SetString(10, args[1]); err != nil {
		return printError(err)
	}

	z := bignum.New()
	if err := z.GCD(x, y); err != nil {
		return printError(err)
	}
	s, err := z.String(10)
	if err != nil {
		return printError(err)
	}
	printResult("gcd", s)
	return nil
}
