package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultfold/bignum/pkg/bignum"
)

var (
	primeSafe bool
	primeBits int
)

var primeCmd = &cobra.Command{
	Use:   "prime",
	Short: "Generate a random probable prime, or test a value for primality",
}

var primeGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random probable prime of the given bit length",
	RunE:  runPrimeGen,
}

var primeTestCmd = &cobra.Command{
	Use:   "test [decimal value]",
	Short: "Test a decimal value for probable primality",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrimeTest,
}

func init() {
	primeGenCmd.Flags().IntVar(&primeBits, "bits", 256, "bit length of the generated prime")
	primeGenCmd.Flags().BoolVar(&primeSafe, "safe", false, "require the prime to also be a safe prime (P = 2Q+1)")
	primeCmd.AddCommand(primeGenCmd)
	primeCmd.AddCommand(primeTestCmd)
}

func runPrimeGen(cmd *cobra.Command, args []string) error {
	p, err := bignum.GenPrime(primeBits, rand.Reader, bignum.GenPrimeOptions{Safe: primeSafe})
	if err != nil {
		return printError(err)
	}
	s, err := p.String(10)
	if err != nil {
		return printError(err)
	}
	printResult("prime", s)
	return nil
}

func runPrimeTest(cmd *cobra.Command, args []string) error {
	z := bignum.New()
	if err := z.SetString(10, args[0]); err != nil {
		return printError(err)
	}
	ok, err := z.IsPrime(rand.Reader)
	if err != nil {
		return printError(err)
	}
	printResult("probably prime", fmt.Sprintf("%v", ok))
	return nil
}
