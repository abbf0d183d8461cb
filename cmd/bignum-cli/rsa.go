package main

import (
	"context"
	"encoding/hex"

	"github.com/spf13/cobra"

	"crypto/rand"

	"github.com/vaultfold/bignum/pkg/rsa"
)

var rsaBits int

var rsaCmd = &cobra.Command{
	Use:   "rsa",
	Short: "Generate RSA keys and encrypt/decrypt raw message representatives",
}

var rsaGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate an RSA key pair and print N, e, d as hex",
	RunE:  runRSAGen,
}

var rsaEncryptCmd = &cobra.Command{
	Use:   "encrypt <N hex> <e decimal> <message hex>",
	Short: "Encrypt a hex message representative under an RSA public key",
	Args:  cobra.ExactArgs(3),
	RunE:  runRSAEncrypt,
}

func init() {
	rsaGenCmd.Flags().IntVar(&rsaBits, "bits", 2048, "modulus bit length")
	rsaCmd.AddCommand(rsaGenCmd)
	rsaCmd.AddCommand(rsaEncryptCmd)
}

func runRSAGen(cmd *cobra.Command, args []string) error {
	kp, err := rsa.GenerateKey(context.Background(), rsaBits, rand.Reader)
	if err != nil {
		return printError(err)
	}
	printResult("n", hex.EncodeToString(kp.N.Bytes()))
	printResult("e", hex.EncodeToString(bignumInt64ToBytes(kp.E)))
	printResult("d", hex.EncodeToString(kp.D.Bytes()))
	return nil
}

func runRSAEncrypt(cmd *cobra.Command, args []string) error {
	n, err := hex.DecodeString(args[0])
	if err != nil {
		return printError(err)
	}
	var e int64
	if _, err := parseDecimalInt64(args[1], &e); err != nil {
		return printError(err)
	}
	m, err := hex.DecodeString(args[2])
	if err != nil {
		return printError(err)
	}

	kp, err := rsa.FromPublicKey(n, e)
	if err != nil {
		return printError(err)
	}
	ct, err := kp.Encrypt(m)
	if err != nil {
		return printError(err)
	}
	printResult("ciphertext", hex.EncodeToString(ct))
	return nil
}
