package main

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/vaultfold/bignum/pkg/paillier"
)

var paillierBits int

var paillierCmd = &cobra.Command{
	Use:   "paillier",
	Short: "Generate Paillier keys and perform homomorphic encryption",
}

var paillierGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a Paillier key pair and print its serialized private key as hex",
	RunE:  runPaillierGen,
}

var paillierEncryptCmd = &cobra.Command{
	Use:   "encrypt <serialized key hex> <plaintext hex>",
	Short: "Encrypt a plaintext under a serialized Paillier key",
	Args:  cobra.ExactArgs(2),
	RunE:  runPaillierEncrypt,
}

var paillierAddCmd = &cobra.Command{
	Use:   "add <serialized key hex> <ciphertext1 hex> <ciphertext2 hex>",
	Short: "Homomorphically add two ciphertexts",
	Args:  cobra.ExactArgs(3),
	RunE:  runPaillierAdd,
}

func init() {
	paillierGenCmd.Flags().IntVar(&paillierBits, "bits", 2048, "modulus bit length")
	paillierCmd.AddCommand(paillierGenCmd)
	paillierCmd.AddCommand(paillierEncryptCmd)
	paillierCmd.AddCommand(paillierAddCmd)
}

func runPaillierGen(cmd *cobra.Command, args []string) error {
	p, err := paillier.Generate(paillierBits, rand.Reader)
	if err != nil {
		return printError(err)
	}
	data, err := p.Serialize()
	if err != nil {
		return printError(err)
	}
	printResult("key", hex.EncodeToString(data))
	return nil
}

func runPaillierEncrypt(cmd *cobra.Command, args []string) error {
	keyBytes, err := hex.DecodeString(args[0])
	if err != nil {
		return printError(err)
	}
	plaintext, err := hex.DecodeString(args[1])
	if err != nil {
		return printError(err)
	}

	p, err := paillier.Deserialize(keyBytes)
	if err != nil {
		return printError(err)
	}
	ct, err := p.Encrypt(plaintext, rand.Reader)
	if err != nil {
		return printError(err)
	}
	printResult("ciphertext", hex.EncodeToString(ct))
	return nil
}

func runPaillierAdd(cmd *cobra.Command, args []string) error {
	keyBytes, err := hex.DecodeString(args[0])
	if err != nil {
		return printError(err)
	}
	c1, err := hex.DecodeString(args[1])
	if err != nil {
		return printError(err)
	}
	c2, err := hex.DecodeString(args[2])
	if err != nil {
		return printError(err)
	}

	p, err := paillier.Deserialize(keyBytes)
	if err != nil {
		return printError(err)
	}
	sum, err := p.AddCiphers(c1, c2)
	if err != nil {
		return printError(err)
	}
	printResult("sum", hex.EncodeToString(sum))
	return nil
}
