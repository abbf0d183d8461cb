package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	okColor  = color.New(color.FgGreen, color.Bold)
	errColor = color.New(color.FgRed, color.Bold)
)

func printResult(label, value string) {
	okColor.Fprint(os.Stdout, label+": ")
	fmt.Fprintln(os.Stdout, value)
}

func printError(err error) error {
	errColor.Fprintln(os.Stderr, err.Error())
	return err
}
