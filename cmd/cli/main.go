// Package main é o ponto de entrada da CLI seller-calc
package main

import (
	"os"

	"github.com/vfg2006/seller-calc-api/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
