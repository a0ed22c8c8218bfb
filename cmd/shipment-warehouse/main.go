// Package main is the entry point for shipment-warehouse.
package main

import (
	"fmt"
	"os"

	"github.com/parcelhq/shipment-warehouse/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
