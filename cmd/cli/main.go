package main

import (
	"fmt"
	"os"

	"github.com/de-tools/offer-atlas/pkg/runtime/terminal"
	"github.com/de-tools/offer-atlas/pkg/services/consolidate"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Controller: consolidate.NewController(consolidate.DefaultSettings()),
		Output:     os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
