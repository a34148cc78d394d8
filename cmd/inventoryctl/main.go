package main

import (
	"fmt"
	"os"

	"github.com/rl1809/inventory-tracker/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
