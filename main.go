package main

import (
	"os"

	"github.com/ahmedfahmy1117/egx/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
