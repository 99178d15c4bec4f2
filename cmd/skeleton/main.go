package main

import (
	"os"

	"github.com/msto63/cskit/cmd/skeleton/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
