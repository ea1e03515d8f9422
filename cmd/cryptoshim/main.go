package main

import (
	"os"

	"cryptoshim/cmd/cryptoshim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
