package main

import (
	"os"

	"onionkey/cmd/onionkey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
