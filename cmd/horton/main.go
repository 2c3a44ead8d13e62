package main

import (
	"os"

	"github.com/agentultra/horton/cmd/horton/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
