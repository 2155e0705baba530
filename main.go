package main

import (
	"os"

	"github.com/frostbnb/seedctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
