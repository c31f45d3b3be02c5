package main

import (
	"os"

	"github.com/rustyeddy/barjournal/cmd/barjournal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
