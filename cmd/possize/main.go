package main

import (
	"os"

	"github.com/rustyeddy/possize/cmd/possize/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
