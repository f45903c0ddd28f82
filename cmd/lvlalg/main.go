package main

import (
	"os"

	"github.com/katalvlaran/lvlalg/cmd/lvlalg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
