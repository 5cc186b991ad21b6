package main

import (
	"os"

	"github.com/avillaseca/redlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
