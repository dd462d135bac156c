package main

import (
	"os"

	"github.com/mathadv/mathadv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
