package main

import (
	"os"

	"github.com/antt-creator/beyondthetrenchesproject/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
