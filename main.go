package main

import (
	"os"

	"github.com/fmcarvalho/ptcloud/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
